package postgres

import (
	"context"
	"database/sql"
	"strings"

	"brigadas-forestales/internal/domain/reservas"
)

type ReservasRepo struct {
	db *sql.DB
}

func NewReservasRepo(db *sql.DB) *ReservasRepo {
	return &ReservasRepo{db: db}
}

// Create toma el id de seq_reserva_id e inserta RESERVA_EVENTO y sus
// RESERVA_PARTICIPANTE en una sola transacción. Cualquier falla hace rollback.
func (r *ReservasRepo) Create(ctx context.Context, res reservas.Reservation, participantes []string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := tx.QueryRowContext(ctx, `SELECT nextval('seq_reserva_id')`).Scan(&id); err != nil {
		return 0, rollback(tx, err)
	}

	// lat/lng viajan como texto y se guardan como NUMERIC.
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO reserva_evento (
			id_reserva, fecha_inicio, fecha_fin,
			municipio, latitud, longitud, creado_en
		) VALUES ($1,$2,$3,$4,($5::text)::numeric,($6::text)::numeric,$7)
	`,
		id,
		res.FechaInicio,
		res.FechaFin,
		res.Municipio,
		res.Latitud,
		res.Longitud,
		res.CreatedAt,
	); err != nil {
		return 0, rollback(tx, err)
	}

	for _, p := range participantes {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO reserva_participante (id_reserva, nro_documento_usuario)
			VALUES ($1,$2)
		`, id, p); err != nil {
			return 0, rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ReservasRepo) ListByParticipant(ctx context.Context, nroDocumento string) ([]reservas.Reservation, error) {
	nroDocumento = strings.TrimSpace(nroDocumento)
	if nroDocumento == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			re.id_reserva, re.fecha_inicio, re.fecha_fin,
			re.municipio, re.latitud::text, re.longitud::text, re.creado_en
		FROM reserva_participante rp
		JOIN reserva_evento re ON rp.id_reserva = re.id_reserva
		WHERE rp.nro_documento_usuario = $1
		ORDER BY re.fecha_inicio DESC, re.id_reserva DESC
	`, nroDocumento)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reservas.Reservation, 0)
	for rows.Next() {
		var res reservas.Reservation
		if err := rows.Scan(
			&res.ID,
			&res.FechaInicio,
			&res.FechaFin,
			&res.Municipio,
			&res.Latitud,
			&res.Longitud,
			&res.CreatedAt,
		); err != nil {
			return nil, err
		}
		// DATE viene a medianoche UTC; lo normalizamos por si el driver aplica zona.
		res.FechaInicio = reservas.DateOf(res.FechaInicio)
		res.FechaFin = reservas.DateOf(res.FechaFin)
		out = append(out, res)
	}

	return out, rows.Err()
}
