package postgres

import (
	"context"
	"database/sql"

	"brigadas-forestales/internal/domain/capturas"
)

type CapturasRepo struct {
	db *sql.DB
}

func NewCapturasRepo(db *sql.DB) *CapturasRepo {
	return &CapturasRepo{db: db}
}

func (r *CapturasRepo) InsertTree(ctx context.Context, t capturas.Tree) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO arbol (
			nombre_cientifico, nombre_comun,
			altura, diametro, dano, formafuste, observaciones,
			nsubparcela, nro_documento, id_reserva, fecha_registro
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id_arbol
	`,
		nullString(t.NombreCientifico),
		nullString(t.NombreComun),
		t.Altura,
		t.Diametro,
		nullString(t.Dano),
		nullString(t.FormaFuste),
		nullString(t.Observaciones),
		t.NSubparcela,
		t.NroDocumento,
		t.IDReserva,
		t.FechaRegistro,
	).Scan(&id)
	return id, err
}

func (r *CapturasRepo) InsertPlant(ctx context.Context, p capturas.Plant) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO planta (
			tamano, nombre_comun, observaciones,
			nsubparcela, id_reserva, nro_documento_usuario, fecha_registro
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id_planta
	`,
		p.Tamano,
		p.NombreComun,
		nullString(p.Observaciones),
		p.NSubparcela,
		p.IDReserva,
		p.NroDocumento,
		p.FechaRegistro,
	).Scan(&id)
	return id, err
}
