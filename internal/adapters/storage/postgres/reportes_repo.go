package postgres

import (
	"context"
	"database/sql"

	"brigadas-forestales/internal/domain/reportes"
)

type ReportesRepo struct {
	db *sql.DB
}

func NewReportesRepo(db *sql.DB) *ReportesRepo {
	return &ReportesRepo{db: db}
}

// TreeReport conserva el orden de columnas que devuelve la consulta.
func (r *ReportesRepo) TreeReport(ctx context.Context, f reportes.Filter) ([]reportes.Row, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id_arbol           AS "ID_ARBOL",
			nombre_cientifico  AS "NOMBRE_CIENTIFICO",
			nombre_comun       AS "NOMBRE_COMUN",
			altura::float8     AS "ALTURA",
			diametro::float8   AS "DIAMETRO",
			dano               AS "DANO",
			formafuste         AS "FORMAFUSTE",
			observaciones      AS "OBSERVACIONES",
			nsubparcela::int8  AS "NSUBPARCELA",
			nro_documento      AS "NRO_DOCUMENTO",
			id_reserva         AS "ID_RESERVA",
			fecha_registro     AS "FECHA_REGISTRO"
		FROM arbol
		WHERE ($1::timestamptz IS NULL OR fecha_registro >= $1)
		  AND ($2::timestamptz IS NULL OR fecha_registro < $2)
		ORDER BY fecha_registro DESC
	`, toNullTime(f.From), toNullTime(f.Until))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]reportes.Row, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		out = append(out, reportes.Row{Columns: cols, Values: vals})
	}

	return out, rows.Err()
}
