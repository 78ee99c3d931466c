package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"brigadas-forestales/internal/domain/personas"
	"brigadas-forestales/internal/platform/apperr"
)

type PersonasRepo struct {
	db *sql.DB
}

func NewPersonasRepo(db *sql.DB) *PersonasRepo {
	return &PersonasRepo{db: db}
}

func (r *PersonasRepo) Create(ctx context.Context, p personas.Person) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO usuario (
			nro_documento, nombre, apellido,
			contrasena, departamento, creado_en
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		p.NroDocumento,
		p.Nombre,
		p.Apellido,
		p.PasswordHash,
		p.Departamento,
		p.CreatedAt,
	)
	if isUniqueViolation(err) {
		return apperr.ErrAlreadyRegistered
	}
	return err
}

func (r *PersonasRepo) GetByID(ctx context.Context, nroDocumento string) (personas.Person, error) {
	nroDocumento = strings.TrimSpace(nroDocumento)
	if nroDocumento == "" {
		return personas.Person{}, personas.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT nro_documento, nombre, apellido, contrasena, departamento, creado_en
		FROM usuario
		WHERE nro_documento = $1
	`, nroDocumento)

	var p personas.Person
	if err := row.Scan(
		&p.NroDocumento,
		&p.Nombre,
		&p.Apellido,
		&p.PasswordHash,
		&p.Departamento,
		&p.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return personas.Person{}, personas.ErrNotFound
		}
		return personas.Person{}, err
	}
	return p, nil
}

func (r *PersonasRepo) Exists(ctx context.Context, nroDocumento string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM usuario WHERE nro_documento = $1)
	`, strings.TrimSpace(nroDocumento)).Scan(&ok)
	return ok, err
}

func (r *PersonasRepo) List(ctx context.Context, departamento string) ([]personas.Person, error) {
	departamento = strings.TrimSpace(departamento)

	var (
		rows *sql.Rows
		err  error
	)
	if departamento != "" {
		rows, err = r.db.QueryContext(ctx, `
			SELECT nro_documento, nombre, apellido, departamento, creado_en
			FROM usuario
			WHERE UPPER(departamento) = UPPER($1)
			ORDER BY nombre, apellido
		`, departamento)
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT nro_documento, nombre, apellido, departamento, creado_en
			FROM usuario
			ORDER BY departamento, nombre, apellido
		`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]personas.Person, 0)
	for rows.Next() {
		var p personas.Person
		if err := rows.Scan(
			&p.NroDocumento,
			&p.Nombre,
			&p.Apellido,
			&p.Departamento,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
