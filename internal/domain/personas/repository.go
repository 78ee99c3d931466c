package personas

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("persona no encontrada")

type Repository interface {
	// Create devuelve apperr.ErrAlreadyRegistered si el documento ya existe.
	Create(ctx context.Context, p Person) error
	GetByID(ctx context.Context, nroDocumento string) (Person, error)
	Exists(ctx context.Context, nroDocumento string) (bool, error)
	// List filtra por departamento (case-insensitive) si no está vacío.
	List(ctx context.Context, departamento string) ([]Person, error)
}
