package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"brigadas-forestales/internal/domain/personas"
	"brigadas-forestales/internal/platform/apperr"
)

type personaRepo struct {
	mu   sync.RWMutex
	byID map[string]personas.Person
}

func NewPersonaRepo() personas.Repository {
	return &personaRepo{
		byID: make(map[string]personas.Person),
	}
}

func (r *personaRepo) Create(ctx context.Context, p personas.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.NroDocumento) == "" {
		return errors.New("nro_documento required")
	}
	if _, exists := r.byID[p.NroDocumento]; exists {
		return apperr.ErrAlreadyRegistered
	}
	r.byID[p.NroDocumento] = p
	return nil
}

func (r *personaRepo) GetByID(ctx context.Context, nroDocumento string) (personas.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[strings.TrimSpace(nroDocumento)]
	if !ok {
		return personas.Person{}, personas.ErrNotFound
	}
	return p, nil
}

func (r *personaRepo) Exists(ctx context.Context, nroDocumento string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[strings.TrimSpace(nroDocumento)]
	return ok, nil
}

func (r *personaRepo) List(ctx context.Context, departamento string) ([]personas.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	departamento = strings.TrimSpace(departamento)
	out := make([]personas.Person, 0)
	for _, p := range r.byID {
		if departamento == "" || strings.EqualFold(p.Departamento, departamento) {
			out = append(out, p)
		}
	}

	// mismo orden que el adapter de Postgres
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if departamento == "" && a.Departamento != b.Departamento {
			return a.Departamento < b.Departamento
		}
		if a.Nombre != b.Nombre {
			return a.Nombre < b.Nombre
		}
		return a.Apellido < b.Apellido
	})

	return out, nil
}
