package personas

import (
	"context"
	"errors"
	"strings"
	"time"

	"brigadas-forestales/internal/domain/regions"
	"brigadas-forestales/internal/platform/apperr"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
	now  func() time.Time
	cost int
}

// NewService crea el servicio de identidad. hashCost <= 0 usa bcrypt.DefaultCost.
func NewService(repo Repository, hashCost int) *Service {
	if hashCost <= 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &Service{
		repo: repo,
		now:  time.Now,
		cost: hashCost,
	}
}

type RegisterInput struct {
	NroDocumento string
	Nombre       string
	Apellido     string
	Contrasena   string
	Departamento string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Person, error) {
	nro := strings.TrimSpace(in.NroDocumento)
	nombre := strings.TrimSpace(in.Nombre)
	apellido := strings.TrimSpace(in.Apellido)
	if nro == "" || nombre == "" || apellido == "" || in.Contrasena == "" || strings.TrimSpace(in.Departamento) == "" {
		return Person{}, apperr.ErrMissingField
	}

	dep, ok := regions.Canonical(in.Departamento)
	if !ok {
		return Person{}, apperr.ErrInvalidRegion
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), s.cost)
	if err != nil {
		return Person{}, err
	}

	p := Person{
		NroDocumento: nro,
		Nombre:       nombre,
		Apellido:     apellido,
		PasswordHash: string(hash),
		Departamento: dep,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, apperr.ErrAlreadyRegistered) {
			return Person{}, apperr.ErrAlreadyRegistered
		}
		return Person{}, apperr.Store(err)
	}
	return p, nil
}

// Authenticate valida documento + contraseña. Usuario inexistente y contraseña errada
// devuelven el mismo error para no revelar qué documentos existen.
func (s *Service) Authenticate(ctx context.Context, nroDocumento, contrasena string) (Person, error) {
	nroDocumento = strings.TrimSpace(nroDocumento)
	if nroDocumento == "" || contrasena == "" {
		return Person{}, apperr.ErrMissingField
	}

	p, err := s.repo.GetByID(ctx, nroDocumento)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Person{}, apperr.ErrInvalidCredentials
		}
		return Person{}, apperr.Store(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(contrasena)); err != nil {
		return Person{}, apperr.ErrInvalidCredentials
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, nroDocumento string) (Person, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(nroDocumento))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Person{}, ErrNotFound
		}
		return Person{}, apperr.Store(err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, departamento string) ([]Person, error) {
	items, err := s.repo.List(ctx, strings.TrimSpace(departamento))
	if err != nil {
		return nil, apperr.Store(err)
	}
	return items, nil
}

// Exists implementa reservas.ParticipantDirectory.
func (s *Service) Exists(ctx context.Context, nroDocumento string) (bool, error) {
	ok, err := s.repo.Exists(ctx, strings.TrimSpace(nroDocumento))
	if err != nil {
		return false, apperr.Store(err)
	}
	return ok, nil
}
