package capturas

import (
	"context"
	"strings"
	"time"

	"brigadas-forestales/internal/domain/reservas"
	"brigadas-forestales/internal/platform/apperr"
	"brigadas-forestales/internal/platform/metrics"
)

// ActiveReservations resuelve la reserva vigente de una persona (reservas.Service).
type ActiveReservations interface {
	ActiveToday(ctx context.Context, nroDocumento string) (reservas.Reservation, error)
}

type Service struct {
	repo     Repository
	reservas ActiveReservations
	now      func() time.Time
}

func NewService(repo Repository, active ActiveReservations) *Service {
	return &Service{
		repo:     repo,
		reservas: active,
		now:      time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Context es lo que necesita el formulario de captura antes de enviar datos.
type Context struct {
	Reserva     reservas.Reservation
	Subparcelas []Subplot
}

// Context no inserta nada; devuelve NoReservationAssigned / NoActiveReservation
// cuando el formulario debe mostrar el aviso.
func (s *Service) Context(ctx context.Context, callerID string) (Context, error) {
	r, err := s.active(ctx, callerID)
	if err != nil {
		return Context{}, err
	}
	return Context{Reserva: r, Subparcelas: Subplots()}, nil
}

type TreeInput struct {
	NombreCientifico string
	NombreComun      string
	Altura           *float64
	Diametro         *float64
	Dano             string
	FormaFuste       string
	Observaciones    string
	NSubparcela      *int
}

// RecordTree inserta una observación de árbol en la reserva activa del caller.
func (s *Service) RecordTree(ctx context.Context, callerID string, in TreeInput) (Tree, error) {
	r, err := s.active(ctx, callerID)
	if err != nil {
		return Tree{}, err
	}
	if in.Altura == nil || in.Diametro == nil || in.NSubparcela == nil {
		return Tree{}, apperr.ErrMissingField
	}
	if !validSubplot(*in.NSubparcela) {
		return Tree{}, apperr.ErrInvalidSubplot
	}

	t := Tree{
		NombreCientifico: strings.TrimSpace(in.NombreCientifico),
		NombreComun:      strings.TrimSpace(in.NombreComun),
		Altura:           *in.Altura,
		Diametro:         *in.Diametro,
		Dano:             strings.TrimSpace(in.Dano),
		FormaFuste:       strings.TrimSpace(in.FormaFuste),
		Observaciones:    strings.TrimSpace(in.Observaciones),
		NSubparcela:      *in.NSubparcela,
		NroDocumento:     strings.TrimSpace(callerID),
		IDReserva:        r.ID,
		FechaRegistro:    s.now(),
	}

	id, err := s.repo.InsertTree(ctx, t)
	if err != nil {
		return Tree{}, apperr.Store(err)
	}
	t.ID = id
	metrics.ObservationsCreated.WithLabelValues("arbol").Inc()
	return t, nil
}

type PlantInput struct {
	Tamano        *float64
	NombreComun   string
	Observaciones string
	NSubparcela   *int
}

// RecordPlant inserta una observación de planta en la reserva activa del caller.
func (s *Service) RecordPlant(ctx context.Context, callerID string, in PlantInput) (Plant, error) {
	r, err := s.active(ctx, callerID)
	if err != nil {
		return Plant{}, err
	}
	nombre := strings.TrimSpace(in.NombreComun)
	if in.Tamano == nil || nombre == "" || in.NSubparcela == nil {
		return Plant{}, apperr.ErrMissingField
	}
	if !validSubplot(*in.NSubparcela) {
		return Plant{}, apperr.ErrInvalidSubplot
	}

	p := Plant{
		Tamano:        *in.Tamano,
		NombreComun:   nombre,
		Observaciones: strings.TrimSpace(in.Observaciones),
		NSubparcela:   *in.NSubparcela,
		NroDocumento:  strings.TrimSpace(callerID),
		IDReserva:     r.ID,
		FechaRegistro: s.now(),
	}

	id, err := s.repo.InsertPlant(ctx, p)
	if err != nil {
		return Plant{}, apperr.Store(err)
	}
	p.ID = id
	metrics.ObservationsCreated.WithLabelValues("planta").Inc()
	return p, nil
}

func (s *Service) active(ctx context.Context, callerID string) (reservas.Reservation, error) {
	if strings.TrimSpace(callerID) == "" {
		return reservas.Reservation{}, apperr.ErrUnauthenticated
	}
	return s.reservas.ActiveToday(ctx, strings.TrimSpace(callerID))
}
