package reservas

import (
	"context"
	"errors"
	"strings"
	"time"

	"brigadas-forestales/internal/platform/apperr"
	"brigadas-forestales/internal/platform/metrics"
)

type Service struct {
	repo   Repository
	people ParticipantDirectory
	loc    *time.Location
	now    func() time.Time
}

// NewService crea el flujo de reservas. loc define qué es "hoy" (nil = time.Local).
func NewService(repo Repository, people ParticipantDirectory, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo:   repo,
		people: people,
		loc:    loc,
		now:    time.Now,
	}
}

// WithClock reemplaza el reloj (tests / simulación de fecha).
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Today devuelve la fecha civil actual en la zona configurada.
func (s *Service) Today() time.Time {
	return DateOf(s.now().In(s.loc))
}

type CreateInput struct {
	FechaInicio   string
	FechaFin      string
	Municipio     string
	Latitud       string
	Longitud      string
	Participantes []string // nil = no enviado
}

// Create valida y crea la reserva con exactamente cuatro participantes.
// Orden de validación (gana la primera regla violada):
// caller, campos obligatorios, formato de fecha, rango, cantidad, duplicados, existencia.
func (s *Service) Create(ctx context.Context, callerID string, in CreateInput) (Reservation, error) {
	r, participantes, err := s.validate(ctx, callerID, in)
	if err != nil {
		metrics.ReservationsRejected.WithLabelValues(rejectReason(err)).Inc()
		return Reservation{}, err
	}

	r.CreatedAt = s.now()
	id, err := s.repo.Create(ctx, r, participantes)
	if err != nil {
		metrics.ReservationsRejected.WithLabelValues("store").Inc()
		return Reservation{}, apperr.Store(err)
	}

	r.ID = id
	r.Participantes = participantes
	metrics.ReservationsCreated.Inc()
	return r, nil
}

func (s *Service) validate(ctx context.Context, callerID string, in CreateInput) (Reservation, []string, error) {
	if strings.TrimSpace(callerID) == "" {
		return Reservation{}, nil, apperr.ErrUnauthenticated
	}

	fi := strings.TrimSpace(in.FechaInicio)
	ff := strings.TrimSpace(in.FechaFin)
	mun := strings.TrimSpace(in.Municipio)
	lat := strings.TrimSpace(in.Latitud)
	lng := strings.TrimSpace(in.Longitud)
	if fi == "" || ff == "" || mun == "" || lat == "" || lng == "" || in.Participantes == nil {
		return Reservation{}, nil, apperr.ErrMissingField
	}

	participantes := make([]string, 0, len(in.Participantes))
	for _, p := range in.Participantes {
		p = strings.TrimSpace(p)
		if p == "" {
			return Reservation{}, nil, apperr.ErrMissingField
		}
		participantes = append(participantes, p)
	}

	inicio, err := ParseDate(fi)
	if err != nil {
		return Reservation{}, nil, apperr.ErrInvalidDateFormat
	}
	fin, err := ParseDate(ff)
	if err != nil {
		return Reservation{}, nil, apperr.ErrInvalidDateFormat
	}
	if fin.Before(inicio) {
		return Reservation{}, nil, apperr.ErrInvalidDateRange
	}

	if len(participantes) != ParticipantsPerReservation {
		return Reservation{}, nil, apperr.ErrInvalidParticipantCount
	}

	seen := make(map[string]struct{}, len(participantes))
	for _, p := range participantes {
		if _, dup := seen[p]; dup {
			return Reservation{}, nil, apperr.ErrDuplicateParticipant
		}
		seen[p] = struct{}{}
	}

	for _, p := range participantes {
		ok, err := s.people.Exists(ctx, p)
		if err != nil {
			return Reservation{}, nil, apperr.Store(err)
		}
		if !ok {
			return Reservation{}, nil, &apperr.UnknownParticipantError{ID: p}
		}
	}

	return Reservation{
		FechaInicio: inicio,
		FechaFin:    fin,
		Municipio:   mun,
		Latitud:     lat,
		Longitud:    lng,
	}, participantes, nil
}

// ActiveFor devuelve la reserva de la persona que contiene el día dado.
// Con varias candidatas gana la de fecha_inicio más reciente.
func (s *Service) ActiveFor(ctx context.Context, nroDocumento string, day time.Time) (Reservation, error) {
	nroDocumento = strings.TrimSpace(nroDocumento)
	if nroDocumento == "" {
		return Reservation{}, apperr.ErrUnauthenticated
	}

	items, err := s.repo.ListByParticipant(ctx, nroDocumento)
	if err != nil {
		return Reservation{}, apperr.Store(err)
	}
	if len(items) == 0 {
		return Reservation{}, apperr.ErrNoReservationAssigned
	}

	if r, ok := pickActive(items, day); ok {
		return r, nil
	}
	return Reservation{}, apperr.ErrNoActiveReservation
}

// ActiveToday es ActiveFor con la fecha actual de la zona configurada.
func (s *Service) ActiveToday(ctx context.Context, nroDocumento string) (Reservation, error) {
	return s.ActiveFor(ctx, nroDocumento, s.Today())
}

// pickActive no depende del orden que entregue el repositorio.
func pickActive(items []Reservation, day time.Time) (Reservation, bool) {
	var winner Reservation
	found := false
	for _, r := range items {
		if !r.Contains(day) {
			continue
		}
		if !found || r.FechaInicio.After(winner.FechaInicio) ||
			(r.FechaInicio.Equal(winner.FechaInicio) && r.ID > winner.ID) {
			winner = r
			found = true
		}
	}
	return winner, found
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, apperr.ErrMissingField):
		return "missing_field"
	case errors.Is(err, apperr.ErrInvalidDateFormat):
		return "invalid_date_format"
	case errors.Is(err, apperr.ErrInvalidDateRange):
		return "invalid_date_range"
	case errors.Is(err, apperr.ErrInvalidParticipantCount):
		return "invalid_participant_count"
	case errors.Is(err, apperr.ErrDuplicateParticipant):
		return "duplicate_participant"
	case errors.Is(err, apperr.ErrUnknownParticipant):
		return "unknown_participant"
	default:
		return "store"
	}
}
