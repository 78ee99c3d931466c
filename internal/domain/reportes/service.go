package reportes

import (
	"context"
	"strings"
	"time"

	"brigadas-forestales/internal/platform/apperr"
)

type Service struct {
	repo Repository
	loc  *time.Location
}

// NewService: loc define en qué zona se interpretan los días del filtro (nil = time.Local).
func NewService(repo Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{repo: repo, loc: loc}
}

type Query struct {
	Tipo        string
	FechaInicio string // YYYY-MM-DD, opcional
	FechaFin    string // YYYY-MM-DD, opcional; incluye el día completo
}

// Generate valida la consulta y devuelve la tabla (nunca nil).
func (s *Service) Generate(ctx context.Context, q Query) ([]Row, error) {
	if q.Tipo != TipoArbol {
		return nil, apperr.ErrUnsupportedReportType
	}

	f, err := s.filter(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.TreeReport(ctx, f)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

func (s *Service) filter(q Query) (Filter, error) {
	var f Filter
	if v := strings.TrimSpace(q.FechaInicio); v != "" {
		d, err := time.ParseInLocation(DateLayout, v, s.loc)
		if err != nil {
			return Filter{}, apperr.ErrInvalidDateFormat
		}
		f.From = &d
	}
	if v := strings.TrimSpace(q.FechaFin); v != "" {
		d, err := time.ParseInLocation(DateLayout, v, s.loc)
		if err != nil {
			return Filter{}, apperr.ErrInvalidDateFormat
		}
		until := d.AddDate(0, 0, 1)
		f.Until = &until
	}
	return f, nil
}
