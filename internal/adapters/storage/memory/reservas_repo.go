package memory

import (
	"context"
	"sort"
	"sync"

	"brigadas-forestales/internal/domain/reservas"
)

// reservaRepo simula la secuencia y la transacción con un solo lock.
type reservaRepo struct {
	mu     sync.RWMutex
	seq    int64
	byID   map[int64]reservas.Reservation
	byUser map[string][]int64
}

func NewReservaRepo() reservas.Repository {
	return &reservaRepo{
		byID:   make(map[int64]reservas.Reservation),
		byUser: make(map[string][]int64),
	}
}

func (r *reservaRepo) Create(ctx context.Context, res reservas.Reservation, participantes []string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	res.ID = r.seq
	res.Participantes = append([]string(nil), participantes...)
	r.byID[res.ID] = res
	for _, p := range participantes {
		r.byUser[p] = append(r.byUser[p], res.ID)
	}
	return res.ID, nil
}

func (r *reservaRepo) ListByParticipant(ctx context.Context, nroDocumento string) ([]reservas.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reservas.Reservation, 0, len(r.byUser[nroDocumento]))
	for _, id := range r.byUser[nroDocumento] {
		out = append(out, r.byID[id])
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].FechaInicio.Equal(out[j].FechaInicio) {
			return out[i].FechaInicio.After(out[j].FechaInicio)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}
