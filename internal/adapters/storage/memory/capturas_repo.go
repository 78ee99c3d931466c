package memory

import (
	"context"
	"sort"
	"sync"

	"brigadas-forestales/internal/domain/capturas"
	"brigadas-forestales/internal/domain/reportes"
)

// FieldRepo guarda árboles y plantas; también responde el reporte de árboles.
type FieldRepo struct {
	mu     sync.RWMutex
	trees  []capturas.Tree
	plants []capturas.Plant
}

func NewFieldRepo() *FieldRepo {
	return &FieldRepo{}
}

func (r *FieldRepo) InsertTree(ctx context.Context, t capturas.Tree) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = int64(len(r.trees) + 1)
	r.trees = append(r.trees, t)
	return t.ID, nil
}

func (r *FieldRepo) InsertPlant(ctx context.Context, p capturas.Plant) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = int64(len(r.plants) + 1)
	r.plants = append(r.plants, p)
	return p.ID, nil
}

func (r *FieldRepo) TreeReport(ctx context.Context, f reportes.Filter) ([]reportes.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]capturas.Tree, 0)
	for _, t := range r.trees {
		if f.Match(t.FechaRegistro) {
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].FechaRegistro.After(matched[j].FechaRegistro)
	})

	out := make([]reportes.Row, 0, len(matched))
	for _, t := range matched {
		out = append(out, reportes.Row{
			Columns: reportes.TreeColumns,
			Values: []any{
				t.ID,
				nullable(t.NombreCientifico),
				nullable(t.NombreComun),
				t.Altura,
				t.Diametro,
				nullable(t.Dano),
				nullable(t.FormaFuste),
				nullable(t.Observaciones),
				int64(t.NSubparcela),
				t.NroDocumento,
				t.IDReserva,
				t.FechaRegistro,
			},
		})
	}
	return out, nil
}

// nullable imita NULL de SQL para textos vacíos.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
