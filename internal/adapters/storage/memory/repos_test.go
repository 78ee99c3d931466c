package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"brigadas-forestales/internal/domain/capturas"
	"brigadas-forestales/internal/domain/personas"
	"brigadas-forestales/internal/domain/reportes"
	"brigadas-forestales/internal/domain/reservas"
	"brigadas-forestales/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservaRepo_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	repo := NewReservaRepo()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.Create(ctx, reservas.Reservation{}, []string{"111", "222", "333", "444"})
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id repetido %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	list, err := repo.ListByParticipant(ctx, "333")
	require.NoError(t, err)
	assert.Len(t, list, n)
}

func TestReservaRepo_ListOrder(t *testing.T) {
	repo := NewReservaRepo()
	ctx := context.Background()
	d := func(s string) time.Time { v, _ := reservas.ParseDate(s); return v }

	_, _ = repo.Create(ctx, reservas.Reservation{FechaInicio: d("2025-05-01")}, []string{"111"})
	_, _ = repo.Create(ctx, reservas.Reservation{FechaInicio: d("2025-05-04")}, []string{"111"})
	_, _ = repo.Create(ctx, reservas.Reservation{FechaInicio: d("2025-05-04")}, []string{"111"})

	list, err := repo.ListByParticipant(ctx, "111")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{list[0].ID, list[1].ID, list[2].ID})

	empty, err := repo.ListByParticipant(ctx, "999")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPersonaRepo(t *testing.T) {
	repo := NewPersonaRepo()
	ctx := context.Background()

	for _, p := range []personas.Person{
		{NroDocumento: "3", Nombre: "Luis", Apellido: "Mora", Departamento: "Meta"},
		{NroDocumento: "1", Nombre: "Ana", Apellido: "Ruiz", Departamento: "Meta"},
		{NroDocumento: "2", Nombre: "Ana", Apellido: "Gil", Departamento: "Amazonas"},
	} {
		require.NoError(t, repo.Create(ctx, p))
	}
	assert.ErrorIs(t, repo.Create(ctx, personas.Person{NroDocumento: "1"}), apperr.ErrAlreadyRegistered)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "3"}, docs(all))

	meta, err := repo.List(ctx, "META")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, docs(meta))

	ok, err := repo.Exists(ctx, "2")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(ctx, "9")
	assert.ErrorIs(t, err, personas.ErrNotFound)
}

func docs(ps []personas.Person) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.NroDocumento)
	}
	return out
}

func TestFieldRepo_TreeReport(t *testing.T) {
	repo := NewFieldRepo()
	ctx := context.Background()

	for _, ts := range []string{"2025-01-05T10:00:00Z", "2025-02-10T10:00:00Z", "2025-03-01T10:00:00Z"} {
		at, _ := time.Parse(time.RFC3339, ts)
		_, err := repo.InsertTree(ctx, capturas.Tree{Altura: 1, Diametro: 1, NSubparcela: 1, FechaRegistro: at})
		require.NoError(t, err)
	}

	rows, err := repo.TreeReport(ctx, reportes.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	first, _ := rows[0].Get("ID_ARBOL")
	assert.Equal(t, int64(3), first)

	nc, _ := rows[0].Get("NOMBRE_CIENTIFICO")
	assert.Nil(t, nc)
}
