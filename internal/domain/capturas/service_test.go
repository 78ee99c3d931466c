package capturas

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"brigadas-forestales/internal/domain/reservas"
	"brigadas-forestales/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	trees  []Tree
	plants []Plant
	err    error
}

func (r *testRepo) InsertTree(_ context.Context, t Tree) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.trees = append(r.trees, t)
	return int64(len(r.trees)), nil
}

func (r *testRepo) InsertPlant(_ context.Context, p Plant) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.plants = append(r.plants, p)
	return int64(len(r.plants)), nil
}

// testActive resuelve por documento; ausente => sin reserva asignada.
type testActive map[string]reservas.Reservation

func (a testActive) ActiveToday(_ context.Context, nro string) (reservas.Reservation, error) {
	switch nro {
	case "inactivo":
		return reservas.Reservation{}, apperr.ErrNoActiveReservation
	case "boom":
		return reservas.Reservation{}, apperr.Store(errors.New("db down"))
	}
	r, ok := a[nro]
	if !ok {
		return reservas.Reservation{}, apperr.ErrNoReservationAssigned
	}
	return r, nil
}

var fixedNow = time.Date(2025, 5, 5, 10, 30, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{}
	active := testActive{"111": {ID: 42, Municipio: "Leticia"}}
	svc := NewService(repo, active).WithClock(func() time.Time { return fixedNow })
	return svc, repo
}

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func TestRecordTree_InsertsOneRowOnActiveReservation(t *testing.T) {
	svc, repo := newTestService()

	tree, err := svc.RecordTree(context.Background(), "111", TreeInput{
		Altura:      f64(12.5),
		Diametro:    f64(0.4),
		Dano:        "ninguno",
		NSubparcela: intp(3),
	})
	require.NoError(t, err)

	require.Len(t, repo.trees, 1)
	assert.Equal(t, int64(1), tree.ID)
	assert.Equal(t, int64(42), repo.trees[0].IDReserva)
	assert.Equal(t, "111", repo.trees[0].NroDocumento)
	assert.Equal(t, 3, repo.trees[0].NSubparcela)
	assert.Equal(t, fixedNow, repo.trees[0].FechaRegistro)
}

func TestRecordTree_Notices(t *testing.T) {
	in := TreeInput{Altura: f64(1), Diametro: f64(1), NSubparcela: intp(1)}

	cases := []struct {
		caller string
		want   error
	}{
		{"", apperr.ErrUnauthenticated},
		{"222", apperr.ErrNoReservationAssigned},
		{"inactivo", apperr.ErrNoActiveReservation},
		{"boom", apperr.ErrStoreFailure},
	}
	for _, tc := range cases {
		svc, repo := newTestService()
		_, err := svc.RecordTree(context.Background(), tc.caller, in)
		assert.ErrorIs(t, err, tc.want, "caller %q", tc.caller)
		assert.Empty(t, repo.trees)
	}
}

func TestRecordTree_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   TreeInput
		want error
	}{
		{"sin altura", TreeInput{Diametro: f64(1), NSubparcela: intp(1)}, apperr.ErrMissingField},
		{"sin diametro", TreeInput{Altura: f64(1), NSubparcela: intp(1)}, apperr.ErrMissingField},
		{"sin subparcela", TreeInput{Altura: f64(1), Diametro: f64(1)}, apperr.ErrMissingField},
		{"subparcela 0", TreeInput{Altura: f64(1), Diametro: f64(1), NSubparcela: intp(0)}, apperr.ErrInvalidSubplot},
		{"subparcela 5", TreeInput{Altura: f64(1), Diametro: f64(1), NSubparcela: intp(5)}, apperr.ErrInvalidSubplot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService()
			_, err := svc.RecordTree(context.Background(), "111", tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, repo.trees)
		})
	}
}

func TestRecordPlant(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.RecordPlant(context.Background(), "111", PlantInput{Tamano: f64(0.3), NSubparcela: intp(1)})
	assert.ErrorIs(t, err, apperr.ErrMissingField)

	_, err = svc.RecordPlant(context.Background(), "111", PlantInput{Tamano: f64(0.3), NombreComun: "helecho", NSubparcela: intp(9)})
	assert.ErrorIs(t, err, apperr.ErrInvalidSubplot)

	_, err = svc.RecordPlant(context.Background(), "222", PlantInput{Tamano: f64(0.3), NombreComun: "helecho", NSubparcela: intp(1)})
	assert.ErrorIs(t, err, apperr.ErrNoReservationAssigned)
	assert.Empty(t, repo.plants)

	p, err := svc.RecordPlant(context.Background(), "111", PlantInput{Tamano: f64(0.3), NombreComun: " helecho ", NSubparcela: intp(4)})
	require.NoError(t, err)
	assert.Equal(t, "helecho", p.NombreComun)
	assert.Equal(t, int64(42), p.IDReserva)
	require.Len(t, repo.plants, 1)
}

func TestRecord_StoreFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("check constraint violated")

	_, err := svc.RecordTree(context.Background(), "111", TreeInput{Altura: f64(1), Diametro: f64(1), NSubparcela: intp(2)})
	assert.ErrorIs(t, err, apperr.ErrStoreFailure)

	_, err = svc.RecordPlant(context.Background(), "111", PlantInput{Tamano: f64(1), NombreComun: "x", NSubparcela: intp(2)})
	assert.ErrorIs(t, err, apperr.ErrStoreFailure)
}

func TestContext(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.Context(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, int64(42), c.Reserva.ID)
	require.Len(t, c.Subparcelas, 4)
	assert.Equal(t, Subplot{ID: 1, Direccion: "Norte", Distancia: 80}, c.Subparcelas[0])

	_, err = svc.Context(context.Background(), "inactivo")
	assert.ErrorIs(t, err, apperr.ErrNoActiveReservation)
}

func TestFlexNumber(t *testing.T) {
	var req createTreeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"altura":"12.5","diametro":3,"nsubparcela":"2"}`), &req))
	require.NotNil(t, req.Altura.asFloat())
	assert.InDelta(t, 12.5, *req.Altura.asFloat(), 1e-9)
	assert.InDelta(t, 3.0, *req.Diametro.asFloat(), 1e-9)
	assert.Equal(t, 2, *req.NSubparcela.asInt())

	req = createTreeRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"altura":"","diametro":null,"nsubparcela":1.5}`), &req))
	assert.Nil(t, req.Altura.asFloat())
	assert.Nil(t, req.Diametro.asFloat())
	assert.Equal(t, -1, *req.NSubparcela.asInt())

	assert.Error(t, json.Unmarshal([]byte(`{"altura":"alto"}`), &req))
}
