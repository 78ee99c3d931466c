package reservas

import (
	"context"
	"errors"
	"testing"
	"time"

	"brigadas-forestales/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	nextID       int64
	reservations map[int64]Reservation
	links        map[int64][]string
	createErr    error
	listErr      error
}

func newTestRepo() *testRepo {
	return &testRepo{
		reservations: map[int64]Reservation{},
		links:        map[int64][]string{},
	}
}

func (r *testRepo) Create(_ context.Context, res Reservation, participantes []string) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.nextID++
	res.ID = r.nextID
	r.reservations[res.ID] = res
	r.links[res.ID] = append([]string(nil), participantes...)
	return res.ID, nil
}

func (r *testRepo) ListByParticipant(_ context.Context, nro string) ([]Reservation, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]Reservation, 0)
	for id, ps := range r.links {
		for _, p := range ps {
			if p == nro {
				out = append(out, r.reservations[id])
				break
			}
		}
	}
	return out, nil
}

func (r *testRepo) rows() int {
	n := len(r.reservations)
	for _, ps := range r.links {
		n += len(ps)
	}
	return n
}

type testDirectory map[string]bool

func (d testDirectory) Exists(_ context.Context, nro string) (bool, error) {
	if nro == "boom" {
		return false, errors.New("connection reset")
	}
	return d[nro], nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	dir := testDirectory{"111": true, "222": true, "333": true, "444": true, "555": true}
	return NewService(repo, dir, time.UTC), repo
}

func validInput() CreateInput {
	return CreateInput{
		FechaInicio:   "2025-06-01",
		FechaFin:      "2025-06-10",
		Municipio:     "Leticia",
		Latitud:       "4.123456",
		Longitud:      "-74.123456",
		Participantes: []string{"111", "222", "333", "444"},
	}
}

// -------------------------
// Create
// -------------------------

func TestCreate_Valid_CreatesReservationAndFourLinks(t *testing.T) {
	svc, repo := newTestService()

	res, err := svc.Create(context.Background(), "111", validInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.ID)
	require.Contains(t, repo.reservations, res.ID)
	assert.Equal(t, []string{"111", "222", "333", "444"}, repo.links[res.ID])
	assert.Equal(t, "2025-06-01", repo.reservations[res.ID].FechaInicio.Format(DateLayout))
	assert.Equal(t, "2025-06-10", repo.reservations[res.ID].FechaFin.Format(DateLayout))
	assert.Equal(t, "Leticia", repo.reservations[res.ID].Municipio)
}

func TestCreate_SameDayRangeIsValid(t *testing.T) {
	svc, _ := newTestService()
	in := validInput()
	in.FechaFin = in.FechaInicio

	_, err := svc.Create(context.Background(), "111", in)
	assert.NoError(t, err)
}

func TestCreate_NotIdempotent(t *testing.T) {
	svc, repo := newTestService()

	a, err := svc.Create(context.Background(), "111", validInput())
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), "111", validInput())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, repo.reservations, 2)
}

func TestCreate_ValidationFailures_CreateNothing(t *testing.T) {
	cases := []struct {
		name   string
		caller string
		mutate func(*CreateInput)
		want   error
	}{
		{"no caller", "", func(*CreateInput) {}, apperr.ErrUnauthenticated},
		{"missing start", "111", func(in *CreateInput) { in.FechaInicio = "" }, apperr.ErrMissingField},
		{"missing end", "111", func(in *CreateInput) { in.FechaFin = " " }, apperr.ErrMissingField},
		{"missing municipio", "111", func(in *CreateInput) { in.Municipio = "" }, apperr.ErrMissingField},
		{"missing lat", "111", func(in *CreateInput) { in.Latitud = "" }, apperr.ErrMissingField},
		{"missing lng", "111", func(in *CreateInput) { in.Longitud = "" }, apperr.ErrMissingField},
		{"missing participants", "111", func(in *CreateInput) { in.Participantes = nil }, apperr.ErrMissingField},
		{"blank participant", "111", func(in *CreateInput) { in.Participantes[2] = " " }, apperr.ErrMissingField},
		{"bad start format", "111", func(in *CreateInput) { in.FechaInicio = "01/06/2025" }, apperr.ErrInvalidDateFormat},
		{"bad end format", "111", func(in *CreateInput) { in.FechaFin = "2025-13-01" }, apperr.ErrInvalidDateFormat},
		{"end before start", "111", func(in *CreateInput) { in.FechaInicio, in.FechaFin = "2025-06-10", "2025-06-01" }, apperr.ErrInvalidDateRange},
		{"three participants", "111", func(in *CreateInput) { in.Participantes = in.Participantes[:3] }, apperr.ErrInvalidParticipantCount},
		{"five participants", "111", func(in *CreateInput) { in.Participantes = append(in.Participantes, "555") }, apperr.ErrInvalidParticipantCount},
		{"empty participants", "111", func(in *CreateInput) { in.Participantes = []string{} }, apperr.ErrInvalidParticipantCount},
		{"duplicate participant", "111", func(in *CreateInput) { in.Participantes[3] = "111" }, apperr.ErrDuplicateParticipant},
		{"unknown participant", "111", func(in *CreateInput) { in.Participantes[1] = "999" }, apperr.ErrUnknownParticipant},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService()
			in := validInput()
			tc.mutate(&in)

			_, err := svc.Create(context.Background(), tc.caller, in)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, 0, repo.rows(), "no rows must be created")
		})
	}
}

func TestCreate_FirstViolatedRuleWins(t *testing.T) {
	svc, _ := newTestService()

	// Fecha mal formada y cantidad errónea: gana el formato.
	in := validInput()
	in.FechaInicio = "junio"
	in.Participantes = []string{"111"}
	_, err := svc.Create(context.Background(), "111", in)
	assert.ErrorIs(t, err, apperr.ErrInvalidDateFormat)

	// Rango inválido y participante desconocido: gana el rango.
	in = validInput()
	in.FechaInicio, in.FechaFin = "2025-06-10", "2025-06-01"
	in.Participantes[0] = "999"
	_, err = svc.Create(context.Background(), "111", in)
	assert.ErrorIs(t, err, apperr.ErrInvalidDateRange)
}

func TestCreate_UnknownParticipantNamesFirstOffender(t *testing.T) {
	svc, _ := newTestService()
	in := validInput()
	in.Participantes = []string{"111", "888", "333", "999"}

	_, err := svc.Create(context.Background(), "111", in)

	var unknown *apperr.UnknownParticipantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "888", unknown.ID)
	assert.Contains(t, err.Error(), "888")
}

func TestCreate_StoreFailures(t *testing.T) {
	svc, repo := newTestService()
	repo.createErr = errors.New("ORA-00001 duplicate key")

	_, err := svc.Create(context.Background(), "111", validInput())
	require.ErrorIs(t, err, apperr.ErrStoreFailure)

	status, msg := apperr.HTTPStatus(err)
	assert.Equal(t, 500, status)
	assert.NotContains(t, msg, "ORA-00001")

	// falla consultando USUARIO
	svc, _ = newTestService()
	in := validInput()
	in.Participantes[0] = "boom"
	_, err = svc.Create(context.Background(), "111", in)
	assert.ErrorIs(t, err, apperr.ErrStoreFailure)
}

// -------------------------
// ActiveFor
// -------------------------

func day(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seed(t *testing.T, svc *Service, inicio, fin string) int64 {
	t.Helper()
	in := validInput()
	in.FechaInicio, in.FechaFin = inicio, fin
	res, err := svc.Create(context.Background(), "111", in)
	require.NoError(t, err)
	return res.ID
}

func TestActiveFor(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ActiveFor(context.Background(), "222", day("2025-05-05"))
	assert.ErrorIs(t, err, apperr.ErrNoReservationAssigned)

	id := seed(t, svc, "2025-05-01", "2025-05-10")

	got, err := svc.ActiveFor(context.Background(), "222", day("2025-05-05"))
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	// bordes inclusivos
	_, err = svc.ActiveFor(context.Background(), "222", day("2025-05-01"))
	assert.NoError(t, err)
	_, err = svc.ActiveFor(context.Background(), "222", day("2025-05-10"))
	assert.NoError(t, err)

	_, err = svc.ActiveFor(context.Background(), "222", day("2025-05-15"))
	assert.ErrorIs(t, err, apperr.ErrNoActiveReservation)

	_, err = svc.ActiveFor(context.Background(), "555", day("2025-05-05"))
	assert.ErrorIs(t, err, apperr.ErrNoReservationAssigned)

	_, err = svc.ActiveFor(context.Background(), "", day("2025-05-05"))
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestActiveFor_OverlapPicksLatestStart(t *testing.T) {
	svc, _ := newTestService()

	seed(t, svc, "2025-05-01", "2025-05-31")
	latest := seed(t, svc, "2025-05-04", "2025-05-06")
	seed(t, svc, "2025-05-02", "2025-05-20")

	got, err := svc.ActiveFor(context.Background(), "333", day("2025-05-05"))
	require.NoError(t, err)
	assert.Equal(t, latest, got.ID)
}

func TestActiveFor_StoreFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.listErr = errors.New("timeout")

	_, err := svc.ActiveFor(context.Background(), "111", day("2025-05-05"))
	assert.ErrorIs(t, err, apperr.ErrStoreFailure)
}

func TestToday_UsesConfiguredZone(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	svc := NewService(newTestRepo(), testDirectory{}, bogota).WithClock(func() time.Time {
		// 2025-05-06 03:00 UTC = 2025-05-05 22:00 en Bogotá
		return time.Date(2025, 5, 6, 3, 0, 0, 0, time.UTC)
	})
	assert.Equal(t, "2025-05-05", svc.Today().Format(DateLayout))
}

func TestReservation_Contains(t *testing.T) {
	r := Reservation{FechaInicio: day("2025-05-01"), FechaFin: day("2025-05-10")}
	late := time.Date(2025, 5, 10, 23, 59, 0, 0, time.FixedZone("COT", -5*3600))
	assert.True(t, r.Contains(late))
	assert.False(t, r.Contains(day("2025-04-30")))
}
