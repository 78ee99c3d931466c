package reservas

import "time"

const (
	// DateLayout es el único formato de fecha aceptado por la API.
	DateLayout = "2006-01-02"

	// ParticipantsPerReservation es el tamaño fijo de una brigada.
	ParticipantsPerReservation = 4
)

// Reservation es una asignación de brigada (tabla RESERVA_EVENTO).
// FechaInicio y FechaFin son fechas civiles a medianoche UTC; el rango es inclusivo.
type Reservation struct {
	ID          int64
	FechaInicio time.Time
	FechaFin    time.Time
	Municipio   string
	Latitud     string
	Longitud    string
	CreatedAt   time.Time

	Participantes []string
}

// Contains indica si el día civil de t cae dentro de [FechaInicio, FechaFin].
func (r Reservation) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(DateOf(r.FechaInicio)) && !d.After(DateOf(r.FechaFin))
}

// DateOf trunca t a su fecha civil (en la zona de t) y la expresa a medianoche UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parsea YYYY-MM-DD a medianoche UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
