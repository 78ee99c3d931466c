package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brigadas"

var (
	// ReservationsCreated cuenta reservas confirmadas (commit ok).
	ReservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Reservas creadas con sus cuatro participantes.",
	})

	// ReservationsRejected cuenta intentos rechazados por validación o falla del store.
	ReservationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_rejected_total",
		Help:      "Intentos de reserva rechazados, por motivo.",
	}, []string{"reason"})

	// ObservationsCreated cuenta capturas de campo por tipo (arbol|planta).
	ObservationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "observations_created_total",
		Help:      "Observaciones de campo registradas.",
	}, []string{"tipo"})

	// AuditEntries cuenta entradas de historial por resultado (written|failed|dropped).
	AuditEntries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Entradas del historial por resultado.",
	}, []string{"result"})
)

// Handler expone el registry por defecto.
func Handler() http.Handler {
	return promhttp.Handler()
}
