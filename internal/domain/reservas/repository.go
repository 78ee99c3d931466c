package reservas

import "context"

type Repository interface {
	// Create inserta la reserva y sus participantes como una sola unidad atómica
	// y devuelve el id generado por la secuencia.
	Create(ctx context.Context, r Reservation, participantes []string) (int64, error)

	// ListByParticipant devuelve las reservas de la persona ordenadas por fecha_inicio desc.
	ListByParticipant(ctx context.Context, nroDocumento string) ([]Reservation, error)
}

// ParticipantDirectory evita importar el paquete personas.
type ParticipantDirectory interface {
	Exists(ctx context.Context, nroDocumento string) (bool, error)
}
