package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Taxonomía de errores compartida por los módulos de dominio.
// Los mensajes son los que ve el cliente; el detalle de StoreFailure nunca sale al cliente.
var (
	ErrUnauthenticated         = errors.New("no autenticado")
	ErrMissingField            = errors.New("faltan campos obligatorios")
	ErrInvalidDateFormat       = errors.New("formato de fecha inválido (usar YYYY-MM-DD)")
	ErrInvalidDateRange        = errors.New("la fecha fin no puede ser anterior a la fecha inicio")
	ErrInvalidParticipantCount = errors.New("debe seleccionar exactamente 4 participantes")
	ErrDuplicateParticipant    = errors.New("un participante no puede repetirse en la misma reserva")
	ErrUnknownParticipant      = errors.New("participante inexistente")
	ErrUnsupportedReportType   = errors.New("tipo de reporte no soportado")
	ErrInvalidCredentials      = errors.New("credenciales incorrectas")
	ErrAlreadyRegistered       = errors.New("el usuario ya está registrado")
	ErrInvalidRegion           = errors.New("departamento inválido")
	ErrInvalidSubplot          = errors.New("subparcela inválida")
	ErrNoReservationAssigned   = errors.New("no tienes ninguna reserva asignada")
	ErrNoActiveReservation     = errors.New("no tienes ninguna reserva activa en este momento")
	ErrStoreFailure            = errors.New("error interno")
)

// UnknownParticipantError nombra el documento que no existe en USUARIO.
type UnknownParticipantError struct {
	ID string
}

func (e *UnknownParticipantError) Error() string {
	return fmt.Sprintf("el participante %s no existe en USUARIO", e.ID)
}

func (e *UnknownParticipantError) Is(target error) bool {
	return target == ErrUnknownParticipant
}

// Store envuelve un error del almacenamiento como StoreFailure conservando la causa.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}

// HTTPStatus traduce un error de dominio a status + mensaje seguro para el cliente.
// Cualquier error no clasificado se trata como StoreFailure (500).
func HTTPStatus(err error) (int, string) {
	var unknown *UnknownParticipantError
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.As(err, &unknown):
		return http.StatusBadRequest, unknown.Error()
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, rootMessage(err)
	case errors.Is(err, ErrAlreadyRegistered),
		errors.Is(err, ErrNoReservationAssigned),
		errors.Is(err, ErrNoActiveReservation):
		return http.StatusConflict, rootMessage(err)
	case errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidDateFormat),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidParticipantCount),
		errors.Is(err, ErrDuplicateParticipant),
		errors.Is(err, ErrUnknownParticipant),
		errors.Is(err, ErrUnsupportedReportType),
		errors.Is(err, ErrInvalidRegion),
		errors.Is(err, ErrInvalidSubplot):
		return http.StatusBadRequest, rootMessage(err)
	default:
		return http.StatusInternalServerError, ErrStoreFailure.Error()
	}
}

// IsClientError indica si el error es culpa del request (4xx).
func IsClientError(err error) bool {
	st, _ := HTTPStatus(err)
	return st >= 400 && st < 500
}

var kinds = []error{
	ErrUnauthenticated,
	ErrMissingField,
	ErrInvalidDateFormat,
	ErrInvalidDateRange,
	ErrInvalidParticipantCount,
	ErrDuplicateParticipant,
	ErrUnknownParticipant,
	ErrUnsupportedReportType,
	ErrInvalidCredentials,
	ErrAlreadyRegistered,
	ErrInvalidRegion,
	ErrInvalidSubplot,
	ErrNoReservationAssigned,
	ErrNoActiveReservation,
}

// rootMessage devuelve el mensaje del sentinel (sin el contexto agregado con %w).
func rootMessage(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k.Error()
		}
	}
	return ErrStoreFailure.Error()
}
