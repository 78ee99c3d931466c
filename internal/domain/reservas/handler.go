package reservas

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"brigadas-forestales/internal/middleware"
	"brigadas-forestales/internal/platform/apperr"
	"brigadas-forestales/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/api/crear_reserva", createReservationHandler(svc, log))
	r.Get("/api/brigada", currentBrigadeHandler(svc, log))
}

// flexString acepta string o número JSON (lat/lng y documentos llegan de ambas formas).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("expected string or number")
	}
	*f = flexString(n.String())
	return nil
}

// createReservationRequest es el cuerpo que envía el formulario de brigadas.
type createReservationRequest struct {
	FechaInicio   string       `json:"fechainicio"` // YYYY-MM-DD
	FechaFin      string       `json:"fechafin"`    // YYYY-MM-DD
	Municipio     string       `json:"municipio"`
	Lat           flexString   `json:"lat" swaggertype:"string"`
	Lng           flexString   `json:"lng" swaggertype:"string"`
	Participantes []flexString `json:"participantes" swaggertype:"array,string"`
}

type createReservationResponse struct {
	OK        bool  `json:"ok"`
	IDReserva int64 `json:"id_reserva"`
}

// BrigadeView es la vista pública de una reserva (también la usa capturas).
type BrigadeView struct {
	IDReserva   int64  `json:"id_reserva"`
	Municipio   string `json:"municipio"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Latitud     string `json:"latitud"`
	Longitud    string `json:"longitud"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// createReservationHandler godoc
// @Summary Crear reserva de brigada
// @Description Valida fechas (YYYY-MM-DD, fin >= inicio), exactamente 4 participantes existentes y sin repetir, y crea la reserva con sus participantes en una sola transacción.
// @Tags reservas
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, documento del usuario"
// @Param Authorization header string false "Bearer token de /api/login"
// @Param payload body createReservationRequest true "Reserva"
// @Success 201 {object} createReservationResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/crear_reserva [post]
func createReservationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.CallerID(r.Context())
		if caller == "" {
			writeError(w, log, apperr.ErrUnauthenticated)
			return
		}

		var req createReservationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "json inválido"})
			return
		}

		var participantes []string
		if req.Participantes != nil {
			participantes = make([]string, 0, len(req.Participantes))
			for _, p := range req.Participantes {
				participantes = append(participantes, string(p))
			}
		}

		res, err := svc.Create(r.Context(), caller, CreateInput{
			FechaInicio:   req.FechaInicio,
			FechaFin:      req.FechaFin,
			Municipio:     req.Municipio,
			Latitud:       string(req.Lat),
			Longitud:      string(req.Lng),
			Participantes: participantes,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		log.Info("reserva creada", map[string]any{"id_reserva": res.ID, "user": caller})
		writeJSON(w, http.StatusCreated, createReservationResponse{OK: true, IDReserva: res.ID})
	}
}

// currentBrigadeHandler godoc
// @Summary Brigada vigente
// @Description Devuelve la reserva activa hoy del usuario autenticado, o null.
// @Tags reservas
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, documento del usuario"
// @Param Authorization header string false "Bearer token de /api/login"
// @Success 200 {object} map[string]BrigadeView
// @Failure 401 {object} errorResponse
// @Router /api/brigada [get]
func currentBrigadeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.CallerID(r.Context())
		if caller == "" {
			writeError(w, log, apperr.ErrUnauthenticated)
			return
		}

		res, err := svc.ActiveToday(r.Context(), caller)
		switch {
		case err == nil:
			b := ToBrigadeView(res)
			writeJSON(w, http.StatusOK, map[string]*BrigadeView{"brigada": &b})
		case errors.Is(err, apperr.ErrNoReservationAssigned), errors.Is(err, apperr.ErrNoActiveReservation):
			writeJSON(w, http.StatusOK, map[string]*BrigadeView{"brigada": nil})
		default:
			writeError(w, log, err)
		}
	}
}

// ToBrigadeView arma la vista pública de una reserva.
func ToBrigadeView(r Reservation) BrigadeView {
	return BrigadeView{
		IDReserva:   r.ID,
		Municipio:   r.Municipio,
		FechaInicio: r.FechaInicio.Format(DateLayout),
		FechaFin:    r.FechaFin.Format(DateLayout),
		Latitud:     r.Latitud,
		Longitud:    r.Longitud,
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	status, msg := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error("reservas: request failed", map[string]any{"error": err})
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
