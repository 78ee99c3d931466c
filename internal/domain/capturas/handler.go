package capturas

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"brigadas-forestales/internal/domain/reservas"
	"brigadas-forestales/internal/middleware"
	"brigadas-forestales/internal/platform/apperr"
	"brigadas-forestales/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	msgTreeCreated  = "Árbol registrado exitosamente."
	msgPlantCreated = "Planta registrada exitosamente."
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/capturas", func(r chi.Router) {
		r.Get("/contexto", captureContextHandler(svc, log))
		r.Post("/arboles", createTreeHandler(svc, log))
		r.Post("/plantas", createPlantHandler(svc, log))
	})
}

// flexNumber acepta número JSON o string numérico (los formularios envían strings).
// Vacío o null = no enviado.
type flexNumber struct {
	set bool
	val float64
}

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = flexNumber{}
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("número inválido: %q", s)
	}
	*f = flexNumber{set: true, val: v}
	return nil
}

func (f flexNumber) asFloat() *float64 {
	if !f.set {
		return nil
	}
	v := f.val
	return &v
}

// asInt devuelve -1 si el valor no es entero; la subparcela queda inválida.
func (f flexNumber) asInt() *int {
	if !f.set {
		return nil
	}
	v := -1
	if f.val == math.Trunc(f.val) {
		v = int(f.val)
	}
	return &v
}

type createTreeRequest struct {
	NombreCientifico string     `json:"nombre_cientifico"`
	NombreComun      string     `json:"nombre_comun"`
	Altura           flexNumber `json:"altura" swaggertype:"number"`
	Diametro         flexNumber `json:"diametro" swaggertype:"number"`
	Dano             string     `json:"dano"`
	FormaFuste       string     `json:"formafuste"`
	Observaciones    string     `json:"observaciones"`
	NSubparcela      flexNumber `json:"nsubparcela" swaggertype:"integer"`
}

type createPlantRequest struct {
	Tamano        flexNumber `json:"tamano" swaggertype:"number"`
	NombreComun   string     `json:"nombre_comun"`
	Observaciones string     `json:"observaciones"`
	NSubparcela   flexNumber `json:"nsubparcela" swaggertype:"integer"`
}

type createdResponse struct {
	OK      bool   `json:"ok"`
	Mensaje string `json:"mensaje"`
}

type contextResponse struct {
	Reserva     *reservas.BrigadeView `json:"reserva"`
	Subparcelas []Subplot             `json:"subparcelas"`
	Advertencia *string               `json:"advertencia"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// captureContextHandler godoc
// @Summary Contexto de captura
// @Description Reserva activa hoy y subparcelas disponibles. Sin reserva (o sin reserva activa) responde 200 con advertencia y sin subparcelas.
// @Tags capturas
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, documento del usuario"
// @Param Authorization header string false "Bearer token de /api/login"
// @Success 200 {object} contextResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/capturas/contexto [get]
func captureContextHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.CallerID(r.Context())
		if caller == "" {
			writeError(w, log, apperr.ErrUnauthenticated)
			return
		}

		c, err := svc.Context(r.Context(), caller)
		switch {
		case err == nil:
			b := reservas.ToBrigadeView(c.Reserva)
			writeJSON(w, http.StatusOK, contextResponse{Reserva: &b, Subparcelas: c.Subparcelas})
		case errors.Is(err, apperr.ErrNoReservationAssigned), errors.Is(err, apperr.ErrNoActiveReservation):
			_, msg := apperr.HTTPStatus(err)
			writeJSON(w, http.StatusOK, contextResponse{Subparcelas: []Subplot{}, Advertencia: &msg})
		default:
			writeError(w, log, err)
		}
	}
}

// createTreeHandler godoc
// @Summary Registrar árbol
// @Description Inserta una observación de árbol en la reserva activa del usuario. Obligatorios: altura, diametro, nsubparcela (1..4).
// @Tags capturas
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, documento del usuario"
// @Param Authorization header string false "Bearer token de /api/login"
// @Param payload body createTreeRequest true "Árbol"
// @Success 201 {object} createdResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/capturas/arboles [post]
func createTreeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.CallerID(r.Context())
		if caller == "" {
			writeError(w, log, apperr.ErrUnauthenticated)
			return
		}

		var req createTreeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "json inválido"})
			return
		}

		t, err := svc.RecordTree(r.Context(), caller, TreeInput{
			NombreCientifico: req.NombreCientifico,
			NombreComun:      req.NombreComun,
			Altura:           req.Altura.asFloat(),
			Diametro:         req.Diametro.asFloat(),
			Dano:             req.Dano,
			FormaFuste:       req.FormaFuste,
			Observaciones:    req.Observaciones,
			NSubparcela:      req.NSubparcela.asInt(),
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		log.Info("arbol registrado", map[string]any{"id_arbol": t.ID, "id_reserva": t.IDReserva, "user": caller})
		writeJSON(w, http.StatusCreated, createdResponse{OK: true, Mensaje: msgTreeCreated})
	}
}

// createPlantHandler godoc
// @Summary Registrar planta
// @Description Inserta una observación de planta en la reserva activa del usuario. Obligatorios: tamano, nombre_comun, nsubparcela (1..4).
// @Tags capturas
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, documento del usuario"
// @Param Authorization header string false "Bearer token de /api/login"
// @Param payload body createPlantRequest true "Planta"
// @Success 201 {object} createdResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/capturas/plantas [post]
func createPlantHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.CallerID(r.Context())
		if caller == "" {
			writeError(w, log, apperr.ErrUnauthenticated)
			return
		}

		var req createPlantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "json inválido"})
			return
		}

		p, err := svc.RecordPlant(r.Context(), caller, PlantInput{
			Tamano:        req.Tamano.asFloat(),
			NombreComun:   req.NombreComun,
			Observaciones: req.Observaciones,
			NSubparcela:   req.NSubparcela.asInt(),
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		log.Info("planta registrada", map[string]any{"id_planta": p.ID, "id_reserva": p.IDReserva, "user": caller})
		writeJSON(w, http.StatusCreated, createdResponse{OK: true, Mensaje: msgPlantCreated})
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	status, msg := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error("capturas: request failed", map[string]any{"error": err})
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
