package reportes

import (
	"encoding/json"
	"net/http"

	"brigadas-forestales/internal/platform/apperr"
	"brigadas-forestales/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/api/reportes", reportHandler(svc, log))
}

type reportResponse struct {
	Tabla []Row `json:"tabla" swaggertype:"array,object"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// reportHandler godoc
// @Summary Reporte de árboles
// @Description Filas de ARBOL ordenadas por FECHA_REGISTRO desc. fechaInicio/fechaFin opcionales e inclusivos por día.
// @Tags reportes
// @Produce json
// @Param tipo query string true "Tipo de reporte (solo Arbol)"
// @Param fechaInicio query string false "YYYY-MM-DD"
// @Param fechaFin query string false "YYYY-MM-DD"
// @Success 200 {object} reportResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/reportes [get]
func reportHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		rows, err := svc.Generate(r.Context(), Query{
			Tipo:        q.Get("tipo"),
			FechaInicio: q.Get("fechaInicio"),
			FechaFin:    q.Get("fechaFin"),
		})
		if err != nil {
			status, msg := apperr.HTTPStatus(err)
			if status >= http.StatusInternalServerError {
				log.Error("reportes: request failed", map[string]any{"error": err})
			}
			writeJSON(w, status, errorResponse{Error: msg})
			return
		}
		writeJSON(w, http.StatusOK, reportResponse{Tabla: rows})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
