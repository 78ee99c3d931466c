package regions

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Get("/api/municipios", listRegionsHandler())
}

// listRegionsHandler godoc
// @Summary Listar departamentos
// @Description Devuelve la lista fija de departamentos para el selector de municipios.
// @Tags referencia
// @Produce json
// @Success 200 {array} Region
// @Router /api/municipios [get]
func listRegionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, List())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
