package personas

import (
	"encoding/json"
	"net/http"
	"strings"

	"brigadas-forestales/internal/middleware"
	"brigadas-forestales/internal/platform/apperr"
	"brigadas-forestales/internal/platform/logger"
	"brigadas-forestales/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// ActionLogger es el historial best-effort (auditlog.Dispatcher).
type ActionLogger interface {
	LogAction(user, action string, details map[string]any)
}

func RegisterRoutes(r chi.Router, svc *Service, issuer auth.TokenIssuer, history ActionLogger, log logger.Logger) {
	r.Post("/api/registro", registerHandler(svc, log))
	r.Post("/api/login", loginHandler(svc, issuer, history, log))
	r.Post("/api/logout", logoutHandler())
	r.Get("/api/usuarios", listPersonsHandler(svc, log))
}

type registerRequest struct {
	NroDocumento string `json:"nro_documento"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Contrasena   string `json:"contrasena"`
	Departamento string `json:"departamento"`
}

type loginRequest struct {
	NroDocumento string `json:"nro_documento"`
	Contrasena   string `json:"contrasena"`
}

type loginResponse struct {
	OK      bool   `json:"ok"`
	Token   string `json:"token"`
	Nombre  string `json:"nombre"`
	Destino string `json:"destino"` // index2 (admin) | index
}

// personResponse mantiene las llaves en mayúscula que espera el frontend.
type personResponse struct {
	NroDocumento string `json:"NRO_DOCUMENTO"`
	Nombre       string `json:"NOMBRE"`
	Apellido     string `json:"APELLIDO"`
	Departamento string `json:"DEPARTAMENTO"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// registerHandler godoc
// @Summary Registrar brigadista
// @Description Crea un usuario. El departamento debe pertenecer a la lista de /api/municipios.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos del usuario"
// @Success 201 {object} map[string]bool
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse "usuario ya registrado"
// @Router /api/registro [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "json inválido"})
			return
		}

		_, err := svc.Register(r.Context(), RegisterInput{
			NroDocumento: req.NroDocumento,
			Nombre:       req.Nombre,
			Apellido:     req.Apellido,
			Contrasena:   req.Contrasena,
			Departamento: req.Departamento,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Valida credenciales, emite el token de sesión (también como cookie HttpOnly) y registra la acción en el historial.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse "credenciales incorrectas"
// @Router /api/login [post]
func loginHandler(svc *Service, issuer auth.TokenIssuer, history ActionLogger, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "json inválido"})
			return
		}

		p, err := svc.Authenticate(r.Context(), req.NroDocumento, req.Contrasena)
		if err != nil {
			writeError(w, log, err)
			return
		}

		nombre := strings.ToLower(p.Nombre)
		sess, err := issuer.Issue(r.Context(), auth.Claims{
			UserID: p.NroDocumento,
			Nombre: nombre,
			Admin:  p.IsAdmin(),
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		history.LogAction(p.NroDocumento, "login", map[string]any{"nombre": nombre})

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    sess.Token,
			Path:     "/",
			Expires:  sess.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		destino := "index"
		if p.IsAdmin() {
			destino = "index2"
		}
		writeJSON(w, http.StatusOK, loginResponse{
			OK:      true,
			Token:   sess.Token,
			Nombre:  nombre,
			Destino: destino,
		})
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Borra la cookie de sesión. El token bearer expira por sí solo.
// @Tags usuarios
// @Success 204
// @Router /api/logout [post]
func logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// listPersonsHandler godoc
// @Summary Listar usuarios
// @Description Lista usuarios; con ?departamento= filtra sin distinguir mayúsculas.
// @Tags usuarios
// @Produce json
// @Param departamento query string false "Departamento"
// @Success 200 {array} personResponse
// @Failure 500 {object} errorResponse
// @Router /api/usuarios [get]
func listPersonsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("departamento"))
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]personResponse, 0, len(items))
		for _, p := range items {
			out = append(out, personResponse{
				NroDocumento: p.NroDocumento,
				Nombre:       p.Nombre,
				Apellido:     p.Apellido,
				Departamento: p.Departamento,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	status, msg := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error("personas: request failed", map[string]any{"error": err})
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
