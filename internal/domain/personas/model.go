package personas

import (
	"strings"
	"time"
)

// AdminName es el nombre (en minúsculas) del usuario administrador.
const AdminName = "admin"

// Person es un brigadista registrado (tabla USUARIO).
type Person struct {
	NroDocumento string
	Nombre       string
	Apellido     string
	PasswordHash string
	Departamento string
	CreatedAt    time.Time
}

// IsAdmin replica la regla de redirección del login: nombre "admin" va al panel de administración.
func (p Person) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(p.Nombre), AdminName)
}
