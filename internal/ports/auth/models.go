package auth

import "time"

// Claims representa la información extraída del token de sesión.
type Claims struct {
	UserID string // nro_documento
	Nombre string
	Admin  bool
}

// Session es un token emitido tras el login.
type Session struct {
	Token     string
	ExpiresAt time.Time
}
