package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite el token de sesión para un usuario autenticado.
type TokenIssuer interface {
	Issue(ctx context.Context, claims Claims) (Session, error)
}
