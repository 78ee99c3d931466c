package reportes

import "context"

type Repository interface {
	// TreeReport devuelve las filas de ARBOL que cumplen el filtro, por FECHA_REGISTRO desc.
	TreeReport(ctx context.Context, f Filter) ([]Row, error)
}
