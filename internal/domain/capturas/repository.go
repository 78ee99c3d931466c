package capturas

import "context"

type Repository interface {
	// InsertTree inserta una fila y devuelve su id.
	InsertTree(ctx context.Context, t Tree) (int64, error)
	InsertPlant(ctx context.Context, p Plant) (int64, error)
}
