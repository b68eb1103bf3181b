package adopters

import "context"

// Repository es el contrato de acceso a datos de adopters.
// Not found se reporta con errs.ErrNotFound, salvo Remove que devuelve false.
type Repository interface {
	Find(ctx context.Context, f Filter) ([]Adopter, error)
	FindByID(ctx context.Context, id int64) (Adopter, error)
	Add(ctx context.Context, in NewAdopter) (Adopter, error)
	Update(ctx context.Context, id int64, p Patch) (Adopter, error)
	Remove(ctx context.Context, id int64) (bool, error)
}
