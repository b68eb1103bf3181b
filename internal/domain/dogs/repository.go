package dogs

import "context"

type Repository interface {
	// List hace LEFT JOIN con adopters: nunca falla por un perro sin adoptante.
	List(ctx context.Context) ([]Listing, error)
	// ListByAdopter devuelve vacío (no error) si el adoptante no tiene perros o no existe.
	ListByAdopter(ctx context.Context, adopterID int64) ([]Dog, error)
	Add(ctx context.Context, in NewDog) (Dog, error)
}
