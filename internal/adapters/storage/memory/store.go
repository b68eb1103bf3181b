package memory

import (
	"sync"

	"shelter-api/internal/domain/adopters"
	"shelter-api/internal/domain/dogs"
)

// Store guarda adopters y dogs juntos para poder emular el JOIN y la FK
// dogs.adopter_id -> adopters.id con un solo lock.
type Store struct {
	mu       sync.RWMutex
	adopters map[int64]adopters.Adopter
	dogs     map[int64]dogs.Dog

	nextAdopterID int64
	nextDogID     int64
}

func NewStore() *Store {
	return &Store{
		adopters: make(map[int64]adopters.Adopter),
		dogs:     make(map[int64]dogs.Dog),
	}
}

// hasDogs debe llamarse con el lock tomado.
func (s *Store) hasDogs(adopterID int64) bool {
	for _, d := range s.dogs {
		if d.AdopterID != nil && *d.AdopterID == adopterID {
			return true
		}
	}
	return false
}
