package dogs

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Listing, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByAdopter(ctx context.Context, adopterID int64) ([]Dog, error) {
	return s.repo.ListByAdopter(ctx, adopterID)
}

// Add inserta un perro. Un adopter_id inexistente lo rechaza la FK del store.
func (s *Service) Add(ctx context.Context, in NewDog) (Dog, error) {
	in.Name = strings.TrimSpace(in.Name)
	return s.repo.Add(ctx, in)
}
