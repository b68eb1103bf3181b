package adopters

import (
	"context"
	"fmt"

	"shelter-api/internal/errs"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Find(ctx context.Context, f Filter) ([]Adopter, error) {
	return s.repo.Find(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Adopter, error) {
	return s.repo.FindByID(ctx, id)
}

// Create no valida campos requeridos: esa regla vive en el store.
func (s *Service) Create(ctx context.Context, in NewAdopter) (Adopter, error) {
	return s.repo.Add(ctx, in)
}

// Update aplica un patch parcial. Un patch vacío no escribe nada y devuelve
// el registro actual.
func (s *Service) Update(ctx context.Context, id int64, p Patch) (Adopter, error) {
	if p.Empty() {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.Update(ctx, id, p)
}

// Delete convierte el false de Remove en errs.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("adopter %d: %w", id, errs.ErrNotFound)
	}
	return nil
}
