package memory

import (
	"context"
	"sort"

	"shelter-api/internal/domain/adopters"
	"shelter-api/internal/errs"
)

type adopterRepo struct {
	s *Store
}

var _ adopters.Repository = (*adopterRepo)(nil)

func NewAdopterRepo(s *Store) adopters.Repository {
	return &adopterRepo{s: s}
}

func (r *adopterRepo) Find(ctx context.Context, f adopters.Filter) ([]adopters.Adopter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]adopters.Adopter, 0)
	for _, a := range r.s.adopters {
		if f.Matches(a) {
			out = append(out, clone(a))
		}
	}

	// mismo orden que el store SQL
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *adopterRepo) FindByID(ctx context.Context, id int64) (adopters.Adopter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.adopters[id]
	if !ok {
		return adopters.Adopter{}, errs.ErrNotFound
	}
	return clone(a), nil
}

func (r *adopterRepo) Add(ctx context.Context, in adopters.NewAdopter) (adopters.Adopter, error) {
	// emula la constraint NOT NULL de adopters.name
	if in.Name == nil {
		return adopters.Adopter{}, notNull("adopters.name")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextAdopterID++
	a := adopters.Adopter{
		ID:    r.s.nextAdopterID,
		Name:  *in.Name,
		Email: copyString(in.Email),
	}
	r.s.adopters[a.ID] = a
	return clone(a), nil
}

func (r *adopterRepo) Update(ctx context.Context, id int64, p adopters.Patch) (adopters.Adopter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.adopters[id]
	if !ok {
		return adopters.Adopter{}, errs.ErrNotFound
	}
	if p.Name.Set && p.Name.Value == nil {
		return adopters.Adopter{}, notNull("adopters.name")
	}

	updated := p.Apply(clone(current))
	r.s.adopters[id] = updated
	return clone(updated), nil
}

func (r *adopterRepo) Remove(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.adopters[id]; !ok {
		return false, nil
	}
	// sin cascade: igual que la FK del store SQL, no se borra un adoptante con perros
	if r.s.hasDogs(id) {
		return false, &errs.ValidationError{Field: "adopter_id", Message: "FOREIGN KEY constraint failed"}
	}
	delete(r.s.adopters, id)
	return true, nil
}

func notNull(column string) error {
	return &errs.ValidationError{Message: "NOT NULL constraint failed: " + column}
}

func clone(a adopters.Adopter) adopters.Adopter {
	a.Email = copyString(a.Email)
	return a
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
