package memory

import (
	"context"
	"sort"

	"shelter-api/internal/domain/dogs"
	"shelter-api/internal/errs"
)

type dogRepo struct {
	s *Store
}

var _ dogs.Repository = (*dogRepo)(nil)

func NewDogRepo(s *Store) dogs.Repository {
	return &dogRepo{s: s}
}

func (r *dogRepo) List(ctx context.Context) ([]dogs.Listing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]dogs.Listing, 0, len(r.s.dogs))
	for _, d := range r.s.dogs {
		l := dogs.Listing{ID: d.ID, Name: d.Name, Weight: d.Weight}
		// LEFT JOIN: sin adoptante (o adoptante inexistente) => nombre nil
		if d.AdopterID != nil {
			if a, ok := r.s.adopters[*d.AdopterID]; ok {
				name := a.Name
				l.AdopterName = &name
			}
		}
		out = append(out, l)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *dogRepo) ListByAdopter(ctx context.Context, adopterID int64) ([]dogs.Dog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]dogs.Dog, 0)
	for _, d := range r.s.dogs {
		if d.AdopterID != nil && *d.AdopterID == adopterID {
			out = append(out, cloneDog(d))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *dogRepo) Add(ctx context.Context, in dogs.NewDog) (dogs.Dog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if in.AdopterID != nil {
		if _, ok := r.s.adopters[*in.AdopterID]; !ok {
			return dogs.Dog{}, &errs.ValidationError{Field: "adopter_id", Message: "FOREIGN KEY constraint failed"}
		}
	}

	r.s.nextDogID++
	d := dogs.Dog{
		ID:        r.s.nextDogID,
		Name:      in.Name,
		Weight:    in.Weight,
		AdopterID: copyInt(in.AdopterID),
	}
	r.s.dogs[d.ID] = d
	return cloneDog(d), nil
}

func cloneDog(d dogs.Dog) dogs.Dog {
	d.AdopterID = copyInt(d.AdopterID)
	return d
}

func copyInt(v *int64) *int64 {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
