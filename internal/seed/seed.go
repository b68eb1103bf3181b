// Package seed carga adoptantes y perros desde YAML.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"shelter-api/internal/domain/adopters"
	"shelter-api/internal/domain/dogs"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultData []byte

type Data struct {
	Adopters []Adopter `yaml:"adopters"`

	// Dogs son perros sin adoptante.
	Dogs []Dog `yaml:"dogs"`
}

type Adopter struct {
	Name  string  `yaml:"name"`
	Email *string `yaml:"email"`
	Dogs  []Dog   `yaml:"dogs"`
}

type Dog struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

type Result struct {
	Adopters int
	Dogs     int
}

func Default() (Data, error) {
	return Parse(defaultData)
}

func Parse(b []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Data{}, fmt.Errorf("seed: parse yaml: %w", err)
	}
	return d, nil
}

func Read(r io.Reader) (Data, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Data{}, fmt.Errorf("seed: read: %w", err)
	}
	return Parse(b)
}

func ReadFile(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, fmt.Errorf("seed: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Apply inserta d en orden: cada adoptante y luego sus perros, después los
// perros sin adoptante. Corta en el primer error; lo ya insertado queda.
func Apply(ctx context.Context, adoptersSvc *adopters.Service, dogsSvc *dogs.Service, d Data) (Result, error) {
	var res Result

	for _, a := range d.Adopters {
		name := a.Name
		created, err := adoptersSvc.Create(ctx, adopters.NewAdopter{Name: &name, Email: a.Email})
		if err != nil {
			return res, fmt.Errorf("seed: adopter %q: %w", a.Name, err)
		}
		res.Adopters++

		for _, dog := range a.Dogs {
			id := created.ID
			if _, err := dogsSvc.Add(ctx, dogs.NewDog{Name: dog.Name, Weight: dog.Weight, AdopterID: &id}); err != nil {
				return res, fmt.Errorf("seed: dog %q: %w", dog.Name, err)
			}
			res.Dogs++
		}
	}

	for _, dog := range d.Dogs {
		if _, err := dogsSvc.Add(ctx, dogs.NewDog{Name: dog.Name, Weight: dog.Weight}); err != nil {
			return res, fmt.Errorf("seed: dog %q: %w", dog.Name, err)
		}
		res.Dogs++
	}

	return res, nil
}
