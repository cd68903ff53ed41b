package catalog

import (
	"fmt"
	"strconv"
	"strings"

	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
)

// Model is a single vehicle model and the battery capacity options it
// ships with. Capacities are kWh, positive, and listed smallest first.
type Model struct {
	Name       string    `json:"name"`
	Capacities []float64 `json:"capacities"`
}

// Brand groups the models sold under one marque.
type Brand struct {
	Name   string  `json:"name"`
	Models []Model `json:"models"`
}

// Catalog is the immutable vehicle reference data, loaded once at
// process start. Brand order is the declared order, not map order.
type Catalog struct {
	brands []Brand
	index  map[string]int
}

// New validates and indexes the declared brand list.
func New(brands []Brand) (*Catalog, error) {
	index := make(map[string]int, len(brands))
	for i, brand := range brands {
		if strings.TrimSpace(brand.Name) == "" {
			return nil, fmt.Errorf("brand %d has no name", i)
		}
		if _, dup := index[brand.Name]; dup {
			return nil, fmt.Errorf("duplicate brand %q", brand.Name)
		}
		if len(brand.Models) == 0 {
			return nil, fmt.Errorf("brand %q has no models", brand.Name)
		}
		for _, model := range brand.Models {
			if len(model.Capacities) == 0 {
				return nil, fmt.Errorf("model %q/%q has no capacity options", brand.Name, model.Name)
			}
			for _, capacity := range model.Capacities {
				if capacity <= 0 {
					return nil, fmt.Errorf("model %q/%q has non-positive capacity %v", brand.Name, model.Name, capacity)
				}
			}
		}
		index[brand.Name] = i
	}
	return &Catalog{brands: brands, index: index}, nil
}

// Default returns the catalog built from the embedded vehicle data.
// The data is validated at init, so a panic here means a bad edit to
// data.go rather than a runtime condition.
func Default() *Catalog {
	cat, err := New(vehicleData)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid embedded data: %v", err))
	}
	return cat
}

// Brands returns the brand names in declared order.
func (c *Catalog) Brands() []string {
	names := make([]string, len(c.brands))
	for i, brand := range c.brands {
		names[i] = brand.Name
	}
	return names
}

// Models returns the model list for a brand. Unknown brands are a
// checked error, never a nil lookup.
func (c *Catalog) Models(brand string) ([]Model, error) {
	i, ok := c.index[brand]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("unknown brand %q", brand))
	}
	models := make([]Model, len(c.brands[i].Models))
	copy(models, c.brands[i].Models)
	return models, nil
}

// Model resolves a single brand/model pair.
func (c *Catalog) Model(brand, model string) (Model, error) {
	models, err := c.Models(brand)
	if err != nil {
		return Model{}, err
	}
	for _, m := range models {
		if m.Name == model {
			return m, nil
		}
	}
	return Model{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("unknown model %q for brand %q", model, brand))
}

// HasCapacity reports whether the model offers the given capacity.
func (m Model) HasCapacity(capacity float64) bool {
	for _, c := range m.Capacities {
		if c == capacity {
			return true
		}
	}
	return false
}

// SearchBrands filters brand names by case-insensitive substring match.
func (c *Catalog) SearchBrands(term string) []string {
	matches := make([]string, 0, len(c.brands))
	for _, brand := range c.brands {
		if matchesTerm(brand.Name, term) {
			matches = append(matches, brand.Name)
		}
	}
	return matches
}

// SearchModels filters a brand's models by case-insensitive substring
// match against the model name.
func (c *Catalog) SearchModels(brand, term string) ([]Model, error) {
	models, err := c.Models(brand)
	if err != nil {
		return nil, err
	}
	matches := make([]Model, 0, len(models))
	for _, model := range models {
		if matchesTerm(model.Name, term) {
			matches = append(matches, model)
		}
	}
	return matches, nil
}

// FilterCapacities filters capacity options by substring match against
// their rendered kWh value.
func FilterCapacities(capacities []float64, term string) []float64 {
	matches := make([]float64, 0, len(capacities))
	for _, capacity := range capacities {
		if matchesTerm(FormatCapacity(capacity), term) {
			matches = append(matches, capacity)
		}
	}
	return matches
}

// FormatCapacity renders a kWh value without trailing zeros (82,
// 57.5, 100.5).
func FormatCapacity(capacity float64) string {
	return strconv.FormatFloat(capacity, 'f', -1, 64)
}

func matchesTerm(candidate, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(candidate), strings.ToLower(term))
}
