package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
)

func TestDefaultCatalogValidates(t *testing.T) {
	cat := Default()
	brands := cat.Brands()
	require.NotEmpty(t, brands)
	assert.Equal(t, "Tesla", brands[0], "declared order should survive")
}

func TestNewRejectsBadData(t *testing.T) {
	cases := map[string][]Brand{
		"duplicate brand": {
			{Name: "A", Models: []Model{{Name: "M", Capacities: []float64{10}}}},
			{Name: "A", Models: []Model{{Name: "N", Capacities: []float64{10}}}},
		},
		"no models": {
			{Name: "A"},
		},
		"no capacities": {
			{Name: "A", Models: []Model{{Name: "M"}}},
		},
		"non-positive capacity": {
			{Name: "A", Models: []Model{{Name: "M", Capacities: []float64{0}}}},
		},
	}
	for name, brands := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(brands)
			assert.Error(t, err)
		})
	}
}

func TestModelsUnknownBrandIsCheckedError(t *testing.T) {
	cat := Default()
	_, err := cat.Models("Tesal")
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound), "expected not-found, got %v", err)
}

func TestModelLookup(t *testing.T) {
	cat := Default()
	model, err := cat.Model("Tesla", "Model S")
	require.NoError(t, err)
	require.Equal(t, []float64{100}, model.Capacities)
	assert.True(t, model.HasCapacity(100))
	assert.False(t, model.HasCapacity(82))

	_, err = cat.Model("Tesla", "Model Z")
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound), "expected not-found, got %v", err)
}

func TestSearchBrandsIsCaseInsensitiveSubstring(t *testing.T) {
	cat := Default()

	assert.Equal(t, []string{"Tesla"}, cat.SearchBrands("tESl"))

	// "vol" hits Volkswagen and Volvo.
	assert.Len(t, cat.SearchBrands("vol"), 2)

	assert.Len(t, cat.SearchBrands(""), len(cat.Brands()), "empty term must return everything")
}

func TestSearchModelsDoesNotMutateCatalog(t *testing.T) {
	cat := Default()

	filtered, err := cat.SearchModels("Tesla", "model 3")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Model 3", filtered[0].Name)

	again, err := cat.Models("Tesla")
	require.NoError(t, err)
	assert.Len(t, again, 6, "search must not mutate the catalog")
}

func TestFilterCapacities(t *testing.T) {
	caps := []float64{57.5, 82}
	assert.Equal(t, []float64{57.5}, FilterCapacities(caps, "57"))
	assert.Len(t, FilterCapacities(caps, ""), 2, "empty term should match all")
}

func TestFormatCapacity(t *testing.T) {
	cases := map[float64]string{
		100:   "100",
		57.5:  "57.5",
		100.5: "100.5",
		87.4:  "87.4",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCapacity(in))
	}
}
