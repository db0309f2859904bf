package dosing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.Len(t, c, 4)
	require.NoError(t, c.Validate())

	for _, e := range Effects {
		_, ok := c.ByEffect(e)
		assert.True(t, ok, "no entry for %s", e)
	}

	// Each call hands out an independent copy.
	c[0].Concentration = 1
	assert.Equal(t, 23.98, DefaultCatalog()[0].Concentration)
}

func TestCatalogByEffect(t *testing.T) {
	c := Catalog{
		{Name: "A", Concentration: 1, Effect: EffectIron},
		{Name: "B", Concentration: 2, Effect: EffectIron},
	}

	f, ok := c.ByEffect(EffectIron)
	require.True(t, ok)
	assert.Equal(t, "A", f.Name)

	_, ok = c.ByEffect(EffectNitrate)
	assert.False(t, ok)
}

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		errs    []string
	}{
		{
			name:    "empty",
			catalog: Catalog{},
			errs:    []string{"catalog is empty"},
		},
		{
			name:    "missing name",
			catalog: Catalog{{Name: "", Concentration: 1, Effect: EffectIron}},
			errs:    []string{"entry 0: missing name"},
		},
		{
			name:    "unknown effect",
			catalog: Catalog{{Name: "K2SO4", Concentration: 1, Effect: "K+"}},
			errs:    []string{`unknown effect "K+"`},
		},
		{
			name: "non-positive concentrations are all reported",
			catalog: Catalog{
				{Name: "Zero", Concentration: 0, Effect: EffectIron},
				{Name: "Negative", Concentration: -3, Effect: EffectNitrate},
			},
			errs: []string{"entry 0 (Zero): concentration must be > 0", "entry 1 (Negative): concentration must be > 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			require.Error(t, err)
			for _, want := range tt.errs {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestCatalogNormalize(t *testing.T) {
	c := Catalog{
		{Name: "  Ferro  ", Concentration: 20, Effect: "fe"},
		{Name: "Azoto", Concentration: 23.98, Effect: "no3-"},
		{Name: "Other", Concentration: 1, Effect: "bogus"},
	}

	n := c.Normalize()

	assert.Equal(t, Catalog{
		{Name: "Ferro", Concentration: 20, Effect: EffectIron},
		{Name: "Azoto", Concentration: 23.98, Effect: EffectNitrate},
		{Name: "Other", Concentration: 1, Effect: "bogus"},
	}, n)
	assert.Equal(t, Effect("fe"), c[0].Effect, "input left untouched")
}

func TestParseEffect(t *testing.T) {
	for in, want := range map[string]Effect{
		"NO3-":  EffectNitrate,
		"po4-":  EffectPhosphate,
		" mg+ ": EffectMagnesium,
		"FE":    EffectIron,
	} {
		got, err := ParseEffect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseEffect("NO3")
	assert.Error(t, err)
}
