package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpecies(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4: Atlantic salmon", "Atlantic Salmon"},
		{"SALMO SALAR", "Atlantic Salmon"},
		{"unknown fish xyz", "Unknown Fish Xyz"},
		{"1 American Oyster", "American Oyster"},
		{"Salmon", "Atlantic Salmon"},
		{"  atlantic   salmon  ", "Atlantic Salmon"},
		{"Laks", "Atlantic Salmon"},
		{"Regnbueørret", "Rainbow Trout"},
		{"Bleikja", "Arctic Char"},
		{"Moule bleue", "Blue Mussel"},
		{"Huitre americaine", "American Oyster"},
		{"Omble de fontaine", "Brook Trout"},
		{"Farmed Atlantic Salmon (smolt)", "Atlantic Salmon"},
		{"Mytilus spp.", "Blue Mussel"},
		{"Rope-grown mussels", "Mussel"},
		{"Giant Pacific oysters", "Pacific Oyster"},
		{"Sea Urchins", "Sea Urchin"},
		{"12:Turbot", "Turbot"},
		{"", ""},
		{"   ", ""},
		{"7: ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSpecies(tc.in))
		})
	}
}

func TestNormalizeSpecies_Deterministic(t *testing.T) {
	inputs := []string{"4: Atlantic salmon", "SALMO SALAR", "unknown fish xyz", "Røye", "Kelp sp."}
	for _, in := range inputs {
		first := NormalizeSpecies(in)
		for range 5 {
			assert.Equal(t, first, NormalizeSpecies(in))
		}
	}
}

func TestSplitSpecies(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Char, Salmon", []string{"Char", "Salmon"}},
		{"", []string{}},
		{"N/A", []string{}},
		{"Mussel; Oyster & Scallop", []string{"Mussel", "Oyster", "Scallop"}},
		{"Salmon, unknown, UNKNOWN, n/a,  ", []string{"Salmon"}},
		{"  Rainbow Trout  ", []string{"Rainbow Trout"}},
		{"Salmon|Char", []string{"Salmon", "Char"}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitSpecies(tc.in))
		})
	}
}

func TestNormalizeSpeciesList(t *testing.T) {
	assert.Equal(t,
		[]string{"Atlantic Salmon", "Arctic Char"},
		NormalizeSpeciesList("Salmo salar; Arctic charr, 2: Atlantic salmon"),
	)
	assert.Empty(t, NormalizeSpeciesList("N/A"))
}

func TestNormalizeWaterType(t *testing.T) {
	assert.Equal(t, "Seawater", NormalizeWaterType("SALTVANN"))
	assert.Equal(t, "Seawater", NormalizeWaterType("Marine"))
	assert.Equal(t, "Freshwater", NormalizeWaterType("fresh water"))
	assert.Equal(t, "Freshwater", NormalizeWaterType("Ferskvann"))
	assert.Equal(t, "Brackish", NormalizeWaterType("Brakkvann"))
	assert.Equal(t, "Estuarine", NormalizeWaterType("estuarine"))
	assert.Equal(t, "N/A", NormalizeWaterType("N/A"))
	assert.Empty(t, NormalizeWaterType(""))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Unknown Fish Xyz", TitleCase("unknown   FISH xyz"))
	assert.Empty(t, TitleCase("   "))
}

func TestSpeciesKnown(t *testing.T) {
	assert.True(t, SpeciesKnown("4: Atlantic salmon"))
	assert.True(t, SpeciesKnown("Rope-grown mussels"))
	assert.False(t, SpeciesKnown("unknown fish xyz"))
	assert.False(t, SpeciesKnown(""))
}
