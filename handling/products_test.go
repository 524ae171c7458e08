package handling

import (
	"encoding/json"
	"testing"

	"elsabor_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProductsNonArray(t *testing.T) {
	for _, raw := range []string{``, `null`, `{"title":"x"}`, `"hello"`, `not json`} {
		got := NormalizeProducts(json.RawMessage(raw))
		assert.Empty(t, got, "input %q", raw)
		assert.NotNil(t, got, "input %q", raw)
	}
}

func TestNormalizeProductsSkipsMalformedElements(t *testing.T) {
	raw := json.RawMessage(`[
		{"title": "Empanadas", "price": 4.5, "flavors": [{"name": "Carne", "quantity": 2}]},
		"oops",
		42,
		{"title": "Limonada", "price": 3.5}
	]`)

	got := NormalizeProducts(raw)
	require.Len(t, got, 2, "bad elements must not discard the good ones")
	assert.Equal(t, "Empanadas", got[0].Title)
	assert.Equal(t, "Limonada", got[1].Title)
}

func TestNormalizeProductsColorsUpgrade(t *testing.T) {
	raw := json.RawMessage(`[
		{
			"title": "Empanadas",
			"category": "entradas",
			"price": 12.5,
			"colors": [
				{"name": "Carne", "image": "carne.png", "sizes": [{"stock": 3}, {"stock": 2}]},
				{"name": "Pollo", "quantity": 4}
			]
		}
	]`)

	got := NormalizeProducts(raw)
	require.Len(t, got, 1)
	require.Len(t, got[0].Flavors, 2)

	assert.Equal(t, "Carne", got[0].Flavors[0].Name)
	assert.Equal(t, 5, got[0].Flavors[0].Quantity, "sizes stock should be summed")
	assert.Equal(t, "Pollo", got[0].Flavors[1].Name)
	assert.Equal(t, 4, got[0].Flavors[1].Quantity, "direct quantity used when no sizes")
}

func TestNormalizeProductsColorsSoldOutLast(t *testing.T) {
	raw := json.RawMessage(`[
		{
			"title": "Empanadas",
			"colors": [
				{"name": "Agotado", "sizes": [{"stock": 0}]},
				{"name": "Carne", "quantity": 2}
			]
		}
	]`)

	got := NormalizeProducts(raw)
	require.Len(t, got, 1)
	require.Len(t, got[0].Flavors, 2)
	assert.Equal(t, "Carne", got[0].Flavors[0].Name)
	assert.Equal(t, "Agotado", got[0].Flavors[1].Name)
}

func TestNormalizeFlavorsDefaults(t *testing.T) {
	got := NormalizeFlavors([]structs.Flavor{
		{Quantity: -3},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "No name", got[0].Name)
	assert.Equal(t, PlaceholderImageURL, got[0].Image)
	assert.Equal(t, 0, got[0].Quantity)
}

func TestNormalizeFlavorsStablePartition(t *testing.T) {
	got := NormalizeFlavors([]structs.Flavor{
		{Name: "a", Quantity: 0},
		{Name: "b", Quantity: 2},
		{Name: "c", Quantity: 0},
		{Name: "d", Quantity: 1},
	})

	require.Len(t, got, 4)
	names := []string{got[0].Name, got[1].Name, got[2].Name, got[3].Name}
	assert.Equal(t, []string{"b", "d", "a", "c"}, names)

	// No in-stock flavor may follow a sold-out one
	seenSoldOut := false
	for _, f := range got {
		if f.Quantity == 0 {
			seenSoldOut = true
		} else if seenSoldOut {
			t.Fatalf("in-stock flavor %q after a sold-out one", f.Name)
		}
	}
}

func TestNormalizeProductsIdempotent(t *testing.T) {
	raw := json.RawMessage(`[
		{
			"title": "Empanadas",
			"price": 10,
			"colors": [
				{"name": "Agotado", "sizes": [{"stock": 0}]},
				{"name": "", "quantity": 2}
			]
		},
		{
			"title": "Postre",
			"flavors": [
				{"name": "Tres Leches", "quantity": 0},
				{"quantity": 5}
			]
		}
	]`)

	once := NormalizeProducts(raw)

	remarshaled, err := json.Marshal(once)
	require.NoError(t, err)

	twice := NormalizeProducts(remarshaled)
	assert.Equal(t, once, twice)
}
