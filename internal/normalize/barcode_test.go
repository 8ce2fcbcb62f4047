// internal/normalize/barcode_test.go
package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/errors"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/safety"
)

func TestBarcodeItems_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantMsg string
	}{
		{"backend message", `{"error":"barcode_not_found","message":"No product for 012345"}`, "No product for 012345"},
		{"default message", `{"error":"barcode_not_found"}`, errors.MsgNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := BarcodeItems([]byte(tt.raw), "012345")
			require.Error(t, err)
			assert.Nil(t, items)

			scanErr := errors.Classify(err)
			assert.Equal(t, errors.KindNotFound, scanErr.Kind)
			assert.Equal(t, tt.wantMsg, scanErr.Message)
		})
	}
}

func TestBarcodeItems_IngredientsMissing(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantMsg string
	}{
		{"explicit signal", `{"error":"ingredients_missing"}`, errors.MsgIncompleteData},
		{"explicit signal with message", `{"error":"ingredients_missing","message":"Label unreadable"}`, "Label unreadable"},
		// A successful lookup with nothing matchable is just as
		// unactionable as the explicit signal.
		{"zero hits after validation", `{"hits":[],"display_name":"Gum"}`, errors.MsgIncompleteData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := BarcodeItems([]byte(tt.raw), "012345")
			require.Error(t, err)
			assert.Nil(t, items)

			scanErr := errors.Classify(err)
			assert.Equal(t, errors.KindIncompleteData, scanErr.Kind)
			assert.Equal(t, tt.wantMsg, scanErr.Message)
		})
	}
}

func TestBarcodeItems_AggregateFirstWithDerivedVerdict(t *testing.T) {
	raw := []byte(`{"hits":[{"name":"Xylitol","status":"UNSAFE"}],"display_name":"Gum"}`)

	items, err := BarcodeItems(raw, "049000001234")

	require.NoError(t, err)
	require.Len(t, items, 2)

	aggregate := items[0]
	assert.True(t, aggregate.IsAggregate)
	assert.Equal(t, "049000001234", aggregate.DisplayLabel)
	assert.Equal(t, "Gum", aggregate.CanonicalName)
	assert.Equal(t, safety.Unsafe, aggregate.Verdict, "no overall_status: derived from hits")

	ingredient := items[1]
	assert.False(t, ingredient.IsAggregate)
	assert.Equal(t, "Xylitol", ingredient.CanonicalName)
	assert.Equal(t, safety.Unsafe, ingredient.Verdict)
}

func TestBarcodeItems_ExplicitOverallStatusPreferred(t *testing.T) {
	raw := []byte(`{
		"hits":[{"name":"Sugar","status":"SAFE"}],
		"overall_status":"CAUTION",
		"display_name":"Candy"
	}`)

	items, err := BarcodeItems(raw, "111")

	require.NoError(t, err)
	assert.Equal(t, safety.Caution, items[0].Verdict)
}

func TestBarcodeItems_UnrecognizedOverallStatusFallsBackToAggregation(t *testing.T) {
	raw := []byte(`{
		"hits":[{"name":"Sugar","status":"CAUTION"},{"name":"Water","status":"SAFE"}],
		"overall_status":"WHO_KNOWS",
		"display_name":"Soda"
	}`)

	items, err := BarcodeItems(raw, "222")

	require.NoError(t, err)
	assert.Equal(t, safety.Caution, items[0].Verdict)
}

func TestBarcodeItems_ProductNameFallback(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantName string
	}{
		{"trimmed display name", `{"hits":[{"name":"Salt","status":"SAFE"}],"display_name":"  Sea Salt Crisps  "}`, "Sea Salt Crisps"},
		{"blank display name", `{"hits":[{"name":"Salt","status":"SAFE"}],"display_name":"   "}`, UnknownProductName},
		{"missing display name", `{"hits":[{"name":"Salt","status":"SAFE"}]}`, UnknownProductName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := BarcodeItems([]byte(tt.raw), "333")
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, items[0].CanonicalName)
		})
	}
}

func TestBarcodeItems_AggregateRationale(t *testing.T) {
	t.Run("count only", func(t *testing.T) {
		raw := []byte(`{"hits":[{"name":"Salt","status":"SAFE"}]}`)
		items, err := BarcodeItems(raw, "444")
		require.NoError(t, err)
		assert.Equal(t, "Matched 1 ingredient from the product label.", items[0].Rationale)
	})

	t.Run("count plus raw label text", func(t *testing.T) {
		raw := []byte(`{
			"hits":[{"name":"Salt","status":"SAFE"},{"name":"Sugar","status":"SAFE"}],
			"raw_ingredients":"salt, sugar, natural flavors"
		}`)
		items, err := BarcodeItems(raw, "444")
		require.NoError(t, err)
		assert.Equal(t,
			"Matched 2 ingredients from the product label. Label lists: salt, sugar, natural flavors",
			items[0].Rationale)
	})
}

func TestBarcodeItems_HitOrderPreserved(t *testing.T) {
	raw := []byte(`{"hits":[
		{"name":"Water","status":"SAFE"},
		{"name":"Xylitol","status":"UNSAFE"},
		{"name":"Citric Acid","status":"CAUTION"}
	],"display_name":"Drink"}`)

	items, err := BarcodeItems(raw, "555")

	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Water", items[1].CanonicalName)
	assert.Equal(t, "Xylitol", items[2].CanonicalName)
	assert.Equal(t, "Citric Acid", items[3].CanonicalName)
}

func TestBarcodeItems_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not an object", `[1,2,3]`},
		{"missing hits", `{"display_name":"Gum"}`},
		{"hits not array", `{"hits":"nope"}`},
		{"bad hit status", `{"hits":[{"name":"Salt","status":"DUBIOUS"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := BarcodeItems([]byte(tt.raw), "666")
			require.Error(t, err)
			assert.Nil(t, items)
			assert.Equal(t, errors.KindShapeMismatch, errors.KindOf(err))
		})
	}
}

func TestBarcodeItems_Idempotent(t *testing.T) {
	raw := []byte(`{"hits":[{"name":"Xylitol","status":"UNSAFE"}],"display_name":"Gum"}`)

	first, err1 := BarcodeItems(raw, "777")
	second, err2 := BarcodeItems(raw, "777")

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
