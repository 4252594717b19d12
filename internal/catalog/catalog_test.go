package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"altura_store/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, doc string) *catalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	cat, err := catalog.Load(path)
	require.NoError(t, err)
	return cat
}

func TestLoad_IndexesBySlug(t *testing.T) {
	cat := writeCatalog(t, `{"products":[
		{"slug":"aero-trainer","code":"ALT-001","name_en":"Aero Trainer","category":"shoes"},
		{"slug":"alpine-cap","code":"ALT-003","name_en":"Alpine Cap","category":"accessory"}
	]}`)

	assert.Len(t, cat.Products(), 2)

	p, ok := cat.FindBySlug("aero-trainer")
	require.True(t, ok)
	assert.Equal(t, "ALT-001", p.Code)
	assert.True(t, p.RequiresSize())

	cap, ok := cat.FindBySlug("alpine-cap")
	require.True(t, ok)
	assert.False(t, cap.RequiresSize())

	_, ok = cat.FindBySlug("missing")
	assert.False(t, ok)
}

func TestUnitAmount_FallbackChain(t *testing.T) {
	cat := writeCatalog(t, `{"products":[
		{"slug":"with-table","price":{"EUR":12900,"USD":13900},"price_eur":11111,"price_usd":22222},
		{"slug":"fields-only","price_eur":3500,"price_usd":3900},
		{"slug":"eur-only","price_eur":3500}
	]}`)

	withTable, _ := cat.FindBySlug("with-table")
	fieldsOnly, _ := cat.FindBySlug("fields-only")
	eurOnly, _ := cat.FindBySlug("eur-only")

	// Price table wins when it has the currency.
	assert.Equal(t, int64(12900), cat.UnitAmount(withTable, "EUR"))
	assert.Equal(t, int64(13900), cat.UnitAmount(withTable, "USD"))

	// Otherwise the currency-specific field.
	assert.Equal(t, int64(3500), cat.UnitAmount(fieldsOnly, "EUR"))
	assert.Equal(t, int64(3900), cat.UnitAmount(fieldsOnly, "USD"))

	// Unavailable resolves to zero, not an error.
	assert.Equal(t, int64(0), cat.UnitAmount(eurOnly, "USD"))
}

func TestLoad_RawIsVerbatim(t *testing.T) {
	doc := `{"brand":"ALTURA","products":[]}`
	cat := writeCatalog(t, doc)
	assert.Equal(t, doc, string(cat.Raw()))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
