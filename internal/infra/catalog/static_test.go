//go:build unit

package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	domaincatalog "carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/infra/catalog"
	"carseat-rental/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	p, err := catalog.NewStaticProvider(config.NewTestConfig())
	require.NoError(t, err)
	ctx := context.Background()

	locs, err := p.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locs, 4)
	codes := []string{locs[0].Code, locs[1].Code, locs[2].Code, locs[3].Code}
	assert.Equal(t, []string{"LAX", "JFK", "MIA", "ORD"}, codes)
	assert.Equal(t, domaincatalog.StockUnavailable, locs[3].StockStatus())
	assert.Equal(t, 12, locs[0].Inventory.Count(domaincatalog.ItemWaybPico))

	items, err := p.ListItemTypes(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1495), items[0].DailyRate.Cents())
	assert.Equal(t, int64(995), items[1].DailyRate.Cents())
	assert.Len(t, items[0].Features, 5)

	_, err = p.FindLocation(ctx, 42)
	assert.ErrorIs(t, err, domaincatalog.ErrLocationNotFound)
	it, err := p.FindItemType(ctx, domaincatalog.ItemRidesaferVest)
	require.NoError(t, err)
	assert.Equal(t, "Ridesafer Vest", it.Name)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{
			name: "inventory key outside the item enumeration",
			doc: `
locations:
  - id: 1
    name: LAX
    available: true
    inventory: {toddler: 3}
item_types: []`,
		},
		{
			name: "rate with more than two decimals",
			doc: `
locations: []
item_types:
  - id: wayb_pico
    name: Wayb Pico
    daily_rate: "14.955"`,
		},
		{
			name: "zero rate",
			doc: `
locations: []
item_types:
  - id: wayb_pico
    name: Wayb Pico
    daily_rate: 0`,
		},
		{
			name: "malformed yaml",
			doc:  "locations: [",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(c.doc))
			assert.Error(t, err)
		})
	}
}

func TestUnquotedRateIsExact(t *testing.T) {
	p, err := catalog.Parse([]byte(`
locations: []
item_types:
  - id: wayb_pico
    name: Wayb Pico
    daily_rate: 14.95`))
	require.NoError(t, err)
	items, _ := p.ListItemTypes(context.Background())
	assert.Equal(t, int64(1495), items[0].DailyRate.Cents())
}

func TestOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
locations:
  - id: 7
    name: Seattle-Tacoma International Airport
    code: SEA
    available: true
    inventory: {wayb_pico: 3}
item_types:
  - id: wayb_pico
    name: Wayb Pico
    daily_rate: "12.00"`), 0o600))

	cfg := config.NewTestConfig()
	cfg.Catalog.Path = path
	p, err := catalog.NewStaticProvider(cfg)
	require.NoError(t, err)

	loc, err := p.FindLocation(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domaincatalog.StockLow, loc.StockStatus())
}
