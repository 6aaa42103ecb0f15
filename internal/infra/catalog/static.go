package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/money"
	"carseat-rental/internal/pkg/config"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type document struct {
	Locations []locationDoc `yaml:"locations"`
	ItemTypes []itemTypeDoc `yaml:"item_types"`
}

type locationDoc struct {
	ID          int            `yaml:"id"`
	Name        string         `yaml:"name"`
	Code        string         `yaml:"code"`
	Address     string         `yaml:"address"`
	Terminal    string         `yaml:"terminal"`
	Available   bool           `yaml:"available"`
	Inventory   map[string]int `yaml:"inventory"`
	Coordinates struct {
		Lat float64 `yaml:"lat"`
		Lng float64 `yaml:"lng"`
	} `yaml:"coordinates"`
}

type itemTypeDoc struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	WeightRange string    `yaml:"weight_range"`
	AgeRange    string    `yaml:"age_range"`
	DailyRate   yamlMoney `yaml:"daily_rate"`
	Features    []string  `yaml:"features"`
	ImageURL    string    `yaml:"image_url"`
}

// yamlMoney decodes the scalar text directly so 14.95 never passes through a float.
type yamlMoney struct {
	money.Money
}

func (m *yamlMoney) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: daily_rate must be a scalar", node.Line)
	}
	parsed, err := money.Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	m.Money = parsed
	return nil
}

// StaticProvider serves a catalog decoded once at startup.
type StaticProvider struct {
	catalog *catalog.Catalog
}

func NewStaticProvider(cfg config.Config) (*StaticProvider, error) {
	raw := embeddedCatalog
	if cfg.Catalog.Path != "" {
		b, err := os.ReadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

func Parse(raw []byte) (*StaticProvider, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	locations := make([]catalog.Location, 0, len(doc.Locations))
	for _, l := range doc.Locations {
		inv := make(catalog.Inventory, len(l.Inventory))
		for key, n := range l.Inventory {
			id, err := catalog.NewItemTypeID(key)
			if err != nil {
				return nil, fmt.Errorf("location %d inventory: %w", l.ID, err)
			}
			inv[id] = n
		}
		locations = append(locations, catalog.Location{
			ID:          l.ID,
			Name:        l.Name,
			Code:        l.Code,
			Address:     l.Address,
			Terminal:    l.Terminal,
			Available:   l.Available,
			Inventory:   inv,
			Coordinates: catalog.Coordinates{Lat: l.Coordinates.Lat, Lng: l.Coordinates.Lng},
		})
	}

	itemTypes := make([]catalog.ItemType, 0, len(doc.ItemTypes))
	for _, it := range doc.ItemTypes {
		id, err := catalog.NewItemTypeID(it.ID)
		if err != nil {
			return nil, err
		}
		itemTypes = append(itemTypes, catalog.ItemType{
			ID:          id,
			Name:        it.Name,
			Description: it.Description,
			WeightRange: it.WeightRange,
			AgeRange:    it.AgeRange,
			DailyRate:   it.DailyRate.Money,
			Features:    it.Features,
			ImageURL:    it.ImageURL,
		})
	}

	c, err := catalog.New(locations, itemTypes)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &StaticProvider{catalog: c}, nil
}

func (p *StaticProvider) ListLocations(_ context.Context) ([]catalog.Location, error) {
	return p.catalog.Locations(), nil
}

func (p *StaticProvider) ListItemTypes(_ context.Context) ([]catalog.ItemType, error) {
	return p.catalog.ItemTypes(), nil
}

func (p *StaticProvider) FindLocation(_ context.Context, id int) (catalog.Location, error) {
	return p.catalog.Location(id)
}

func (p *StaticProvider) FindItemType(_ context.Context, id catalog.ItemTypeID) (catalog.ItemType, error) {
	return p.catalog.ItemType(id)
}

// Catalog exposes the snapshot the wizard validates against.
func (p *StaticProvider) Catalog() *catalog.Catalog {
	return p.catalog
}
