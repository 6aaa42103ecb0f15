//go:build unit || e2e

package builder

import (
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/money"
)

// CatalogBuilder yields a small airport catalog: LAX and JFK open, ORD closed with no stock.
type CatalogBuilder struct {
	Locations []catalog.Location
	ItemTypes []catalog.ItemType
}

func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		Locations: []catalog.Location{
			{
				ID: 1, Name: "Los Angeles International Airport", Code: "LAX",
				Address: "1 World Way, Los Angeles, CA 90045", Terminal: "Terminal 1 - Baggage Claim",
				Available:   true,
				Inventory:   catalog.Inventory{catalog.ItemWaybPico: 12, catalog.ItemRidesaferVest: 15},
				Coordinates: catalog.Coordinates{Lat: 33.9425, Lng: -118.4081},
			},
			{
				ID: 2, Name: "John F. Kennedy International Airport", Code: "JFK",
				Address: "Queens, NY 11430", Terminal: "Terminal 4 - Baggage Claim",
				Available:   true,
				Inventory:   catalog.Inventory{catalog.ItemWaybPico: 1, catalog.ItemRidesaferVest: 2},
				Coordinates: catalog.Coordinates{Lat: 40.6413, Lng: -73.7781},
			},
			{
				ID: 4, Name: "O'Hare International Airport", Code: "ORD",
				Address: "10000 W O'Hare Ave, Chicago, IL 60666", Terminal: "Terminal 1 - Baggage Claim",
				Available:   false,
				Inventory:   catalog.Inventory{catalog.ItemWaybPico: 0, catalog.ItemRidesaferVest: 0},
				Coordinates: catalog.Coordinates{Lat: 41.9742, Lng: -87.9073},
			},
		},
		ItemTypes: []catalog.ItemType{
			{
				ID: catalog.ItemWaybPico, Name: "Wayb Pico",
				Description: "Ultra-portable car seat for children ages 1-4", WeightRange: "22-40 lbs", AgeRange: "1-4 years",
				DailyRate: money.MustParse("14.95"),
				Features:  []string{"Ultra-compact fold", "FAA approved for airplanes"},
			},
			{
				ID: catalog.ItemRidesaferVest, Name: "Ridesafer Vest",
				Description: "Wearable safety vest", WeightRange: "30-100 lbs", AgeRange: "5+ years",
				DailyRate: money.MustParse("9.95"),
				Features:  []string{"Wearable safety vest", "No installation required"},
			},
		},
	}
}

func (b *CatalogBuilder) With(mutate func(*CatalogBuilder)) *CatalogBuilder {
	mutate(b)
	return b
}

func (b *CatalogBuilder) Build() *catalog.Catalog {
	c, err := catalog.New(b.Locations, b.ItemTypes)
	if err != nil {
		panic(err)
	}
	return c
}
