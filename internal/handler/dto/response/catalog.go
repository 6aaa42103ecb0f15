package response

import (
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/money"
	"carseat-rental/internal/pkg/errs"
	"carseat-rental/internal/usecase"

	"github.com/jinzhu/copier"
)

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LocationResponse struct {
	ID          int                 `json:"id"`
	Name        string              `json:"name"`
	Code        string              `json:"code"`
	Address     string              `json:"address"`
	Terminal    string              `json:"terminal"`
	Available   bool                `json:"available"`
	Inventory   catalog.Inventory   `json:"inventory"`
	TotalSeats  int                 `json:"total_seats"`
	StockStatus catalog.StockStatus `json:"stock_status"`
	Position    CoordinatesResponse `json:"coordinates"`
}

type DirectoryStatsResponse struct {
	AvailableLocations int `json:"available_locations"`
	TotalSeats         int `json:"total_seats"`
}

type LocationDirectoryResponse struct {
	Locations []*LocationResponse    `json:"locations"`
	Stats     DirectoryStatsResponse `json:"stats"`
}

type ItemTypeResponse struct {
	ID          catalog.ItemTypeID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	WeightRange string             `json:"weight_range"`
	AgeRange    string             `json:"age_range"`
	DailyRate   money.Money        `json:"daily_rate"`
	Features    []string           `json:"features"`
	ImageURL    string             `json:"image_url"`
}

func FromLocationView(v *usecase.LocationView) (*LocationResponse, error) {
	var resp LocationResponse
	if err := copier.Copy(&resp, &v.Location); err != nil {
		return nil, errs.Wrapf(err, "copy location %d", v.ID)
	}
	if resp.Inventory == nil {
		resp.Inventory = catalog.Inventory{}
	}
	resp.TotalSeats = v.Inventory.Total()
	resp.StockStatus = v.Stock
	resp.Position = CoordinatesResponse{Lat: v.Coordinates.Lat, Lng: v.Coordinates.Lng}
	return &resp, nil
}

func FromLocationDirectory(d *usecase.LocationDirectory) (*LocationDirectoryResponse, error) {
	out := &LocationDirectoryResponse{
		Locations: make([]*LocationResponse, 0, len(d.Locations)),
		Stats: DirectoryStatsResponse{
			AvailableLocations: d.Stats.AvailableLocations,
			TotalSeats:         d.Stats.TotalSeats,
		},
	}
	for i := range d.Locations {
		loc, err := FromLocationView(&d.Locations[i])
		if err != nil {
			return nil, err
		}
		out.Locations = append(out.Locations, loc)
	}
	return out, nil
}

func FromItemTypes(items []catalog.ItemType) ([]ItemTypeResponse, error) {
	out := make([]ItemTypeResponse, 0, len(items))
	if err := copier.Copy(&out, &items); err != nil {
		return nil, errs.Wrap(err, "copy item types")
	}
	return out, nil
}
