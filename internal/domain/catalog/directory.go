package catalog

import (
	"strings"
)

type StockStatus string

const (
	StockUnavailable StockStatus = "unavailable"
	StockLow         StockStatus = "low"
	StockAvailable   StockStatus = "available"
)

const LowStockThreshold = 5

func (l Location) StockStatus() StockStatus {
	total := l.Inventory.Total()
	switch {
	case !l.Available || total == 0:
		return StockUnavailable
	case total < LowStockThreshold:
		return StockLow
	default:
		return StockAvailable
	}
}

// Matches does a case-insensitive substring match on name, airport code and address.
func (l Location) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(strings.ToLower(l.Code), q) ||
		strings.Contains(strings.ToLower(l.Address), q)
}

func Search(locations []Location, query string) []Location {
	out := make([]Location, 0, len(locations))
	for _, l := range locations {
		if l.Matches(query) {
			out = append(out, l)
		}
	}
	return out
}

type DirectoryStats struct {
	AvailableLocations int
	TotalSeats         int
}

func Stats(locations []Location) DirectoryStats {
	var s DirectoryStats
	for _, l := range locations {
		if l.Available {
			s.AvailableLocations++
		}
		s.TotalSeats += l.Inventory.Total()
	}
	return s
}
