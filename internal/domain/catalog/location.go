package catalog

import (
	"fmt"
	"strings"
)

type Coordinates struct {
	Lat float64
	Lng float64
}

// Inventory counts rentable units per item type at a location.
type Inventory map[ItemTypeID]int

func (inv Inventory) Total() int {
	total := 0
	for _, n := range inv {
		total += n
	}
	return total
}

func (inv Inventory) Count(id ItemTypeID) int {
	return inv[id]
}

func (inv Inventory) clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}

type Location struct {
	ID          int
	Name        string
	Code        string
	Address     string
	Terminal    string
	Available   bool
	Inventory   Inventory
	Coordinates Coordinates
}

func (l Location) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLocationID, l.ID)
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("location %d: %w", l.ID, ErrEmptyName)
	}
	for id, n := range l.Inventory {
		if !id.IsValid() {
			return fmt.Errorf("location %d inventory: %w: %q", l.ID, ErrUnknownItemType, id)
		}
		if n < 0 {
			return fmt.Errorf("location %d inventory %s: %w", l.ID, id, ErrNegativeInventory)
		}
	}
	if l.Coordinates.Lat < -90 || l.Coordinates.Lat > 90 || l.Coordinates.Lng < -180 || l.Coordinates.Lng > 180 {
		return fmt.Errorf("location %d: %w", l.ID, ErrInvalidCoordinates)
	}
	return nil
}

// Offers reports whether the location can hand out the item type at all.
func (l Location) Offers(id ItemTypeID) bool {
	return l.Available && l.Inventory.Count(id) > 0
}

func (l Location) clone() Location {
	out := l
	out.Inventory = l.Inventory.clone()
	return out
}
