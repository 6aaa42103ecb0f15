package catalog

import (
	"errors"
	"fmt"
	"strings"

	"carseat-rental/internal/domain/money"
)

var (
	ErrUnknownItemType    = errors.New("unknown item type")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrNonPositiveRate    = errors.New("daily rate must be positive")
	ErrNegativeInventory  = errors.New("inventory count cannot be negative")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrInvalidLocationID  = errors.New("location id must be positive")
)

// ItemTypeID is the closed set of rentable seat types. Inventory is keyed by it.
type ItemTypeID string

const (
	ItemWaybPico      ItemTypeID = "wayb_pico"
	ItemRidesaferVest ItemTypeID = "ridesafer_vest"
)

var itemTypeIDs = []ItemTypeID{ItemWaybPico, ItemRidesaferVest}

func ItemTypeIDs() []ItemTypeID {
	out := make([]ItemTypeID, len(itemTypeIDs))
	copy(out, itemTypeIDs)
	return out
}

func (id ItemTypeID) String() string {
	return string(id)
}

func (id ItemTypeID) IsValid() bool {
	switch id {
	case ItemWaybPico, ItemRidesaferVest:
		return true
	default:
		return false
	}
}

func NewItemTypeID(s string) (ItemTypeID, error) {
	id := ItemTypeID(strings.TrimSpace(s))
	if !id.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownItemType, s)
	}
	return id, nil
}

type ItemType struct {
	ID          ItemTypeID
	Name        string
	Description string
	WeightRange string
	AgeRange    string
	DailyRate   money.Money
	Features    []string
	ImageURL    string
}

func (it ItemType) Validate() error {
	if !it.ID.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownItemType, it.ID)
	}
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("item type %s: %w", it.ID, ErrEmptyName)
	}
	if !it.DailyRate.IsPositive() {
		return fmt.Errorf("item type %s: %w", it.ID, ErrNonPositiveRate)
	}
	return nil
}

func (it ItemType) clone() ItemType {
	out := it
	out.Features = append([]string(nil), it.Features...)
	return out
}
