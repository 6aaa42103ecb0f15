package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrItemTypeNotFound = errors.New("item type not found")
	ErrDuplicateEntry   = errors.New("duplicate catalog entry")
)

// Catalog is an ordered, read-only set of locations and item types.
// Accessors hand out copies so callers cannot mutate shared state.
type Catalog struct {
	locations []Location
	itemTypes []ItemType
}

func New(locations []Location, itemTypes []ItemType) (*Catalog, error) {
	seenLoc := make(map[int]struct{}, len(locations))
	for _, l := range locations {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seenLoc[l.ID]; dup {
			return nil, fmt.Errorf("%w: location %d", ErrDuplicateEntry, l.ID)
		}
		seenLoc[l.ID] = struct{}{}
	}
	seenItem := make(map[ItemTypeID]struct{}, len(itemTypes))
	for _, it := range itemTypes {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seenItem[it.ID]; dup {
			return nil, fmt.Errorf("%w: item type %s", ErrDuplicateEntry, it.ID)
		}
		seenItem[it.ID] = struct{}{}
	}

	c := &Catalog{
		locations: make([]Location, len(locations)),
		itemTypes: make([]ItemType, len(itemTypes)),
	}
	for i, l := range locations {
		c.locations[i] = l.clone()
	}
	for i, it := range itemTypes {
		c.itemTypes[i] = it.clone()
	}
	return c, nil
}

func (c *Catalog) Locations() []Location {
	out := make([]Location, len(c.locations))
	for i, l := range c.locations {
		out[i] = l.clone()
	}
	return out
}

func (c *Catalog) ItemTypes() []ItemType {
	out := make([]ItemType, len(c.itemTypes))
	for i, it := range c.itemTypes {
		out[i] = it.clone()
	}
	return out
}

func (c *Catalog) Location(id int) (Location, error) {
	for _, l := range c.locations {
		if l.ID == id {
			return l.clone(), nil
		}
	}
	return Location{}, ErrLocationNotFound
}

func (c *Catalog) ItemType(id ItemTypeID) (ItemType, error) {
	for _, it := range c.itemTypes {
		if it.ID == id {
			return it.clone(), nil
		}
	}
	return ItemType{}, ErrItemTypeNotFound
}
