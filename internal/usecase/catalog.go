package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"context"
	"errors"

	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/pkg/errs"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrItemTypeNotFound = errors.New("item type not found")
)

type LocationView struct {
	catalog.Location
	Stock catalog.StockStatus
}

type LocationDirectory struct {
	Locations []LocationView
	Stats     catalog.DirectoryStats
}

type CatalogUseCase interface {
	Directory(ctx context.Context, query string) (*LocationDirectory, error)
	GetLocation(ctx context.Context, id int) (*LocationView, error)
	ListItemTypes(ctx context.Context) ([]catalog.ItemType, error)
}

type catalogUseCaseImpl struct {
	provider CatalogProvider
}

func NewCatalogUseCase(provider CatalogProvider) CatalogUseCase {
	return &catalogUseCaseImpl{provider: provider}
}

// Directory filters locations by query. Stats always describe the whole network.
func (c *catalogUseCaseImpl) Directory(ctx context.Context, query string) (*LocationDirectory, error) {
	all, err := c.provider.ListLocations(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list locations")
	}

	matched := catalog.Search(all, query)
	views := make([]LocationView, 0, len(matched))
	for _, l := range matched {
		views = append(views, LocationView{Location: l, Stock: l.StockStatus()})
	}

	return &LocationDirectory{
		Locations: views,
		Stats:     catalog.Stats(all),
	}, nil
}

func (c *catalogUseCaseImpl) GetLocation(ctx context.Context, id int) (*LocationView, error) {
	l, err := c.provider.FindLocation(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, errs.Wrap(err, "find location")
	}
	return &LocationView{Location: l, Stock: l.StockStatus()}, nil
}

func (c *catalogUseCaseImpl) ListItemTypes(ctx context.Context) ([]catalog.ItemType, error) {
	items, err := c.provider.ListItemTypes(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list item types")
	}
	return items, nil
}

// boundCatalog adapts a CatalogProvider to the wizard's lookups for the duration of one request.
type boundCatalog struct {
	ctx      context.Context
	provider CatalogProvider
}

func bindCatalog(ctx context.Context, p CatalogProvider) boundCatalog {
	return boundCatalog{ctx: ctx, provider: p}
}

func (b boundCatalog) Location(id int) (catalog.Location, error) {
	return b.provider.FindLocation(b.ctx, id)
}

func (b boundCatalog) ItemType(id catalog.ItemTypeID) (catalog.ItemType, error) {
	return b.provider.FindItemType(b.ctx, id)
}
