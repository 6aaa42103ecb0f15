//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/usecase"
	"carseat-rental/tests/common/builder"
	usecasemock "carseat-rental/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_Directory(t *testing.T) {
	ctx := context.Background()
	locations := builder.NewCatalogBuilder().Locations

	tests := []struct {
		name      string
		query     string
		wantCodes []string
		wantStock []catalog.StockStatus
	}{
		{
			name:      "empty query lists every location",
			query:     "",
			wantCodes: []string{"LAX", "JFK", "ORD"},
			wantStock: []catalog.StockStatus{catalog.StockAvailable, catalog.StockLow, catalog.StockUnavailable},
		},
		{
			name:      "matches name case-insensitively",
			query:     "  los ANGELES ",
			wantCodes: []string{"LAX"},
			wantStock: []catalog.StockStatus{catalog.StockAvailable},
		},
		{
			name:      "matches address",
			query:     "chicago",
			wantCodes: []string{"ORD"},
			wantStock: []catalog.StockStatus{catalog.StockUnavailable},
		},
		{
			name:      "no match",
			query:     "heathrow",
			wantCodes: []string{},
			wantStock: []catalog.StockStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := usecasemock.NewMockCatalogProvider(ctrl)
			provider.EXPECT().ListLocations(ctx).Return(locations, nil).Times(1)

			dir, err := usecase.NewCatalogUseCase(provider).Directory(ctx, tt.query)
			require.NoError(t, err)

			codes := make([]string, 0, len(dir.Locations))
			stock := make([]catalog.StockStatus, 0, len(dir.Locations))
			for _, v := range dir.Locations {
				codes = append(codes, v.Code)
				stock = append(stock, v.Stock)
			}
			if diff := cmp.Diff(tt.wantCodes, codes); diff != "" {
				t.Errorf("codes mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantStock, stock); diff != "" {
				t.Errorf("stock mismatch (-want +got):\n%s", diff)
			}

			// stats ignore the filter
			assert.Equal(t, catalog.DirectoryStats{AvailableLocations: 2, TotalSeats: 30}, dir.Stats)
		})
	}

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := usecasemock.NewMockCatalogProvider(ctrl)
		boom := errors.New("boom")
		provider.EXPECT().ListLocations(ctx).Return(nil, boom).Times(1)

		_, err := usecase.NewCatalogUseCase(provider).Directory(ctx, "")
		assert.ErrorIs(t, err, boom)
	})
}

func TestCatalogUseCase_GetLocation(t *testing.T) {
	ctx := context.Background()
	lax := builder.NewCatalogBuilder().Locations[0]

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := usecasemock.NewMockCatalogProvider(ctrl)
		provider.EXPECT().FindLocation(ctx, 1).Return(lax, nil).Times(1)

		v, err := usecase.NewCatalogUseCase(provider).GetLocation(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "LAX", v.Code)
		assert.Equal(t, catalog.StockAvailable, v.Stock)
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := usecasemock.NewMockCatalogProvider(ctrl)
		provider.EXPECT().FindLocation(ctx, 99).Return(catalog.Location{}, catalog.ErrLocationNotFound).Times(1)

		_, err := usecase.NewCatalogUseCase(provider).GetLocation(ctx, 99)
		assert.ErrorIs(t, err, usecase.ErrLocationNotFound)
	})
}

func TestCatalogUseCase_ListItemTypes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	provider := usecasemock.NewMockCatalogProvider(ctrl)
	items := builder.NewCatalogBuilder().ItemTypes
	provider.EXPECT().ListItemTypes(ctx).Return(items, nil).Times(1)

	got, err := usecase.NewCatalogUseCase(provider).ListItemTypes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, catalog.ItemWaybPico, got[0].ID)
	assert.Equal(t, "14.95", got[0].DailyRate.String())
}
