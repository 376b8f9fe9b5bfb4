package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/providers"
)

func TestDashboardService_StatsCensus(t *testing.T) {
	provider := &mockDataProvider{
		fetchRecordsFunc: func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
			if q.Collection == constants.CollectionLivingWater {
				return []providers.RawRecord{
					lotRecord("1", "1", "1", "Available"),
					lotRecord("2", "1", "2", "SOLD"),
					lotRecord("3", "1", "3", "Reserved"),
				}, nil
			}
			return []providers.RawRecord{
				lotRecord("4", "1", "1", "Sold"),
				lotRecord("5", "1", "2", ""),
			}, nil
		},
	}

	inventory := NewInventoryService(provider, nil, nil)
	svc := NewDashboardService(inventory, common.NewCacheService(60, 600))

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalLots)
	// the blank status defaults to Available
	assert.Equal(t, 2, stats.AvailableLots)
	assert.Equal(t, 1, stats.ReservedLots)
	assert.Equal(t, 2, stats.SoldLots)

	require.Len(t, stats.Projects, 2)
	assert.Equal(t, constants.CollectionLivingWater, stats.Projects[0].Name)
	assert.Equal(t, 3, stats.Projects[0].Total)
	assert.Equal(t, 1, stats.Projects[0].Sold)
	assert.Equal(t, 2, stats.Projects[1].Total)
	assert.Equal(t, 1, stats.Projects[1].Sold)
}

func TestDashboardService_StatsCachedUntilInvalidated(t *testing.T) {
	var fetches int
	provider := &mockDataProvider{
		fetchRecordsFunc: func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
			fetches++
			return []providers.RawRecord{lotRecord("1", "1", "1", "Sold")}, nil
		},
	}

	inventory := NewInventoryService(provider, nil, nil)
	svc := NewDashboardService(inventory, common.NewCacheService(60, 600))
	ctx := context.Background()

	_, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches) // one per collection

	_, err = svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches, "second read must hit the cache")

	svc.Invalidate()
	inventory.Invalidate(constants.CollectionLivingWater)
	inventory.Invalidate(constants.CollectionHavahills)

	_, err = svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, fetches)
}
