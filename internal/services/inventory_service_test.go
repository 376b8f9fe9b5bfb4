package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/providers"
	"havahills/backoffice/internal/views"
)

// Mock DataProvider shared by the service tests
type mockDataProvider struct {
	fetchRecordsFunc func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error)
	insertRecordFunc func(ctx context.Context, collection string, fields map[string]interface{}) (string, error)
	updateRecordFunc func(ctx context.Context, collection, id string, fields map[string]interface{}) error
	deleteRecordFunc func(ctx context.Context, collection, id string) error
}

func (m *mockDataProvider) FetchRecords(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
	return m.fetchRecordsFunc(ctx, q)
}

func (m *mockDataProvider) InsertRecord(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	return m.insertRecordFunc(ctx, collection, fields)
}

func (m *mockDataProvider) UpdateRecord(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	return m.updateRecordFunc(ctx, collection, id, fields)
}

func (m *mockDataProvider) DeleteRecord(ctx context.Context, collection, id string) error {
	return m.deleteRecordFunc(ctx, collection, id)
}

func lotRecord(id, block, lot, status string) providers.RawRecord {
	return providers.RawRecord{
		"id":     id,
		"Block":  block,
		"Lot":    lot,
		"Status": status,
	}
}

func TestInventoryService_ListNormalizesAndPages(t *testing.T) {
	provider := &mockDataProvider{
		fetchRecordsFunc: func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
			if q.Collection == constants.CollectionLivingWater {
				return []providers.RawRecord{
					lotRecord("lw-1", "2", "1", "sold"),
					lotRecord("lw-2", "1", "10", ""),
				}, nil
			}
			return []providers.RawRecord{
				lotRecord("hh-1", "1", "2", "  Reserved  "),
			}, nil
		},
	}

	svc := NewInventoryService(provider, nil, nil)

	q := views.NewViewQuery(constants.PageSizeInventory)
	result, err := svc.List(context.Background(), q)
	require.NoError(t, err)

	require.Len(t, result.Rows, 3)
	assert.Equal(t, 3, result.TotalCount)

	// numeric sort across both collections: block 1 lot 2, block 1 lot 10,
	// block 2 lot 1
	assert.Equal(t, "hh-1", result.Rows[0].ID)
	assert.Equal(t, "lw-2", result.Rows[1].ID)
	assert.Equal(t, "lw-1", result.Rows[2].ID)

	// blank status defaults, padded status is trimmed
	assert.Equal(t, "Reserved", result.Rows[0].Status)
	assert.Equal(t, constants.PropertyStatusAvailable, result.Rows[1].Status)
}

func TestInventoryService_ProjectFilterFetchesOneCollection(t *testing.T) {
	var fetched []string
	provider := &mockDataProvider{
		fetchRecordsFunc: func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
			fetched = append(fetched, q.Collection)
			return []providers.RawRecord{lotRecord("1", "1", "1", "Sold")}, nil
		},
	}

	svc := NewInventoryService(provider, nil, nil)

	q := views.NewViewQuery(constants.PageSizeInventory).WithProject(constants.CollectionHavahills)
	result, err := svc.List(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, []string{constants.CollectionHavahills}, fetched)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, constants.CollectionHavahills, result.Rows[0].SourceCollection)
}

func TestInventoryService_StaleFetchDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	provider := &mockDataProvider{
		fetchRecordsFunc: func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
			mu.Lock()
			calls++
			first := calls == 1
			mu.Unlock()

			if first {
				// the first fetch is slow and finishes after the second
				close(started)
				<-release
				return []providers.RawRecord{lotRecord("stale", "1", "1", "Available")}, nil
			}
			return []providers.RawRecord{lotRecord("fresh", "1", "1", "Sold")}, nil
		},
	}

	svc := NewInventoryService(provider, nil, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = svc.Refresh(ctx, constants.CollectionHavahills)
	}()

	// wait until the slow fetch is in flight, then land the fresh one
	<-started
	require.NoError(t, svc.Refresh(ctx, constants.CollectionHavahills))

	close(release)
	wg.Wait()

	rows, err := svc.AllProperties(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2) // one per collection; Living Water fetched lazily

	for _, p := range rows {
		if p.SourceCollection == constants.CollectionHavahills {
			assert.Equal(t, "fresh", p.ID, "superseded fetch must not clobber the newer snapshot")
		}
	}
}

func TestInventoryService_StaleFetchDiscardedAfterInvalidate(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	provider := &mockDataProvider{
		fetchRecordsFunc: func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
			mu.Lock()
			calls++
			first := calls == 1
			mu.Unlock()

			if first {
				close(started)
				<-release
				return []providers.RawRecord{lotRecord("stale", "1", "1", "Available")}, nil
			}
			return []providers.RawRecord{lotRecord("fresh", "1", "1", "Sold")}, nil
		},
	}

	svc := NewInventoryService(provider, nil, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = svc.Refresh(ctx, constants.CollectionHavahills)
	}()

	// a newer fetch lands, then the snapshot is dropped while the slow
	// one is still in flight
	<-started
	require.NoError(t, svc.Refresh(ctx, constants.CollectionHavahills))
	svc.Invalidate(constants.CollectionHavahills)

	close(release)
	wg.Wait()

	// the slow fetch must not repopulate the invalidated snapshot; the
	// next read refetches instead of serving the superseded rows
	q := views.NewViewQuery(constants.PageSizeInventory).WithProject(constants.CollectionHavahills)
	result, err := svc.List(ctx, q)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "fresh", result.Rows[0].ID)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, calls, "invalidated collection should be refetched, not served from the stale fetch")
}

func TestInventoryService_MutationsInvalidateSnapshot(t *testing.T) {
	var fetchCount int
	provider := &mockDataProvider{
		fetchRecordsFunc: func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
			fetchCount++
			return []providers.RawRecord{lotRecord("1", "1", "1", "Available")}, nil
		},
		updateRecordFunc: func(ctx context.Context, collection, id string, fields map[string]interface{}) error {
			return nil
		},
	}

	svc := NewInventoryService(provider, nil, nil)
	ctx := context.Background()

	q := views.NewViewQuery(constants.PageSizeInventory).WithProject(constants.CollectionHavahills)
	_, err := svc.List(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, fetchCount)

	// cached snapshot, no second fetch
	_, err = svc.List(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, fetchCount)

	require.NoError(t, svc.UpdateProperty(ctx, constants.CollectionHavahills, "1", map[string]interface{}{"Status": "Sold"}))

	_, err = svc.List(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 2, fetchCount, "mutation should drop the snapshot")
}
