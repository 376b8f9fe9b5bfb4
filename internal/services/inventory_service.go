package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/logging"
	"havahills/backoffice/internal/metrics"
	"havahills/backoffice/internal/models/entities"
	"havahills/backoffice/internal/providers"
	"havahills/backoffice/internal/realtime"
	"havahills/backoffice/internal/views"
)

// snapshot is one collection's normalized rows plus the fetch sequence that
// produced them. Replaced wholesale, never mutated in place.
type snapshot struct {
	rows []entities.Property
	seq  uint64
}

// InventoryService keeps an in-memory snapshot per property collection and
// serves every inventory view from it. Each fetch carries a sequence number;
// a response from a fetch superseded by a newer one is discarded, so a slow
// stale fetch can never clobber fresher rows.
type InventoryService struct {
	provider providers.DataProvider
	notifier *realtime.ChangeNotifier
	metrics  *metrics.MetricsRegistry

	mu        sync.RWMutex
	snapshots map[string]*snapshot
	// highest sequence issued per collection; survives Invalidate so an
	// in-flight fetch older than a deleted snapshot is still discarded
	latestSeq map[string]uint64

	fetchSeq uint64
}

func NewInventoryService(
	provider providers.DataProvider,
	notifier *realtime.ChangeNotifier,
	metricsReg *metrics.MetricsRegistry,
) *InventoryService {
	return &InventoryService{
		provider:  provider,
		notifier:  notifier,
		metrics:   metricsReg,
		snapshots: make(map[string]*snapshot),
		latestSeq: make(map[string]uint64),
	}
}

// Refresh fetches a collection from the remote service and swaps in the new
// snapshot, unless a later fetch already finished.
func (s *InventoryService) Refresh(ctx context.Context, collection string) error {
	seq := atomic.AddUint64(&s.fetchSeq, 1)

	s.mu.Lock()
	if seq > s.latestSeq[collection] {
		s.latestSeq[collection] = seq
	}
	s.mu.Unlock()

	start := time.Now()
	records, err := s.provider.FetchRecords(ctx, providers.Query{
		Collection: collection,
		OrderBy: []providers.Ordering{
			{Column: "Block"},
			{Column: "Lot"},
		},
	})
	if s.metrics != nil {
		s.metrics.DataFetchDuration.WithLabelValues(collection).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.DataFetchesTotal.WithLabelValues(collection, "error").Inc()
		}
		return fmt.Errorf("failed to fetch %q: %w", collection, err)
	}

	rows := make([]entities.Property, 0, len(records))
	for _, rec := range records {
		p := views.NormalizeProperty(rec, collection)
		if s.metrics != nil {
			s.metrics.PropertiesNormalizedTotal.WithLabelValues(collection, strconv.FormatBool(p.Defaulted)).Inc()
		}
		rows = append(rows, p)
	}
	views.SortProperties(rows)

	s.mu.Lock()
	defer s.mu.Unlock()

	if latest := s.latestSeq[collection]; latest > seq {
		if s.metrics != nil {
			s.metrics.DataFetchesDropped.WithLabelValues(collection).Inc()
		}
		logging.Debug("Dropped superseded fetch", "collection", collection, "seq", seq, "latest", latest)
		return nil
	}

	s.snapshots[collection] = &snapshot{rows: rows, seq: seq}
	if s.metrics != nil {
		s.metrics.DataFetchesTotal.WithLabelValues(collection, "ok").Inc()
	}
	logging.Info("Inventory refreshed", "collection", collection, "rows", len(rows))
	return nil
}

// Invalidate drops a collection's snapshot so the next read refetches.
func (s *InventoryService) Invalidate(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, collection)
}

// List serves one page of the inventory view. The project filter picks which
// collections contribute rows; searching and status filtering happen on the
// normalized snapshot, mirroring what the encoders see in the tables.
func (s *InventoryService) List(ctx context.Context, q views.ViewQuery) (views.Result[entities.Property], error) {
	collections := s.collectionsFor(q.Project)

	var all []entities.Property
	for _, collection := range collections {
		rows, err := s.snapshotRows(ctx, collection)
		if err != nil {
			return views.Result[entities.Property]{}, err
		}
		all = append(all, rows...)
	}

	return views.ApplyProperties(all, q), nil
}

// AddProperty inserts a lot into the given collection and broadcasts the
// change.
func (s *InventoryService) AddProperty(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	id, err := s.provider.InsertRecord(ctx, collection, fields)
	if err != nil {
		return "", fmt.Errorf("failed to add property: %w", err)
	}
	s.publishChange(ctx, collection)
	return id, nil
}

// UpdateProperty patches a lot and broadcasts the change.
func (s *InventoryService) UpdateProperty(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if err := s.provider.UpdateRecord(ctx, collection, id, fields); err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	s.publishChange(ctx, collection)
	return nil
}

// DeleteProperty removes a lot and broadcasts the change.
func (s *InventoryService) DeleteProperty(ctx context.Context, collection, id string) error {
	if err := s.provider.DeleteRecord(ctx, collection, id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	s.publishChange(ctx, collection)
	return nil
}

// AllProperties returns every normalized row across the property
// collections. The dashboard census runs on this.
func (s *InventoryService) AllProperties(ctx context.Context) ([]entities.Property, error) {
	var all []entities.Property
	for _, collection := range constants.PropertyCollections {
		rows, err := s.snapshotRows(ctx, collection)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	return all, nil
}

func (s *InventoryService) snapshotRows(ctx context.Context, collection string) ([]entities.Property, error) {
	s.mu.RLock()
	snap, ok := s.snapshots[collection]
	s.mu.RUnlock()

	if !ok {
		if err := s.Refresh(ctx, collection); err != nil {
			return nil, err
		}
		s.mu.RLock()
		snap, ok = s.snapshots[collection]
		s.mu.RUnlock()
		if !ok {
			return nil, nil
		}
	}

	return snap.rows, nil
}

func (s *InventoryService) collectionsFor(project string) []string {
	if project == "" || project == constants.ProjectFilterAll {
		return constants.PropertyCollections
	}
	for _, collection := range constants.PropertyCollections {
		if collection == project {
			return []string{collection}
		}
	}
	return nil
}

func (s *InventoryService) publishChange(ctx context.Context, collection string) {
	s.Invalidate(collection)
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, collection); err != nil {
		logging.Warn("Failed to publish change event", "collection", collection, "error", err.Error())
	}
}
