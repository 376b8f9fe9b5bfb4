package workers

import (
	"context"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/logging"
	"havahills/backoffice/internal/realtime"
	"havahills/backoffice/internal/services"
)

// ChangeListener keeps the in-memory inventory snapshots and the cached
// dashboard census in step with remote edits. One subscription per property
// collection.
type ChangeListener struct {
	subs []*realtime.Subscription
}

func InitChangeListener(
	notifier *realtime.ChangeNotifier,
	inventory *services.InventoryService,
	dashboard *services.DashboardService,
) *ChangeListener {
	listener := &ChangeListener{}
	ctx := context.Background()

	for _, collection := range constants.PropertyCollections {
		collection := collection
		sub := notifier.Subscribe(ctx, collection, func() {
			logging.Debug("Change event received", "collection", collection)
			inventory.Invalidate(collection)
			dashboard.Invalidate()

			// refetch eagerly so the next page load is served warm
			if err := inventory.Refresh(ctx, collection); err != nil {
				logging.Warn("Refresh after change event failed", "collection", collection, "error", err.Error())
			}
		})
		listener.subs = append(listener.subs, sub)
	}

	return listener
}

// Close tears down every subscription.
func (l *ChangeListener) Close() {
	for _, sub := range l.subs {
		_ = sub.Close()
	}
}
