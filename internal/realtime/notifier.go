// Package realtime delivers "something changed in collection X" events
// between writers and the views that cache derived data.
package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"

	"havahills/backoffice/internal/logging"
)

const channelPrefix = "changes:"

// ChangeNotifier publishes and subscribes to per-collection change events
// over Redis pub/sub. Events carry no payload; subscribers refetch.
type ChangeNotifier struct {
	client *redis.Client
}

func NewChangeNotifier(client *redis.Client) *ChangeNotifier {
	return &ChangeNotifier{client: client}
}

// Publish signals that something in the collection changed
func (n *ChangeNotifier) Publish(ctx context.Context, collection string) error {
	return n.client.Publish(ctx, channelPrefix+collection, "1").Err()
}

// Subscription is one live listener on a collection channel. Close it when
// the consuming view goes away, or the subscription goroutine leaks.
type Subscription struct {
	pubsub *redis.PubSub
	done   chan struct{}
}

// Close unsubscribes and stops the delivery goroutine
func (s *Subscription) Close() error {
	close(s.done)
	return s.pubsub.Close()
}

// Subscribe registers fn to run on every change event for the collection.
// fn runs on the subscription's own goroutine; keep it short.
func (n *ChangeNotifier) Subscribe(ctx context.Context, collection string, fn func()) *Subscription {
	pubsub := n.client.Subscribe(ctx, channelPrefix+collection)

	sub := &Subscription{
		pubsub: pubsub,
		done:   make(chan struct{}),
	}

	go func() {
		ch := pubsub.Channel()
		for {
			select {
			case <-sub.done:
				return
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				fn()
			}
		}
	}()

	logging.Info("Realtime subscription opened", "collection", collection)
	return sub
}
