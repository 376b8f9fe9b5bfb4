package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/logging"
	"havahills/backoffice/internal/models/entities"
	"havahills/backoffice/internal/providers"
	"havahills/backoffice/internal/views"
)

// joinConcurrency bounds how many per-client lot lookups run at once.
const joinConcurrency = 8

// ClientService serves the clients view: client records from the remote
// Clients collection, each joined with the lots they own across every
// property collection. The hosted schema has no foreign key for this; the
// join matches the property Owner column against the client's name.
type ClientService struct {
	provider providers.DataProvider
}

func NewClientService(provider providers.DataProvider) *ClientService {
	return &ClientService{provider: provider}
}

// List returns one page of clients with their owned lots resolved. A failed
// lot lookup never fails the page: that client keeps the placeholder row and
// the failure is logged.
func (s *ClientService) List(ctx context.Context, q views.ViewQuery) (views.Result[entities.Client], error) {
	records, err := s.provider.FetchRecords(ctx, providers.Query{
		Collection: constants.CollectionClients,
		OrderBy:    []providers.Ordering{{Column: "Name"}},
	})
	if err != nil {
		return views.Result[entities.Client]{}, fmt.Errorf("failed to fetch clients: %w", err)
	}

	clients := make([]entities.Client, len(records))
	for i, rec := range records {
		clients[i] = views.NormalizeClient(rec)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)

	for i := range clients {
		i := i
		g.Go(func() error {
			lots, err := s.lookupLots(gctx, clients[i].Name)
			if err != nil {
				logging.Warn("Lot lookup failed, using placeholder",
					"client", clients[i].Name, "error", err.Error())
				clients[i].Properties = []entities.OwnedLot{entities.PlaceholderLot()}
				return nil
			}
			if len(lots) == 0 {
				lots = []entities.OwnedLot{entities.PlaceholderLot()}
			}
			clients[i].Properties = lots
			return nil
		})
	}

	// goroutines swallow their own errors, so Wait only propagates a
	// cancelled context
	if err := g.Wait(); err != nil {
		return views.Result[entities.Client]{}, err
	}

	return views.ApplyClients(clients, q), nil
}

// LotsOwnedBy resolves every lot a named client owns. The client portal and
// the documents view both use this.
func (s *ClientService) LotsOwnedBy(ctx context.Context, name string) ([]entities.OwnedLot, error) {
	return s.lookupLots(ctx, name)
}

// FindByName fetches one client record by exact name match.
func (s *ClientService) FindByName(ctx context.Context, name string) (*entities.Client, error) {
	records, err := s.provider.FetchRecords(ctx, providers.Query{
		Collection: constants.CollectionClients,
		Equals:     map[string]string{"Name": name},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client %q: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	client := views.NormalizeClient(records[0])
	return &client, nil
}

// SearchByName returns clients whose name or email contains the query,
// case-insensitively, matched on the remote side.
func (s *ClientService) SearchByName(ctx context.Context, search string) ([]entities.Client, error) {
	records, err := s.provider.FetchRecords(ctx, providers.Query{
		Collection:    constants.CollectionClients,
		SearchAny:     search,
		SearchColumns: []string{"Name", "Email"},
		OrderBy:       []providers.Ordering{{Column: "Name"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}

	clients := make([]entities.Client, len(records))
	for i, rec := range records {
		clients[i] = views.NormalizeClient(rec)
	}
	return clients, nil
}

func (s *ClientService) lookupLots(ctx context.Context, name string) ([]entities.OwnedLot, error) {
	var lots []entities.OwnedLot

	for _, collection := range constants.PropertyCollections {
		records, err := s.provider.FetchRecords(ctx, providers.Query{
			Collection: collection,
			Columns:    []string{"Block", "Lot"},
			Equals:     map[string]string{constants.OwnerColumn: name},
		})
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			p := views.NormalizeProperty(rec, collection)
			lots = append(lots, entities.OwnedLot{
				Project: collection,
				Block:   p.Block,
				Lot:     p.Lot,
			})
		}
	}

	return lots, nil
}
