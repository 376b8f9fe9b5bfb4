package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/providers"
	"havahills/backoffice/internal/views"
)

func clientRecord(id, name, email string) providers.RawRecord {
	return providers.RawRecord{
		"id":    id,
		"Name":  name,
		"Email": email,
	}
}

func TestClientService_ListJoinsOwnedLots(t *testing.T) {
	provider := &mockDataProvider{
		fetchRecordsFunc: func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
			switch q.Collection {
			case constants.CollectionClients:
				return []providers.RawRecord{
					clientRecord("c1", "Juan Dela Cruz", "juan@example.com"),
					clientRecord("c2", "Maria Santos", "maria@example.com"),
				}, nil
			case constants.CollectionLivingWater:
				if q.Equals[constants.OwnerColumn] == "Juan Dela Cruz" {
					return []providers.RawRecord{lotRecord("p1", "3", "14", "Sold")}, nil
				}
				return nil, nil
			case constants.CollectionHavahills:
				if q.Equals[constants.OwnerColumn] == "Juan Dela Cruz" {
					return []providers.RawRecord{lotRecord("p2", "7", "2", "Sold")}, nil
				}
				return nil, nil
			}
			return nil, nil
		},
	}

	svc := NewClientService(provider)

	result, err := svc.List(context.Background(), views.NewViewQuery(constants.PageSizeClients))
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	juan := result.Rows[0]
	require.Equal(t, "Juan Dela Cruz", juan.Name)
	require.Len(t, juan.Properties, 2)
	assert.Equal(t, constants.CollectionLivingWater, juan.Properties[0].Project)
	assert.Equal(t, "3", juan.Properties[0].Block)
	assert.Equal(t, "14", juan.Properties[0].Lot)
	assert.Equal(t, constants.CollectionHavahills, juan.Properties[1].Project)

	// no matched lots: the placeholder keeps the table shape
	maria := result.Rows[1]
	require.Len(t, maria.Properties, 1)
	assert.Equal(t, "-", maria.Properties[0].Project)
	assert.Equal(t, "-", maria.Properties[0].Block)
	assert.Equal(t, "-", maria.Properties[0].Lot)
}

func TestClientService_LotLookupFailureIsIsolated(t *testing.T) {
	provider := &mockDataProvider{
		fetchRecordsFunc: func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
			switch q.Collection {
			case constants.CollectionClients:
				return []providers.RawRecord{
					clientRecord("c1", "Juan Dela Cruz", "juan@example.com"),
					clientRecord("c2", "Maria Santos", "maria@example.com"),
				}, nil
			default:
				if q.Equals[constants.OwnerColumn] == "Maria Santos" {
					return nil, errors.New("remote timeout")
				}
				if q.Collection == constants.CollectionLivingWater {
					return []providers.RawRecord{lotRecord("p1", "1", "5", "Sold")}, nil
				}
				return nil, nil
			}
		},
	}

	svc := NewClientService(provider)

	result, err := svc.List(context.Background(), views.NewViewQuery(constants.PageSizeClients))
	require.NoError(t, err, "one failed lookup must not fail the page")
	require.Len(t, result.Rows, 2)

	assert.Equal(t, "1", result.Rows[0].Properties[0].Block)

	// the failed client falls back to the placeholder
	require.Len(t, result.Rows[1].Properties, 1)
	assert.Equal(t, "-", result.Rows[1].Properties[0].Block)
}

func TestClientService_ListFiltersByProject(t *testing.T) {
	provider := &mockDataProvider{
		fetchRecordsFunc: func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
			switch q.Collection {
			case constants.CollectionClients:
				return []providers.RawRecord{
					clientRecord("c1", "Juan Dela Cruz", "juan@example.com"),
					clientRecord("c2", "Maria Santos", "maria@example.com"),
				}, nil
			case constants.CollectionLivingWater:
				if q.Equals[constants.OwnerColumn] == "Juan Dela Cruz" {
					return []providers.RawRecord{lotRecord("p1", "3", "14", "Sold")}, nil
				}
				return nil, nil
			}
			return nil, nil
		},
	}

	svc := NewClientService(provider)

	q := views.NewViewQuery(constants.PageSizeClients).WithProject(constants.CollectionLivingWater)
	result, err := svc.List(context.Background(), q)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Juan Dela Cruz", result.Rows[0].Name)
}
