package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/models/dtos"
	"havahills/backoffice/internal/providers"
)

func paymentRecord(id, client string, amount, penalty float64, status string) providers.RawRecord {
	return providers.RawRecord{
		"id":             id,
		"Name":           client,
		"Amount":         amount,
		"Penalty Amount": penalty,
		"Status":         status,
	}
}

func TestPaymentService_CreateAlwaysStartsPending(t *testing.T) {
	var inserted map[string]interface{}
	provider := &mockDataProvider{
		insertRecordFunc: func(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
			inserted = fields
			return "pay-1", nil
		},
	}

	svc := NewPaymentService(provider, nil)

	id, err := svc.Create(context.Background(), &dtos.CreatePaymentRequest{
		Client: "Juan Dela Cruz",
		Amount: 15000,
	})
	require.NoError(t, err)
	assert.Equal(t, "pay-1", id)
	assert.Equal(t, constants.PaymentStatusPending, inserted["Status"])
}

func TestPaymentService_SetStatusRejectsUnknown(t *testing.T) {
	svc := NewPaymentService(&mockDataProvider{}, nil)

	err := svc.SetStatus(context.Background(), "pay-1", "Maybe")
	require.Error(t, err)
}

func TestPaymentService_StatementOfAccount(t *testing.T) {
	provider := &mockDataProvider{
		fetchRecordsFunc: func(ctx context.Context, q providers.Query) ([]providers.RawRecord, error) {
			return []providers.RawRecord{
				paymentRecord("1", "Juan Dela Cruz", 10000, 0, "Approved"),
				paymentRecord("2", "Juan Dela Cruz", 5000, 250, "approved"),
				paymentRecord("3", "Juan Dela Cruz", 7000, 0, "Pending"),
				paymentRecord("4", "Maria Santos", 9000, 0, "Approved"),
				paymentRecord("5", "juan dela cruz", 1000, 0, "Rejected"),
			}, nil
		},
	}

	svc := NewPaymentService(provider, nil)

	stmt, err := svc.StatementOfAccount(context.Background(), "Juan Dela Cruz")
	require.NoError(t, err)

	// approved rows count regardless of casing; rejected never totals
	assert.Equal(t, 15000.0, stmt.TotalPaid)
	assert.Equal(t, 250.0, stmt.TotalPenalty)
	assert.Equal(t, 1, stmt.Pending)
	assert.Len(t, stmt.Payments, 4)
}
