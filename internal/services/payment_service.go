package services

import (
	"context"
	"fmt"
	"strings"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/models/dtos"
	"havahills/backoffice/internal/models/entities"
	"havahills/backoffice/internal/providers"
	"havahills/backoffice/internal/realtime"
	"havahills/backoffice/internal/views"
)

// PaymentService manages the remote Payments collection: recording payments,
// moving them through the approval flow, and building statements of account.
type PaymentService struct {
	provider providers.DataProvider
	notifier *realtime.ChangeNotifier
}

func NewPaymentService(provider providers.DataProvider, notifier *realtime.ChangeNotifier) *PaymentService {
	return &PaymentService{provider: provider, notifier: notifier}
}

// List returns one page of payments.
func (s *PaymentService) List(ctx context.Context, q views.ViewQuery) (views.Result[entities.Payment], error) {
	payments, err := s.fetchAll(ctx)
	if err != nil {
		return views.Result[entities.Payment]{}, err
	}
	return views.ApplyPayments(payments, q), nil
}

// Create records a payment. New payments always start Pending regardless of
// what the request carries.
func (s *PaymentService) Create(ctx context.Context, req *dtos.CreatePaymentRequest) (string, error) {
	fields := map[string]interface{}{
		"Name":                 req.Client,
		"Amount":               req.Amount,
		"Payment Date":         req.PaymentDate,
		"Payment Type":         req.PaymentType,
		"Monthly Amortization": req.MonthlyAmortization,
		"Penalty Amount":       req.PenaltyAmount,
		"Status":               constants.PaymentStatusPending,
	}

	id, err := s.provider.InsertRecord(ctx, constants.CollectionPayments, fields)
	if err != nil {
		return "", fmt.Errorf("failed to record payment: %w", err)
	}

	s.publish(ctx)
	return id, nil
}

// SetStatus moves a payment to Approved or Rejected.
func (s *PaymentService) SetStatus(ctx context.Context, id, status string) error {
	if status != constants.PaymentStatusApproved && status != constants.PaymentStatusRejected {
		return fmt.Errorf("invalid payment status %q", status)
	}

	err := s.provider.UpdateRecord(ctx, constants.CollectionPayments, id, map[string]interface{}{
		"Status": status,
	})
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	s.publish(ctx)
	return nil
}

// StatementOfAccount builds the payment summary for one client. Only
// approved payments count toward totals; pending ones are tallied so the
// statement can flag them.
func (s *PaymentService) StatementOfAccount(ctx context.Context, client string) (*entities.Statement, error) {
	payments, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	stmt := &entities.Statement{Client: client, Payments: []entities.Payment{}}
	for _, p := range payments {
		if !strings.EqualFold(p.Client, client) {
			continue
		}
		stmt.Payments = append(stmt.Payments, p)

		switch p.StatusKey {
		case strings.ToLower(constants.PaymentStatusApproved):
			stmt.TotalPaid += p.Amount
			stmt.TotalPenalty += p.PenaltyAmount
		case strings.ToLower(constants.PaymentStatusPending):
			stmt.Pending++
		}
	}

	return stmt, nil
}

func (s *PaymentService) fetchAll(ctx context.Context) ([]entities.Payment, error) {
	records, err := s.provider.FetchRecords(ctx, providers.Query{
		Collection: constants.CollectionPayments,
		OrderBy:    []providers.Ordering{{Column: "created_at", Descending: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	payments := make([]entities.Payment, len(records))
	for i, rec := range records {
		payments[i] = views.NormalizePayment(rec)
	}
	return payments, nil
}

func (s *PaymentService) publish(ctx context.Context) {
	if s.notifier != nil {
		_ = s.notifier.Publish(ctx, constants.CollectionPayments)
	}
}
