package services

import (
	"context"
	"fmt"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/db/repositories"
	"havahills/backoffice/internal/models/dtos"
	"havahills/backoffice/internal/models/entities"
	"havahills/backoffice/internal/views"
)

// TicketService manages support tickets. Tickets live in the service's own
// Postgres rather than the hosted data service.
type TicketService struct {
	repo *repositories.TicketRepository
}

func NewTicketService(repo *repositories.TicketRepository) *TicketService {
	return &TicketService{repo: repo}
}

func (s *TicketService) Create(ctx context.Context, req *dtos.CreateTicketRequest) (*entities.Ticket, error) {
	ticket := &entities.Ticket{
		Subject:     req.Subject,
		Client:      req.Client,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      constants.TicketStatusOpen,
		Description: req.Description,
	}
	if ticket.Priority == "" {
		ticket.Priority = constants.TicketPriorityMedium
	}

	if err := s.repo.InsertTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

func (s *TicketService) Get(ctx context.Context, id int64) (*entities.Ticket, error) {
	return s.repo.FindTicketByID(ctx, id)
}

// List returns one page of tickets, newest first.
func (s *TicketService) List(ctx context.Context, page int) (views.Result[entities.Ticket], error) {
	tickets, err := s.repo.ListTickets(ctx)
	if err != nil {
		return views.Result[entities.Ticket]{}, fmt.Errorf("failed to list tickets: %w", err)
	}

	rows, totalPages, clamped := views.Page(tickets, page, constants.PageSizeTickets)
	return views.Result[entities.Ticket]{
		Rows:       rows,
		TotalCount: len(tickets),
		TotalPages: totalPages,
		Page:       clamped,
	}, nil
}

func (s *TicketService) SetStatus(ctx context.Context, id int64, status string) error {
	switch status {
	case constants.TicketStatusOpen, constants.TicketStatusInProgress, constants.TicketStatusResolved:
	default:
		return fmt.Errorf("invalid ticket status %q", status)
	}
	return s.repo.UpdateTicketStatus(ctx, id, status)
}
