package repositories

import (
	"context"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type TicketRepository struct {
	db *sqlx.DB
}

func NewTicketRepository(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{db}
}

func (r *TicketRepository) InsertTicket(ctx context.Context, ticket *entities.Ticket) error {
	return r.db.QueryRowxContext(ctx, constants.InsertTicket,
		ticket.Subject,
		ticket.Client,
		ticket.Category,
		ticket.Priority,
		ticket.Status,
		ticket.Description,
	).Scan(&ticket.ID)
}

func (r *TicketRepository) FindTicketByID(ctx context.Context, id int64) (*entities.Ticket, error) {

	var ticket entities.Ticket

	err := r.db.QueryRowxContext(ctx, constants.GetTicketByID, id).StructScan(&ticket)
	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepository) ListTickets(ctx context.Context) ([]entities.Ticket, error) {

	tickets := []entities.Ticket{}

	if err := r.db.SelectContext(ctx, &tickets, constants.ListTickets); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepository) UpdateTicketStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateTicketStatus, id, status)
	return err
}
