package constants

const (
	InsertTicket = `
	INSERT INTO tickets (subject, client, category, priority, status, description, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	RETURNING id
	`

	GetTicketByID = `
	SELECT * FROM tickets WHERE id = $1
	`

	ListTickets = `
	SELECT * FROM tickets ORDER BY created_at DESC
	`

	UpdateTicketStatus = `
	UPDATE tickets SET status = $2, updated_at = NOW() WHERE id = $1
	`
)
