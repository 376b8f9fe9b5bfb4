package entities

import "time"

// Ticket is a support ticket stored in the service's own Postgres.
type Ticket struct {
	ID          int64     `db:"id" json:"id"`
	Subject     string    `db:"subject" json:"subject"`
	Client      string    `db:"client" json:"client"`
	Category    string    `db:"category" json:"category"`
	Priority    string    `db:"priority" json:"priority"`
	Status      string    `db:"status" json:"status"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
