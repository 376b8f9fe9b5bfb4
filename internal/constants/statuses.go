package constants

// Property lot statuses. Raw records carry these in whatever casing the
// encoders typed them in; comparison always goes through the lowercased copy.
const (
	PropertyStatusAvailable = "Available"
	PropertyStatusReserved  = "Reserved"
	PropertyStatusSold      = "Sold"
)

// Payment statuses
const (
	PaymentStatusPending  = "Pending"
	PaymentStatusApproved = "Approved"
	PaymentStatusRejected = "Rejected"
)

// Ticket statuses
const (
	TicketStatusOpen       = "Open"
	TicketStatusInProgress = "In Progress"
	TicketStatusResolved   = "Resolved"
)

// Ticket priorities
const (
	TicketPriorityHigh   = "High"
	TicketPriorityMedium = "Medium"
	TicketPriorityLow    = "Low"
)

// StatusFilterAll is the sentinel meaning "no status filtering"
const StatusFilterAll = "all"

// ProjectFilterAll is the sentinel meaning "every project"
const ProjectFilterAll = "all"
