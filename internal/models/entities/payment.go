package entities

// Payment is a normalized payment record.
type Payment struct {
	ID                  string  `json:"id"`
	Client              string  `json:"client"`
	Amount              float64 `json:"amount"`
	PaymentDate         string  `json:"paymentDate"`
	PaymentType         string  `json:"paymentType"`
	MonthlyAmortization string  `json:"monthlyAmortization"`
	PenaltyAmount       float64 `json:"penaltyAmount"`
	Status              string  `json:"status"`
	StatusKey           string  `json:"-"`
	CreatedAt           string  `json:"createdAt,omitempty"`
	Defaulted           bool    `json:"defaulted"`
}

// Statement summarizes a client's payment history for the statement of
// account view.
type Statement struct {
	Client       string    `json:"client"`
	TotalPaid    float64   `json:"totalPaid"`
	TotalPenalty float64   `json:"totalPenalty"`
	Pending      int       `json:"pending"`
	Payments     []Payment `json:"payments"`
}
