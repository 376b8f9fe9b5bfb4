package dtos

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePaymentRequest struct {
	Client              string  `json:"client"`
	Amount              float64 `json:"amount"`
	PaymentDate         string  `json:"payment_date"`
	PaymentType         string  `json:"payment_type"`
	MonthlyAmortization string  `json:"monthly_amortization"`
	PenaltyAmount       float64 `json:"penalty_amount"`
}

type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Client      string `json:"client"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

type UpdateTicketRequest struct {
	Status string `json:"status"`
}

type PostMessageRequest struct {
	Content string `json:"content"`
}

type ShareDocumentRequest struct {
	Client string `json:"client"`
	File   string `json:"file"`
}

// ImportRow is one spreadsheet row of the bulk property import. Column names
// match the sheet headers the sales team exports.
type ImportRow struct {
	Block             string `json:"Block"`
	Lot               string `json:"Lot"`
	LotArea           string `json:"Lot Area"`
	PricePerSQM       string `json:"Price/SQM"`
	TSP               string `json:"TSP"`
	MiscFee           string `json:"Misc. Fee"`
	VAT               string `json:"VAT"`
	TCP               string `json:"TCP"`
	Term              string `json:"Term"`
	FirstMA           string `json:"First MA"`
	SecondTo60thMA    string `json:"2nd-60th MA"`
	FirstDueMonth     string `json:"First Due Month"`
	DateOfReservation string `json:"Date of Reservation"`
	SellerName        string `json:"Seller Name"`
	Realty            string `json:"Realty"`
	Reservation       string `json:"Reservation"`
	Status            string `json:"Status"`
	Project           string `json:"Project"`
}
