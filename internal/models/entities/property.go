package entities

// Property is the uniform lot record both subdivision collections normalize
// into. The two remote tables disagree on column names and on which columns
// exist at all, so every field here is always populated: text falls back to
// "", amounts to 0, status to "Available".
type Property struct {
	ID                string  `json:"id"`
	Block             string  `json:"block"`
	Lot               string  `json:"lot"`
	Due               string  `json:"due"`
	DateOfReservation string  `json:"dateOfReservation"`
	FirstDue          string  `json:"firstDue"`
	Terms             string  `json:"terms"`
	Amount            float64 `json:"amount"`
	Realty            string  `json:"realty"`
	BuyersName        string  `json:"buyersName"`
	SellerName        string  `json:"sellerName"`
	SalesDirector     string  `json:"salesDirector"`
	Broker            string  `json:"broker"`
	LotSize           string  `json:"lotSize"`
	Price             float64 `json:"price"`
	PaymentScheme     string  `json:"paymentScheme"`
	VatStatus         string  `json:"vatStatus"`
	TSP               float64 `json:"tsp"`
	ModeOfPayment     string  `json:"modeOfPayment"`
	Reservation       float64 `json:"reservation"`
	CommPrice         float64 `json:"commPrice"`
	MiscFee           float64 `json:"miscFee"`
	Vat               float64 `json:"vat"`
	TCP               float64 `json:"tcp"`
	FirstMA           float64 `json:"firstMA"`
	FirstMAWithHolding float64 `json:"firstMAWithHoldingFee"`
	SecondTo48thMA    float64 `json:"secondTo48thMA"`
	NewTerm           string  `json:"newTerm"`
	PasaloPrice       float64 `json:"pasaloPrice"`
	NewMA             float64 `json:"newMA"`

	// Living Water specific columns
	DueDate1530        string  `json:"dueDate15_30"`
	FirstDueMonth      string  `json:"firstDueMonth"`
	BrokerRealty       string  `json:"brokerRealty"`
	LotArea            string  `json:"lotArea"`
	PricePerSQM        string  `json:"pricePerSQM"`
	NetContractPrice   float64 `json:"netContractPrice"`
	OptionalAdvance    float64 `json:"optionalAdvancePayment"`
	FirstMANetOfAdv    float64 `json:"firstMANetOfAdvancePayment"`
	SecondTo60thMA     float64 `json:"secondTo60thMA"`
	Year               string  `json:"year"`

	// Status keeps the casing the encoders typed; StatusKey is the trimmed,
	// lowercased copy used for filtering. Normalized once at construction.
	Status    string `json:"status"`
	StatusKey string `json:"-"`

	// SourceCollection names the remote table this row came from
	SourceCollection string `json:"project"`
	CreatedAt        string `json:"createdAt,omitempty"`

	// Defaulted is true when any declared field was absent or malformed and
	// fell back to its default. Surfaced for auditability; a price of 0 with
	// Defaulted set may be an unparseable entry rather than a free lot.
	Defaulted bool `json:"defaulted"`
}
