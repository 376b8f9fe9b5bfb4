// Package views turns raw remote records into the fixed-shape entities the
// table views render, and applies the search/filter/sort/paginate pipeline
// over them.
package views

import (
	"strconv"
	"strings"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/models/entities"
	"havahills/backoffice/internal/providers"
)

// fieldReader resolves candidate column names against one raw record and
// tracks whether any lookup fell back to a default. The remote tables renamed
// and split columns over the years ("Buyers Name" vs "Owner", "First MA" vs
// "1st MA"), so every read takes candidates in priority order: the first one
// present and non-null wins.
type fieldReader struct {
	raw       providers.RawRecord
	defaulted bool
}

func newFieldReader(raw providers.RawRecord) *fieldReader {
	return &fieldReader{raw: raw}
}

func (r *fieldReader) lookup(candidates ...string) (interface{}, bool) {
	for _, name := range candidates {
		if v, ok := r.raw[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// text coerces the winning candidate to a string, defaulting to ""
func (r *fieldReader) text(candidates ...string) string {
	v, ok := r.lookup(candidates...)
	if !ok {
		r.defaulted = true
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		r.defaulted = true
		return ""
	}
}

// number coerces the winning candidate to a float64, defaulting to 0. Numeric
// text may carry thousands separators or a currency sign; anything that still
// fails to parse degrades silently to 0 — a bad cell must never fail the row.
func (r *fieldReader) number(candidates ...string) float64 {
	v, ok := r.lookup(candidates...)
	if !ok {
		r.defaulted = true
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		n, err := strconv.ParseFloat(cleanNumeric(t), 64)
		if err != nil {
			r.defaulted = true
			return 0
		}
		return n
	default:
		r.defaulted = true
		return 0
	}
}

// status trims the raw value and defaults empty to "Available". The original
// casing is kept for display; the lowercased key is what filters compare.
func (r *fieldReader) status(candidates ...string) (display, key string) {
	display = strings.TrimSpace(r.text(candidates...))
	if display == "" {
		display = constants.PropertyStatusAvailable
		r.defaulted = true
	}
	return display, strings.ToLower(display)
}

func cleanNumeric(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "₱")
	s = strings.TrimPrefix(s, "PHP")
	return strings.TrimSpace(s)
}

// NormalizeProperty maps one raw record from either property collection into
// the uniform Property shape. Pure: same inputs always produce the same
// entity, no error paths — malformed cells degrade to defaults and set the
// Defaulted flag.
func NormalizeProperty(raw providers.RawRecord, collection string) entities.Property {
	r := newFieldReader(raw)

	p := entities.Property{
		ID:                r.text("id"),
		Block:             r.text("Block"),
		Lot:               r.text("Lot"),
		Due:               r.text("Due"),
		DateOfReservation: r.text("Date of Reservation"),
		FirstDue:          r.text("First Due"),
		Terms:             r.text("Terms", "Term"),
		Amount:            r.number("Amount"),
		Realty:            r.text("Realty"),
		BuyersName:        r.text("Buyers Name", "Owner"),
		SellerName:        r.text("Seller Name"),
		SalesDirector:     r.text("Sales Director"),
		Broker:            r.text("Broker"),
		LotSize:           r.text("Lot Size", "Lot Area"),
		Price:             r.number("Price"),
		PaymentScheme:     r.text("Payment Scheme"),
		VatStatus:         r.text("Vat Status"),
		TSP:               r.number("TSP"),
		ModeOfPayment:     r.text("Mode of Payment"),
		Reservation:       r.number("Reservation"),
		CommPrice:         r.number("Comm Price"),
		MiscFee:           r.number("MISC FEE", "Misc Fee", "Misc. Fee"),
		Vat:               r.number("Vat", "VAT"),
		TCP:               r.number("TCP"),
		FirstMA:           r.number("First MA", "1st MA"),
		FirstMAWithHolding: r.number("1ST MA with Holding Fee"),
		SecondTo48thMA:    r.number("2ND TO 48TH MA"),
		NewTerm:           r.text("NEW TERM"),
		PasaloPrice:       r.number("PASALO PRICE"),
		NewMA:             r.number("NEW MA"),

		DueDate1530:      r.text("Due Date 15/30"),
		FirstDueMonth:    r.text("First Due Month"),
		BrokerRealty:     r.text("Broker / Realty"),
		LotArea:          r.text("Lot Area"),
		PricePerSQM:      r.text("Price per sqm", "Price/SQM"),
		NetContractPrice: r.number("Net Contract Price"),
		OptionalAdvance:  r.number("Optional: Advance Payment"),
		FirstMANetOfAdv:  r.number("1st MA net of Advance Payment"),
		SecondTo60thMA:   r.number("2ndto60th MA", "2nd-60th MA"),
		Year:             r.text("Year"),

		SourceCollection: collection,
		CreatedAt:        r.text("created_at"),
	}

	p.Status, p.StatusKey = r.status("Status")
	p.Defaulted = r.defaulted
	return p
}

// NormalizeClient maps one raw Clients record.
func NormalizeClient(raw providers.RawRecord) entities.Client {
	r := newFieldReader(raw)

	c := entities.Client{
		ID:     r.text("id"),
		Name:   r.text("Name"),
		Email:  r.text("Email"),
		AuthID: r.text("auth_id"),
	}
	c.Defaulted = r.defaulted
	return c
}

// NormalizePayment maps one raw Payments record.
func NormalizePayment(raw providers.RawRecord) entities.Payment {
	r := newFieldReader(raw)

	p := entities.Payment{
		ID:                  r.text("id"),
		Client:              r.text("Client", "Name"),
		Amount:              r.number("Amount"),
		PaymentDate:         r.text("Payment Date"),
		PaymentType:         r.text("Payment Type"),
		MonthlyAmortization: r.text("Monthly Amortization"),
		PenaltyAmount:       r.number("Penalty Amount"),
		CreatedAt:           r.text("created_at"),
	}

	status := strings.TrimSpace(r.text("Status"))
	if status == "" {
		status = constants.PaymentStatusPending
		r.defaulted = true
	}
	p.Status = status
	p.StatusKey = strings.ToLower(status)
	p.Defaulted = r.defaulted
	return p
}

// NormalizeDocument maps one raw Documents record.
func NormalizeDocument(raw providers.RawRecord) entities.DocumentRecord {
	r := newFieldReader(raw)

	d := entities.DocumentRecord{
		ID:            r.text("id"),
		Name:          r.text("Name"),
		Address:       r.text("Address"),
		TinID:         r.text("TIN ID", "Tin ID"),
		Email:         r.text("Email"),
		ContactNo:     r.text("Contact No"),
		MaritalStatus: r.text("Marital Status"),
	}
	d.Defaulted = r.defaulted
	return d
}
