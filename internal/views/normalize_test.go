package views

import (
	"testing"

	"havahills/backoffice/internal/providers"
)

func TestNormalizeProperty_MissingNumericDefaultsToZero(t *testing.T) {
	raw := providers.RawRecord{
		"id":    "17",
		"Block": "2",
		"Lot":   "5",
	}

	p := NormalizeProperty(raw, "Havahills Estate")

	if p.Price != 0 {
		t.Errorf("expected Price 0, got %v", p.Price)
	}
	if p.TCP != 0 {
		t.Errorf("expected TCP 0, got %v", p.TCP)
	}
	if p.FirstMA != 0 {
		t.Errorf("expected FirstMA 0, got %v", p.FirstMA)
	}
	if !p.Defaulted {
		t.Error("expected Defaulted flag when numeric fields are absent")
	}
}

func TestNormalizeProperty_MalformedNumericDefaultsToZero(t *testing.T) {
	raw := providers.RawRecord{
		"id":    "3",
		"Block": "1",
		"Lot":   "1",
		"Price": "N/A",
		"TCP":   "1,250,000.50",
	}

	p := NormalizeProperty(raw, "Havahills Estate")

	if p.Price != 0 {
		t.Errorf("malformed Price should degrade to 0, got %v", p.Price)
	}
	if p.TCP != 1250000.50 {
		t.Errorf("expected comma-separated TCP to parse, got %v", p.TCP)
	}
	if !p.Defaulted {
		t.Error("expected Defaulted flag for the unparseable price")
	}
}

func TestNormalizeProperty_CandidatePriority(t *testing.T) {
	// "Buyers Name" wins over "Owner" when both are present
	raw := providers.RawRecord{
		"id":          "9",
		"Buyers Name": "Juan Dela Cruz",
		"Owner":       "Someone Else",
	}
	p := NormalizeProperty(raw, "Living Water Subdivision")
	if p.BuyersName != "Juan Dela Cruz" {
		t.Errorf("expected first candidate to win, got %q", p.BuyersName)
	}

	// Falls through to "Owner" when the primary name is absent
	raw = providers.RawRecord{"id": "9", "Owner": "Maria Santos"}
	p = NormalizeProperty(raw, "Living Water Subdivision")
	if p.BuyersName != "Maria Santos" {
		t.Errorf("expected fallback candidate, got %q", p.BuyersName)
	}
}

func TestNormalizeProperty_StatusDefaultsAndKey(t *testing.T) {
	cases := []struct {
		raw     interface{}
		display string
		key     string
	}{
		{" Sold ", "Sold", "sold"},
		{"SOLD", "SOLD", "sold"},
		{"", "Available", "available"},
		{nil, "Available", "available"},
	}

	for _, tc := range cases {
		raw := providers.RawRecord{"id": "1"}
		if tc.raw != nil {
			raw["Status"] = tc.raw
		}
		p := NormalizeProperty(raw, "Havahills Estate")
		if p.Status != tc.display {
			t.Errorf("raw %q: expected display %q, got %q", tc.raw, tc.display, p.Status)
		}
		if p.StatusKey != tc.key {
			t.Errorf("raw %q: expected key %q, got %q", tc.raw, tc.key, p.StatusKey)
		}
	}
}

func TestNormalizeProperty_Idempotent(t *testing.T) {
	raw := providers.RawRecord{
		"id":       "21",
		"Block":    "4",
		"Lot":      "12",
		"Status":   "Reserved",
		"First MA": 5400.25,
	}

	first := NormalizeProperty(raw, "Havahills Estate")
	second := NormalizeProperty(raw, "Havahills Estate")

	if first != second {
		t.Error("normalization must be a pure function of its inputs")
	}
	if first.FirstMA != 5400.25 {
		t.Errorf("expected FirstMA 5400.25, got %v", first.FirstMA)
	}
}

func TestNormalizePayment_Defaults(t *testing.T) {
	p := NormalizePayment(providers.RawRecord{
		"id":     "7",
		"Client": "Juan Dela Cruz",
		"Amount": "not-a-number",
	})

	if p.Amount != 0 {
		t.Errorf("expected Amount 0, got %v", p.Amount)
	}
	if p.Status != "Pending" {
		t.Errorf("expected default status Pending, got %q", p.Status)
	}
	if !p.Defaulted {
		t.Error("expected Defaulted flag")
	}
}
