package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Decimal is a tolerant numeric field. Legacy data files store CGPA and
// package figures either as JSON numbers or as free-text strings, and a
// handful of records carry values that do not parse at all. A Decimal
// never fails to decode: an unparseable value loads with Valid=false
// and the owning record is kept. Consumers that need the number (the
// eligibility check) treat an invalid Decimal as disqualifying.
type Decimal struct {
	Value float64
	Valid bool
}

// NewDecimal returns a valid Decimal holding v
func NewDecimal(v float64) Decimal {
	return Decimal{Value: v, Valid: true}
}

// Float returns the numeric value, 0 when invalid
func (d Decimal) Float() float64 {
	if !d.Valid {
		return 0
	}
	return d.Value
}

// MarshalJSON writes the value as a JSON number; invalid values are
// written as 0
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Float())
}

// UnmarshalJSON accepts a JSON number or a numeric string; anything
// else loads as invalid without an error
func (d *Decimal) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		d.Value, d.Valid = n, true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			d.Value, d.Valid = f, true
			return nil
		}
	}

	d.Value, d.Valid = 0, false
	return nil
}
