package model

import (
	"encoding/json"
	"fmt"
)

// Payback is the number of months needed to recoup the conversion cost.
// The zero value is "no payback": savings were zero or negative, so the
// cost is never recovered. It is never represented as +Inf.
type Payback struct {
	months float64
	ok     bool
}

// NoPayback returns the no-payback variant.
func NoPayback() Payback { return Payback{} }

// PaybackIn returns a finite payback of m months.
func PaybackIn(m float64) Payback { return Payback{months: m, ok: true} }

// Months reports the payback period and whether one exists.
func (p Payback) Months() (float64, bool) { return p.months, p.ok }

// IsNone reports whether this is the no-payback variant.
func (p Payback) IsNone() bool { return !p.ok }

func (p Payback) String() string {
	if !p.ok {
		return "no payback"
	}
	return fmt.Sprintf("%.1f months", p.months)
}

// MarshalJSON encodes a finite payback as a number and no payback as null.
func (p Payback) MarshalJSON() ([]byte, error) {
	if !p.ok {
		return []byte("null"), nil
	}
	return json.Marshal(p.months)
}

// UnmarshalJSON reads a number as a finite payback and null as no payback.
func (p *Payback) UnmarshalJSON(b []byte) error {
	var v *float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == nil {
		*p = NoPayback()
		return nil
	}
	*p = PaybackIn(*v)
	return nil
}
