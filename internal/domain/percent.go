package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// Percent is a beneficiary share stored in basis points (1% = 100 bp).
// Integer arithmetic keeps allocation totals exact: 33.33 + 33.33 + 33.34
// sums to precisely 100%, which a float64 representation cannot guarantee.
type Percent int64

// FullAllocation is the complete 100% share a beneficiary group must reach.
const FullAllocation Percent = 10000

// PercentFromFloat converts a percentage value (e.g. 33.33) to basis points,
// rounding to the nearest hundredth of a percent.
func PercentFromFloat(v float64) Percent {
	return Percent(math.Round(v * 100))
}

// Float returns the percentage as a display value, e.g. 33.33.
func (p Percent) Float() float64 {
	return float64(p) / 100
}

// Valid reports whether the share lies in the allowed [0%, 100%] domain.
func (p Percent) Valid() bool {
	return p >= 0 && p <= FullAllocation
}

func (p Percent) String() string {
	return strconv.FormatFloat(p.Float(), 'f', -1, 64) + "%"
}

// MarshalJSON encodes the share as a plain percentage number.
func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(p.Float(), 'f', -1, 64)), nil
}

// UnmarshalJSON accepts a percentage number (integral or decimal).
func (p *Percent) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = PercentFromFloat(v)
	return nil
}
