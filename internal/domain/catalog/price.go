package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a price in RWF. The backend serializes decimals as strings
// ("1500.00"); older payloads and client state use plain numbers.
//
// Arithmetic goes through whole cents so sums and discounts never pick up
// binary floating-point remainders.
type Amount float64

// FromCents builds an amount from a whole number of cents.
func FromCents(c int64) Amount { return Amount(float64(c) / 100) }

// Cents is the amount rounded half away from zero to whole cents.
func (a Amount) Cents() int64 { return int64(math.Round(float64(a) * 100)) }

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*a = Amount(f).Round2()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = Amount(f).Round2()
	return nil
}

func (a Amount) Float64() float64 { return float64(a) }

func (a Amount) IsPositive() bool { return a > 0 }

// Round2 rounds half away from zero to two decimals.
func (a Amount) Round2() Amount {
	return FromCents(a.Cents())
}

// Times multiplies by a quantity.
func (a Amount) Times(n int) Amount {
	return FromCents(a.Cents() * int64(n))
}

// DiscountedBy applies a percentage discount, rounded to whole cents.
func (a Amount) DiscountedBy(percent float64) Amount {
	return FromCents(int64(math.Round(float64(a.Cents()) * (100 - percent) / 100)))
}
