package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundDecimal rounds value to the given number of decimal places using round-half-to-even
// on the shortest decimal representation of the float.
// For example, RoundDecimal(0.125, 2) returns 0.12 and RoundDecimal(0.135, 2) returns 0.14.
func RoundDecimal(value float64, decimals int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	f, _ := decimal.NewFromFloat(value).RoundBank(decimals).Float64()
	return f
}
