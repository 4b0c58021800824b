// Package pricing holds the area and money arithmetic shared by the
// invoice engine: unit conversion to square feet and the half-up
// two-decimal rounding every displayed figure goes through.
package pricing

import (
	"github.com/shopspring/decimal"
)

// Unit is the measurement system a width/height pair was entered in.
type Unit string

const (
	UnitInches Unit = "inches"
	UnitCm     Unit = "cm"
)

// Square centimeters per square foot.
const sqCmPerSqFt = 929.0304

// SquareFeet converts a width/height pair in the given unit to area in
// square feet. It is pure arithmetic: non-positive dimensions pass
// through, validation is the caller's job.
func SquareFeet(width, height float64, unit Unit) float64 {
	if unit == UnitCm {
		return (width * height) / sqCmPerSqFt
	}

	return (width * height) / 144
}

// Round2 rounds to two decimal places, half away from zero. Done through
// decimal arithmetic so values like 16.145 land on the side the customer
// sees on the printed invoice.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
