package pricelist

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseRate parses an Indian-formatted rate cell into rupees per square
// foot. Format examples: "₹1,250.50" -> 1250.50, "85" -> 85, "Rs. 90/-" -> 90.
func parseRate(s string) (float64, bool) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "₹")
	clean = strings.TrimPrefix(clean, "Rs.")
	clean = strings.TrimPrefix(clean, "Rs")
	clean = strings.TrimSuffix(clean, "/-")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, false
	}

	rate, _ := d.Float64()
	if rate <= 0 {
		return 0, false
	}

	return rate, true
}
