package view

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const dbTimeout = 5 * time.Second

// FormatMoney formats a rupee amount with two decimals.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// ValidateFloat accepts an empty string or a non-negative number; huh
// forms use it on the numeric inputs.
func ValidateFloat(s string) error {
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}

	if v < 0 {
		return fmt.Errorf("must not be negative")
	}

	return nil
}

// ParseFloat is the lenient counterpart to ValidateFloat; anything
// unparseable becomes zero.
func ParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}
