package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
)

func TestRecompute_Cascade(t *testing.T) {
	inv := invoice.Invoice{
		Items: []invoice.Item{
			{Quantity: 2, SqFt: 15, PricePerSqFt: 80, Amount: 2400, Unit: pricing.UnitInches},
			{Quantity: 1, SqFt: 10, PricePerSqFt: 60, Amount: 600, Unit: pricing.UnitInches},
		},
		DiscountPercentage: 10,
		PackingCharges:     50,
		GSTEnabled:         true,
		GSTPercentage:      18,
	}

	got := invoice.Recompute(inv)

	assert.Equal(t, 3, got.TotalMaterial)
	assert.InDelta(t, 40.0, got.TotalSqFt, 0.001) // 15*2 + 10*1
	assert.InDelta(t, 300.0, got.DiscountAmount, 0.001)
	assert.InDelta(t, 2750.0, got.TotalAmountBeforeTax, 0.001) // 3000 - 300 + 50
	assert.InDelta(t, 495.0, got.GSTAmount, 0.001)
	assert.InDelta(t, 3245.0, got.GrandTotal, 0.001)
	assert.InDelta(t, got.GrandTotal, got.TotalPayment, 0.0001)
}

func TestRecompute_DiscountBeforeCharges(t *testing.T) {
	// Charges join after the discount, so they are never discounted.
	inv := invoice.Invoice{
		Items:              []invoice.Item{{Quantity: 1, SqFt: 10, Amount: 1000}},
		DiscountPercentage: 10,
		PackingCharges:     50,
	}

	got := invoice.Recompute(inv)

	assert.InDelta(t, 100.0, got.DiscountAmount, 0.001)
	assert.InDelta(t, 950.0, got.TotalAmountBeforeTax, 0.001)
}

func TestRecompute_TaxGating(t *testing.T) {
	inv := invoice.Invoice{
		Items:         []invoice.Item{{Quantity: 1, SqFt: 10, Amount: 1000}},
		GSTEnabled:    false,
		GSTPercentage: 18,
	}

	got := invoice.Recompute(inv)

	assert.Zero(t, got.GSTAmount)
	assert.InDelta(t, got.TotalAmountBeforeTax, got.GrandTotal, 0.0001)
}

func TestRecompute_EmptyInvoice(t *testing.T) {
	got := invoice.Recompute(invoice.Invoice{
		DiscountPercentage: 25,
		CourierCharges:     120,
		GSTEnabled:         true,
		GSTPercentage:      18,
	})

	assert.Zero(t, got.TotalMaterial)
	assert.Zero(t, got.TotalSqFt)
	assert.Zero(t, got.DiscountAmount)
	assert.InDelta(t, 120.0, got.TotalAmountBeforeTax, 0.001)
	assert.InDelta(t, 21.6, got.GSTAmount, 0.001)
	assert.InDelta(t, 141.6, got.GrandTotal, 0.001)
}

func TestRecompute_Idempotent(t *testing.T) {
	inv := invoice.Invoice{
		Items: []invoice.Item{
			{Quantity: 3, SqFt: 16.15, Amount: 3875.97},
		},
		DiscountPercentage:  7.5,
		PelmetCharges:       200,
		InstallationCharges: 350,
		GSTEnabled:          true,
		GSTPercentage:       18,
	}

	once := invoice.Recompute(inv)
	twice := invoice.Recompute(once)

	assert.Equal(t, once, twice)
}
