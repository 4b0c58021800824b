package invoice

import (
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
)

// Recompute derives the totals cascade and returns the invoice with all
// derived fields replaced. The stage order is fixed: items -> discount ->
// surcharges -> tax -> grand total. It never fails; an empty invoice
// yields zero totals plus whatever charges are set.
//
// Surcharges are always part of the total when nonzero. The display
// flags in settings only decide whether the rendered document prints
// the line, never whether the money counts.
func Recompute(inv Invoice) Invoice {
	var (
		totalMaterial int
		totalSqFt     float64
		itemsTotal    float64
	)

	for _, it := range inv.Items {
		totalMaterial += it.Quantity
		totalSqFt += it.SqFt * float64(it.Quantity)
		itemsTotal += it.Amount
	}

	discount := pricing.Round2(itemsTotal * inv.DiscountPercentage / 100)
	subtotal := itemsTotal - discount

	beforeTax := pricing.Round2(subtotal +
		inv.PackingCharges + inv.PelmetCharges +
		inv.CourierCharges + inv.InstallationCharges)

	var gst float64
	if inv.GSTEnabled {
		gst = pricing.Round2(beforeTax * inv.GSTPercentage / 100)
	}

	grand := pricing.Round2(beforeTax + gst)

	inv.TotalMaterial = totalMaterial
	inv.TotalSqFt = pricing.Round2(totalSqFt)
	inv.DiscountAmount = discount
	inv.TotalAmountBeforeTax = beforeTax
	inv.GSTAmount = gst
	inv.GrandTotal = grand
	// Kept distinct from GrandTotal for a future prior-payment
	// deduction; currently always equal.
	inv.TotalPayment = grand

	return inv
}
