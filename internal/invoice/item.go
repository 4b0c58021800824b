package invoice

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
)

// ItemParams is the user-entered half of a new line item. Product
// attributes come from the selected master-data product.
type ItemParams struct {
	Quantity     int
	WidthInches  float64
	HeightInches float64
	WidthCm      float64
	HeightCm     float64
	Unit         pricing.Unit
}

// newItem validates the params and builds a priced line item,
// snapshotting the product's attributes.
//
// Only the dimensions of the active unit are validated; the inactive
// unit's fields pass through as entered, possibly zero or stale. Both
// pairs are stored so switching units later keeps whatever was typed.
func newItem(product masterdata.Product, params ItemParams) (Item, error) {
	if product.ID == uuid.Nil {
		return Item{}, &ValidationError{Err: ErrProductRequired}
	}

	if params.Quantity <= 0 {
		return Item{}, &ValidationError{
			Err:     ErrInvalidQuantity,
			Details: fmt.Sprintf("got %d", params.Quantity),
		}
	}

	item := Item{
		ID:            uuid.New(),
		ProductID:     product.ID,
		ProductName:   product.Name,
		Shade:         product.Shade,
		ShadeColor:    product.ShadeColor,
		OperationType: product.OperationType,
		Quantity:      params.Quantity,
		WidthInches:   params.WidthInches,
		HeightInches:  params.HeightInches,
		WidthCm:       params.WidthCm,
		HeightCm:      params.HeightCm,
		Unit:          params.Unit,
		PricePerSqFt:  product.PricePerSqFt,
	}

	width, height := item.activeDimensions()
	if width <= 0 || height <= 0 {
		return Item{}, &ValidationError{Err: ErrInvalidDimensions}
	}

	item.price()

	return item, nil
}

// ItemUpdate is a partial update of an existing line item. Nil fields
// are left untouched; area and amount are recomputed from the merged
// values.
type ItemUpdate struct {
	Quantity     *int
	WidthInches  *float64
	HeightInches *float64
	WidthCm      *float64
	HeightCm     *float64
	Unit         *pricing.Unit
	PricePerSqFt *float64
}

// applied merges the update into a copy of the item and reprices it.
// Like the original entry flow, merged values are not re-validated.
func (it Item) applied(u ItemUpdate) Item {
	if u.Quantity != nil {
		it.Quantity = *u.Quantity
	}

	if u.WidthInches != nil {
		it.WidthInches = *u.WidthInches
	}

	if u.HeightInches != nil {
		it.HeightInches = *u.HeightInches
	}

	if u.WidthCm != nil {
		it.WidthCm = *u.WidthCm
	}

	if u.HeightCm != nil {
		it.HeightCm = *u.HeightCm
	}

	if u.Unit != nil {
		it.Unit = *u.Unit
	}

	if u.PricePerSqFt != nil {
		it.PricePerSqFt = *u.PricePerSqFt
	}

	it.price()

	return it
}

// activeDimensions returns the width/height pair matching the item's unit.
func (it Item) activeDimensions() (float64, float64) {
	if it.Unit == pricing.UnitCm {
		return it.WidthCm, it.HeightCm
	}

	return it.WidthInches, it.HeightInches
}

// price recomputes SqFt and Amount. The amount multiplies the already
// rounded area so it matches the figure printed on the line.
func (it *Item) price() {
	width, height := it.activeDimensions()

	it.SqFt = pricing.Round2(pricing.SquareFeet(width, height, it.Unit))
	it.Amount = pricing.Round2(it.SqFt * it.PricePerSqFt * float64(it.Quantity))
}
