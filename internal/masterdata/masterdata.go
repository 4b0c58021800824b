// Package masterdata owns the vendor, party and product records the
// invoice builder selects from. Products carry the per-square-foot rate
// that gets snapshotted onto line items at add time.
package masterdata

import (
	"github.com/google/uuid"
)

// Vendor is the selling branch/entity printed on the invoice header.
type Vendor struct {
	ID      uuid.UUID
	Name    string
	Contact string
	GSTNo   string
	Email   string
	Address string
}

// Party is the buyer the invoice is billed to.
type Party struct {
	ID            uuid.UUID
	Name          string
	ContactPerson string
	GSTNo         string
	Email         string
	Address       string
}

// Product is a blind fabric/model with its rate per square foot.
type Product struct {
	ID            uuid.UUID
	Name          string
	Shade         string
	ShadeColor    string
	OperationType string
	PricePerSqFt  float64
	IsMotorItem   bool
}
