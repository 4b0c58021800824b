// Package invoice implements the proforma-invoice engine: line-item
// construction, the totals cascade, and the lifecycle of the invoice
// in progress plus the saved collection behind it.
package invoice

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
)

// Status represents the lifecycle state of an invoice.
type Status string

const (
	StatusDraft Status = "draft"
	StatusSaved Status = "saved"
	// StatusSent is a valid stored value but no operation transitions
	// into it yet.
	StatusSent Status = "sent"
)

// DefaultGSTPercentage is applied to every freshly created invoice.
const DefaultGSTPercentage = 18.0

// Item is a single blind on the invoice. Product attributes are
// snapshotted at add time so later catalog edits never change a saved
// invoice. Width and height are stored in both unit systems; Unit says
// which pair was active when the dimensions were entered.
type Item struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	ProductName   string
	Shade         string
	ShadeColor    string
	OperationType string
	Quantity      int
	WidthInches   float64
	HeightInches  float64
	WidthCm       float64
	HeightCm      float64
	Unit          pricing.Unit
	SqFt          float64
	PricePerSqFt  float64
	Amount        float64
}

// Invoice is a proforma invoice. Fields from TotalMaterial down to
// TotalPayment are derived and owned by Recompute; everything above is
// entered by the user or snapshotted from master data.
type Invoice struct {
	ID            uuid.UUID
	VendorID      uuid.UUID
	PartyID       uuid.UUID
	InvoiceNumber string
	Date          time.Time
	GSTNo         string
	Items         []Item

	DiscountPercentage  float64
	PackingCharges      float64
	PelmetCharges       float64
	CourierCharges      float64
	InstallationCharges float64
	GSTEnabled          bool
	GSTPercentage       float64

	TotalMaterial        int
	TotalSqFt            float64
	DiscountAmount       float64
	TotalAmountBeforeTax float64
	GSTAmount            float64
	GrandTotal           float64
	TotalPayment         float64

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a fresh draft invoice: empty items, GST on at the default
// rate, all charges zero.
func New() *Invoice {
	id := uuid.New()
	now := time.Now()

	return &Invoice{
		ID:            id,
		InvoiceNumber: Number(id, now),
		Date:          now,
		GSTEnabled:    true,
		GSTPercentage: DefaultGSTPercentage,
		Status:        StatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Number derives the human-facing invoice number from the invoice id.
// Tying it to the id instead of the wall clock keeps two invoices
// created in the same millisecond from colliding.
func Number(id uuid.UUID, date time.Time) string {
	return fmt.Sprintf("INV-%s-%08X", date.Format("20060102"), binary.BigEndian.Uint32(id[:4]))
}

// Clone returns a deep copy. Items are copied so callers can hand the
// result across a boundary without sharing the slice.
func (inv *Invoice) Clone() *Invoice {
	cp := *inv
	cp.Items = make([]Item, len(inv.Items))
	copy(cp.Items, inv.Items)

	return &cp
}

// HeaderUpdate is a partial update of the invoice header. Nil fields are
// left untouched.
type HeaderUpdate struct {
	VendorID            *uuid.UUID
	PartyID             *uuid.UUID
	Date                *time.Time
	GSTNo               *string
	DiscountPercentage  *float64
	PackingCharges      *float64
	PelmetCharges       *float64
	CourierCharges      *float64
	InstallationCharges *float64
	GSTEnabled          *bool
	GSTPercentage       *float64
}

func (inv *Invoice) applyHeader(u HeaderUpdate) {
	if u.VendorID != nil {
		inv.VendorID = *u.VendorID
	}

	if u.PartyID != nil {
		inv.PartyID = *u.PartyID
	}

	if u.Date != nil {
		inv.Date = *u.Date
	}

	if u.GSTNo != nil {
		inv.GSTNo = *u.GSTNo
	}

	if u.DiscountPercentage != nil {
		inv.DiscountPercentage = *u.DiscountPercentage
	}

	if u.PackingCharges != nil {
		inv.PackingCharges = *u.PackingCharges
	}

	if u.PelmetCharges != nil {
		inv.PelmetCharges = *u.PelmetCharges
	}

	if u.CourierCharges != nil {
		inv.CourierCharges = *u.CourierCharges
	}

	if u.InstallationCharges != nil {
		inv.InstallationCharges = *u.InstallationCharges
	}

	if u.GSTEnabled != nil {
		inv.GSTEnabled = *u.GSTEnabled
	}

	if u.GSTPercentage != nil {
		inv.GSTPercentage = *u.GSTPercentage
	}
}

// ValidateForSave checks the preconditions the UI enforces before a
// save: vendor and party selected, at least one item. The entity store
// itself does not call this; callers at the boundary do.
func ValidateForSave(inv *Invoice) error {
	if inv.VendorID == uuid.Nil || inv.PartyID == uuid.Nil {
		return &ValidationError{Err: ErrPartiesRequired}
	}

	if len(inv.Items) == 0 {
		return &ValidationError{Err: ErrNoItems}
	}

	return nil
}
