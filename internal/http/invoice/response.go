package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
)

type itemResponse struct {
	ID            uuid.UUID    `json:"id"`
	ProductID     uuid.UUID    `json:"product_id"`
	ProductName   string       `json:"product_name"`
	Shade         string       `json:"shade,omitempty"`
	ShadeColor    string       `json:"shade_color,omitempty"`
	OperationType string       `json:"operation_type,omitempty"`
	Quantity      int          `json:"quantity"`
	WidthInches   float64      `json:"width_inches"`
	HeightInches  float64      `json:"height_inches"`
	WidthCm       float64      `json:"width_cm"`
	HeightCm      float64      `json:"height_cm"`
	Unit          pricing.Unit `json:"unit"`
	SqFt          float64      `json:"sq_ft"`
	PricePerSqFt  float64      `json:"price_per_sq_ft"`
	Amount        float64      `json:"amount"`
}

type invoiceResponse struct {
	ID            uuid.UUID      `json:"id"`
	VendorID      *uuid.UUID     `json:"vendor_id,omitempty"`
	PartyID       *uuid.UUID     `json:"party_id,omitempty"`
	InvoiceNumber string         `json:"invoice_number"`
	Date          time.Time      `json:"date"`
	GSTNo         string         `json:"gst_no,omitempty"`
	Items         []itemResponse `json:"items"`

	DiscountPercentage  float64 `json:"discount_percentage"`
	PackingCharges      float64 `json:"packing_charges"`
	PelmetCharges       float64 `json:"pelmet_charges"`
	CourierCharges      float64 `json:"courier_charges"`
	InstallationCharges float64 `json:"installation_charges"`
	GSTEnabled          bool    `json:"gst_enabled"`
	GSTPercentage       float64 `json:"gst_percentage"`

	TotalMaterial        int     `json:"total_material"`
	TotalSqFt            float64 `json:"total_sq_ft"`
	DiscountAmount       float64 `json:"discount_amount"`
	TotalAmountBeforeTax float64 `json:"total_amount_before_tax"`
	GSTAmount            float64 `json:"gst_amount"`
	GrandTotal           float64 `json:"grand_total"`
	TotalPayment         float64 `json:"total_payment"`

	Status    invoice.Status `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	resp := invoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date,
		GSTNo:         inv.GSTNo,
		Items:         make([]itemResponse, 0, len(inv.Items)),

		DiscountPercentage:  inv.DiscountPercentage,
		PackingCharges:      inv.PackingCharges,
		PelmetCharges:       inv.PelmetCharges,
		CourierCharges:      inv.CourierCharges,
		InstallationCharges: inv.InstallationCharges,
		GSTEnabled:          inv.GSTEnabled,
		GSTPercentage:       inv.GSTPercentage,

		TotalMaterial:        inv.TotalMaterial,
		TotalSqFt:            inv.TotalSqFt,
		DiscountAmount:       inv.DiscountAmount,
		TotalAmountBeforeTax: inv.TotalAmountBeforeTax,
		GSTAmount:            inv.GSTAmount,
		GrandTotal:           inv.GrandTotal,
		TotalPayment:         inv.TotalPayment,

		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}

	if inv.VendorID != uuid.Nil {
		resp.VendorID = new(inv.VendorID)
	}

	if inv.PartyID != uuid.Nil {
		resp.PartyID = new(inv.PartyID)
	}

	for _, it := range inv.Items {
		resp.Items = append(resp.Items, itemResponse{
			ID:            it.ID,
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			Shade:         it.Shade,
			ShadeColor:    it.ShadeColor,
			OperationType: it.OperationType,
			Quantity:      it.Quantity,
			WidthInches:   it.WidthInches,
			HeightInches:  it.HeightInches,
			WidthCm:       it.WidthCm,
			HeightCm:      it.HeightCm,
			Unit:          it.Unit,
			SqFt:          it.SqFt,
			PricePerSqFt:  it.PricePerSqFt,
			Amount:        it.Amount,
		})
	}

	return resp
}

func toResponseList(invs []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invs))
	for i, inv := range invs {
		resp[i] = toResponse(inv)
	}

	return resp
}
