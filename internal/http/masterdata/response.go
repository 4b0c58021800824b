package masterdata

import (
	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
)

type vendorResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Contact string    `json:"contact,omitempty"`
	GSTNo   string    `json:"gst_no,omitempty"`
	Email   string    `json:"email,omitempty"`
	Address string    `json:"address,omitempty"`
}

func toVendorResponse(v *masterdata.Vendor) vendorResponse {
	return vendorResponse{
		ID:      v.ID,
		Name:    v.Name,
		Contact: v.Contact,
		GSTNo:   v.GSTNo,
		Email:   v.Email,
		Address: v.Address,
	}
}

func toVendorResponseList(vendors []*masterdata.Vendor) []vendorResponse {
	resp := make([]vendorResponse, len(vendors))
	for i, v := range vendors {
		resp[i] = toVendorResponse(v)
	}

	return resp
}

type partyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	GSTNo         string    `json:"gst_no,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
}

func toPartyResponse(p *masterdata.Party) partyResponse {
	return partyResponse{
		ID:            p.ID,
		Name:          p.Name,
		ContactPerson: p.ContactPerson,
		GSTNo:         p.GSTNo,
		Email:         p.Email,
		Address:       p.Address,
	}
}

func toPartyResponseList(parties []*masterdata.Party) []partyResponse {
	resp := make([]partyResponse, len(parties))
	for i, p := range parties {
		resp[i] = toPartyResponse(p)
	}

	return resp
}

type productResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Shade         string    `json:"shade,omitempty"`
	ShadeColor    string    `json:"shade_color,omitempty"`
	OperationType string    `json:"operation_type,omitempty"`
	PricePerSqFt  float64   `json:"price_per_sq_ft"`
	IsMotorItem   bool      `json:"is_motor_item"`
}

func toProductResponse(p *masterdata.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Shade:         p.Shade,
		ShadeColor:    p.ShadeColor,
		OperationType: p.OperationType,
		PricePerSqFt:  p.PricePerSqFt,
		IsMotorItem:   p.IsMotorItem,
	}
}

func toProductResponseList(products []*masterdata.Product) []productResponse {
	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}

	return resp
}
