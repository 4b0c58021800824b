package masterdata

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
)

type Handler struct {
	svc *masterdata.Service
}

func NewHandler(svc *masterdata.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) VendorRoutes(r chi.Router) {
	r.Get("/", h.listVendors)
	r.Post("/", h.createVendor)
	r.Put("/{id}", h.updateVendor)
	r.Delete("/{id}", h.deleteVendor)
}

func (h *Handler) PartyRoutes(r chi.Router) {
	r.Get("/", h.listParties)
	r.Post("/", h.createParty)
	r.Put("/{id}", h.updateParty)
	r.Delete("/{id}", h.deleteParty)
}

func (h *Handler) ProductRoutes(r chi.Router) {
	r.Get("/", h.listProducts)
	r.Post("/", h.createProduct)
	r.Get("/{id}", h.getProduct)
	r.Put("/{id}", h.updateProduct)
	r.Delete("/{id}", h.deleteProduct)
}

type vendorRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	GSTNo   string `json:"gst_no,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

func (h *Handler) listVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.svc.Vendors(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toVendorResponseList(vendors))
}

func (h *Handler) createVendor(w http.ResponseWriter, r *http.Request) {
	var req vendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	vendor := &masterdata.Vendor{
		Name:    req.Name,
		Contact: req.Contact,
		GSTNo:   req.GSTNo,
		Email:   req.Email,
		Address: req.Address,
	}

	if err := h.svc.AddVendor(r.Context(), vendor); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toVendorResponse(vendor))
}

func (h *Handler) updateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req vendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vendor := &masterdata.Vendor{
		ID:      id,
		Name:    req.Name,
		Contact: req.Contact,
		GSTNo:   req.GSTNo,
		Email:   req.Email,
		Address: req.Address,
	}

	if err := h.svc.UpdateVendor(r.Context(), vendor); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toVendorResponse(vendor))
}

func (h *Handler) deleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteVendor(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type partyRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	GSTNo         string `json:"gst_no,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
}

func (h *Handler) listParties(w http.ResponseWriter, r *http.Request) {
	parties, err := h.svc.Parties(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toPartyResponseList(parties))
}

func (h *Handler) createParty(w http.ResponseWriter, r *http.Request) {
	var req partyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	party := &masterdata.Party{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		GSTNo:         req.GSTNo,
		Email:         req.Email,
		Address:       req.Address,
	}

	if err := h.svc.AddParty(r.Context(), party); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toPartyResponse(party))
}

func (h *Handler) updateParty(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req partyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	party := &masterdata.Party{
		ID:            id,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		GSTNo:         req.GSTNo,
		Email:         req.Email,
		Address:       req.Address,
	}

	if err := h.svc.UpdateParty(r.Context(), party); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPartyResponse(party))
}

func (h *Handler) deleteParty(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteParty(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type productRequest struct {
	Name          string  `json:"name"`
	Shade         string  `json:"shade,omitempty"`
	ShadeColor    string  `json:"shade_color,omitempty"`
	OperationType string  `json:"operation_type,omitempty"`
	PricePerSqFt  float64 `json:"price_per_sq_ft"`
	IsMotorItem   bool    `json:"is_motor_item"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Products(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponseList(products))
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	product, err := h.svc.Product(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if req.PricePerSqFt <= 0 {
		http.Error(w, "price_per_sq_ft must be positive", http.StatusBadRequest)
		return
	}

	product := &masterdata.Product{
		Name:          req.Name,
		Shade:         req.Shade,
		ShadeColor:    req.ShadeColor,
		OperationType: req.OperationType,
		PricePerSqFt:  req.PricePerSqFt,
		IsMotorItem:   req.IsMotorItem,
	}

	if err := h.svc.AddProduct(r.Context(), product); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product := &masterdata.Product{
		ID:            id,
		Name:          req.Name,
		Shade:         req.Shade,
		ShadeColor:    req.ShadeColor,
		OperationType: req.OperationType,
		PricePerSqFt:  req.PricePerSqFt,
		IsMotorItem:   req.IsMotorItem,
	}

	if err := h.svc.UpdateProduct(r.Context(), product); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, masterdata.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}
