package invoice

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
)

type Handler struct {
	svc     *invoice.Service
	catalog *masterdata.Service
}

func NewHandler(svc *invoice.Service, catalog *masterdata.Service) *Handler {
	return &Handler{svc: svc, catalog: catalog}
}

// SessionRoutes operates on the invoice currently being built.
func (h *Handler) SessionRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.current)
	r.Patch("/", h.updateHeader)
	r.Post("/items", h.addItem)
	r.Patch("/items/{itemID}", h.updateItem)
	r.Delete("/items/{itemID}", h.removeItem)
	r.Post("/save", h.save)
	r.Post("/load/{id}", h.load)
}

// SavedRoutes operates on the persisted invoice collection.
func (h *Handler) SavedRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	inv := h.svc.CreateNew()

	writeJSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	inv := h.svc.Current()
	if inv == nil {
		http.Error(w, "no invoice in progress", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(inv))
}

type updateHeaderRequest struct {
	VendorID            *uuid.UUID `json:"vendor_id,omitempty"`
	PartyID             *uuid.UUID `json:"party_id,omitempty"`
	Date                *time.Time `json:"date,omitempty"`
	GSTNo               *string    `json:"gst_no,omitempty"`
	DiscountPercentage  *float64   `json:"discount_percentage,omitempty"`
	PackingCharges      *float64   `json:"packing_charges,omitempty"`
	PelmetCharges       *float64   `json:"pelmet_charges,omitempty"`
	CourierCharges      *float64   `json:"courier_charges,omitempty"`
	InstallationCharges *float64   `json:"installation_charges,omitempty"`
	GSTEnabled          *bool      `json:"gst_enabled,omitempty"`
	GSTPercentage       *float64   `json:"gst_percentage,omitempty"`
}

func (h *Handler) updateHeader(w http.ResponseWriter, r *http.Request) {
	var req updateHeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv := h.svc.UpdateHeader(invoice.HeaderUpdate{
		VendorID:            req.VendorID,
		PartyID:             req.PartyID,
		Date:                req.Date,
		GSTNo:               req.GSTNo,
		DiscountPercentage:  req.DiscountPercentage,
		PackingCharges:      req.PackingCharges,
		PelmetCharges:       req.PelmetCharges,
		CourierCharges:      req.CourierCharges,
		InstallationCharges: req.InstallationCharges,
		GSTEnabled:          req.GSTEnabled,
		GSTPercentage:       req.GSTPercentage,
	})
	if inv == nil {
		http.Error(w, "no invoice in progress", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(inv))
}

type addItemRequest struct {
	ProductID    uuid.UUID    `json:"product_id"`
	Quantity     int          `json:"quantity"`
	WidthInches  float64      `json:"width_inches"`
	HeightInches float64      `json:"height_inches"`
	WidthCm      float64      `json:"width_cm"`
	HeightCm     float64      `json:"height_cm"`
	Unit         pricing.Unit `json:"unit"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var product masterdata.Product

	if req.ProductID != uuid.Nil {
		p, err := h.catalog.Product(r.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, masterdata.ErrNotFound) {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}

			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}

		product = *p
	}

	inv, err := h.svc.AddItem(product, invoice.ItemParams{
		Quantity:     req.Quantity,
		WidthInches:  req.WidthInches,
		HeightInches: req.HeightInches,
		WidthCm:      req.WidthCm,
		HeightCm:     req.HeightCm,
		Unit:         req.Unit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(inv))
}

type updateItemRequest struct {
	Quantity     *int          `json:"quantity,omitempty"`
	WidthInches  *float64      `json:"width_inches,omitempty"`
	HeightInches *float64      `json:"height_inches,omitempty"`
	WidthCm      *float64      `json:"width_cm,omitempty"`
	HeightCm     *float64      `json:"height_cm,omitempty"`
	Unit         *pricing.Unit `json:"unit,omitempty"`
	PricePerSqFt *float64      `json:"price_per_sq_ft,omitempty"`
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.svc.UpdateItem(id, invoice.ItemUpdate{
		Quantity:     req.Quantity,
		WidthInches:  req.WidthInches,
		HeightInches: req.HeightInches,
		WidthCm:      req.WidthCm,
		HeightCm:     req.HeightCm,
		Unit:         req.Unit,
		PricePerSqFt: req.PricePerSqFt,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv := h.svc.RemoveItem(id)
	if inv == nil {
		http.Error(w, "no invoice in progress", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	current := h.svc.Current()
	if current == nil {
		http.Error(w, "no invoice in progress", http.StatusConflict)
		return
	}

	if err := invoice.ValidateForSave(current); err != nil {
		writeError(w, err)
		return
	}

	inv, err := h.svc.Save(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Load(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invs, err := h.svc.Saved(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(invs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
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

// writeError maps domain errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var persistErr *invoice.PersistenceError

	switch {
	case invoice.IsValidation(err):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, invoice.ErrNotFound), errors.Is(err, invoice.ErrItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, invoice.ErrNoInvoice):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &persistErr):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
