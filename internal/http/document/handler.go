package document

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/document"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/settings"
)

type Handler struct {
	renderer    *document.Renderer
	invoices    *invoice.Service
	catalog     *masterdata.Service
	settingsSvc *settings.Service
	sharePhone  string
}

func NewHandler(renderer *document.Renderer, invoices *invoice.Service, catalog *masterdata.Service, settingsSvc *settings.Service, sharePhone string) *Handler {
	return &Handler{
		renderer:    renderer,
		invoices:    invoices,
		catalog:     catalog,
		settingsSvc: settingsSvc,
		sharePhone:  sharePhone,
	}
}

// SessionRoutes renders the invoice currently being built.
func (h *Handler) SessionRoutes(r chi.Router) {
	r.Get("/pdf", h.currentPDF)
	r.Get("/share", h.currentShare)
}

// SavedRoutes renders persisted invoices by id.
func (h *Handler) SavedRoutes(r chi.Router) {
	r.Get("/{id}/pdf", h.savedPDF)
	r.Get("/{id}/share", h.savedShare)
}

func (h *Handler) currentPDF(w http.ResponseWriter, r *http.Request) {
	inv := h.invoices.Current()
	if inv == nil {
		http.Error(w, "no invoice in progress", http.StatusNotFound)
		return
	}

	h.renderPDF(w, r, inv)
}

func (h *Handler) savedPDF(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.saved(w, r)
	if !ok {
		return
	}

	h.renderPDF(w, r, inv)
}

func (h *Handler) renderPDF(w http.ResponseWriter, r *http.Request, inv *invoice.Invoice) {
	st, err := h.settingsSvc.Get(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pdf, err := h.renderer.Render(document.RenderInput{
		Invoice:  inv,
		Settings: st,
		Vendor:   h.vendor(r.Context(), inv.VendorID),
		Party:    h.party(r.Context(), inv.PartyID),
	})
	if err != nil {
		http.Error(w, "failed to render invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+document.Filename(inv)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))

	if _, err := w.Write(pdf); err != nil {
		slog.Error("failed to write pdf response", "error", err)
	}
}

type shareResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

func (h *Handler) currentShare(w http.ResponseWriter, r *http.Request) {
	inv := h.invoices.Current()
	if inv == nil {
		http.Error(w, "no invoice in progress", http.StatusNotFound)
		return
	}

	h.renderShare(w, r, inv)
}

func (h *Handler) savedShare(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.saved(w, r)
	if !ok {
		return
	}

	h.renderShare(w, r, inv)
}

func (h *Handler) renderShare(w http.ResponseWriter, r *http.Request, inv *invoice.Invoice) {
	st, err := h.settingsSvc.Get(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	msg := document.ShareMessage(inv, st.Company.CompanyName)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(shareResponse{
		Message: msg,
		URL:     document.WhatsAppLink(h.sharePhone, msg),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) saved(w http.ResponseWriter, r *http.Request) (*invoice.Invoice, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	inv, err := h.invoices.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "invoice not found", http.StatusNotFound)
		return nil, false
	}

	return inv, true
}

// vendor and party lookups are best effort: a dangling or absent id
// renders as an empty block rather than failing the document.
func (h *Handler) vendor(ctx context.Context, id uuid.UUID) *masterdata.Vendor {
	if id == uuid.Nil {
		return nil
	}

	vendors, err := h.catalog.Vendors(ctx)
	if err != nil {
		return nil
	}

	for _, v := range vendors {
		if v.ID == id {
			return v
		}
	}

	return nil
}

func (h *Handler) party(ctx context.Context, id uuid.UUID) *masterdata.Party {
	if id == uuid.Nil {
		return nil
	}

	parties, err := h.catalog.Parties(ctx)
	if err != nil {
		return nil
	}

	for _, p := range parties {
		if p.ID == id {
			return p
		}
	}

	return nil
}
