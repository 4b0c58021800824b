package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/importer"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
)

type Handler struct {
	importSvc  *importer.Service
	catalogSvc *masterdata.Service
}

func NewHandler(importSvc *importer.Service, catalogSvc *masterdata.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		catalogSvc: catalogSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type productResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Shade        string    `json:"shade,omitempty"`
	ShadeColor   string    `json:"shade_color,omitempty"`
	PricePerSqFt float64   `json:"price_per_sq_ft"`
	IsMotorItem  bool      `json:"is_motor_item"`
}

type importSuccessResponse struct {
	Imported int               `json:"imported"`
	Products []productResponse `json:"products"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatPriceList
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	products, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported, err := h.catalogSvc.ImportProducts(r.Context(), products)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := importSuccessResponse{
		Imported: imported,
		Products: make([]productResponse, 0, imported),
	}

	for _, p := range products[:imported] {
		resp.Products = append(resp.Products, productResponse{
			ID:           p.ID,
			Name:         p.Name,
			Shade:        p.Shade,
			ShadeColor:   p.ShadeColor,
			PricePerSqFt: p.PricePerSqFt,
			IsMotorItem:  p.IsMotorItem,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
