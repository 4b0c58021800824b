package settings

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/settings"
)

type Handler struct {
	svc *settings.Service
}

func NewHandler(svc *settings.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.update)
}

type companyDTO struct {
	CompanyName   string `json:"company_name"`
	Logo          string `json:"logo,omitempty"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	GSTNo         string `json:"gst_no,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	AccountName   string `json:"account_name,omitempty"`
	BranchName    string `json:"branch_name,omitempty"`
}

type chargesDTO struct {
	ShowPackingCharges      bool `json:"show_packing_charges"`
	ShowPelmetCharges       bool `json:"show_pelmet_charges"`
	ShowCourierCharges      bool `json:"show_courier_charges"`
	ShowInstallationCharges bool `json:"show_installation_charges"`
	ShowLocalCartage        bool `json:"show_local_cartage"`
	PelmetGST               bool `json:"pelmet_gst"`
}

type settingsDTO struct {
	Company companyDTO `json:"company"`
	Charges chargesDTO `json:"charges"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toDTO(s))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req settingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s := fromDTO(req)

	if err := h.svc.Save(r.Context(), s); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toDTO(s))
}

func toDTO(s settings.Settings) settingsDTO {
	return settingsDTO{
		Company: companyDTO{
			CompanyName:   s.Company.CompanyName,
			Logo:          s.Company.Logo,
			Address:       s.Company.Address,
			Phone:         s.Company.Phone,
			Email:         s.Company.Email,
			GSTNo:         s.Company.GSTNo,
			BankName:      s.Company.BankName,
			AccountNumber: s.Company.AccountNumber,
			AccountName:   s.Company.AccountName,
			BranchName:    s.Company.BranchName,
		},
		Charges: chargesDTO{
			ShowPackingCharges:      s.Charges.ShowPackingCharges,
			ShowPelmetCharges:       s.Charges.ShowPelmetCharges,
			ShowCourierCharges:      s.Charges.ShowCourierCharges,
			ShowInstallationCharges: s.Charges.ShowInstallationCharges,
			ShowLocalCartage:        s.Charges.ShowLocalCartage,
			PelmetGST:               s.Charges.PelmetGST,
		},
	}
}

func fromDTO(dto settingsDTO) settings.Settings {
	return settings.Settings{
		Company: settings.CompanyProfile{
			CompanyName:   dto.Company.CompanyName,
			Logo:          dto.Company.Logo,
			Address:       dto.Company.Address,
			Phone:         dto.Company.Phone,
			Email:         dto.Company.Email,
			GSTNo:         dto.Company.GSTNo,
			BankName:      dto.Company.BankName,
			AccountNumber: dto.Company.AccountNumber,
			AccountName:   dto.Company.AccountName,
			BranchName:    dto.Company.BranchName,
		},
		Charges: settings.ChargeConfig{
			ShowPackingCharges:      dto.Charges.ShowPackingCharges,
			ShowPelmetCharges:       dto.Charges.ShowPelmetCharges,
			ShowCourierCharges:      dto.Charges.ShowCourierCharges,
			ShowInstallationCharges: dto.Charges.ShowInstallationCharges,
			ShowLocalCartage:        dto.Charges.ShowLocalCartage,
			PelmetGST:               dto.Charges.PelmetGST,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
