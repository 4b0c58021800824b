// Package settings holds the company profile printed on every invoice
// and the charge display configuration. The display flags decide which
// surcharge lines the rendered document shows; the aggregator ignores
// them entirely and always counts a nonzero charge.
package settings

// CompanyProfile is the letterhead and bank block of the invoice.
type CompanyProfile struct {
	CompanyName   string
	Logo          string
	Address       string
	Phone         string
	Email         string
	GSTNo         string
	BankName      string
	AccountNumber string
	AccountName   string
	BranchName    string
}

// ChargeConfig controls which surcharge entry fields and document lines
// are visible. PelmetGST mirrors the form's "apply GST on pelmet"
// toggle; it is presentation-only and feeds no computation.
type ChargeConfig struct {
	ShowPackingCharges      bool
	ShowPelmetCharges       bool
	ShowCourierCharges      bool
	ShowInstallationCharges bool
	ShowLocalCartage        bool
	PelmetGST               bool
}

// Settings bundles everything the admin screen edits.
type Settings struct {
	Company CompanyProfile
	Charges ChargeConfig
}

// Defaults returns the out-of-the-box settings used until the admin
// saves their own.
func Defaults() Settings {
	return Settings{
		Company: CompanyProfile{
			CompanyName:   "CREATIVE INTERIORS",
			Logo:          "SONAL",
			Address:       "H.NO.-174, OPP. YADAV BAKERY, VILLAGE BHALSWA, JAHANGIR PURI DELHI",
			Phone:         "+919811400093, 9811200093",
			Email:         "sonatablinds@gmail.com",
			GSTNo:         "07AFFPJ4441N1Z9",
			BankName:      "KOTAK MAHINDRA BANK",
			AccountNumber: "9811200093",
			AccountName:   "CREATIVE INTERIORS",
			BranchName:    "RANA PRATAP BAGH DELHI",
		},
		Charges: ChargeConfig{
			ShowPackingCharges:      true,
			ShowPelmetCharges:       true,
			ShowCourierCharges:      true,
			ShowInstallationCharges: true,
			ShowLocalCartage:        false,
		},
	}
}
