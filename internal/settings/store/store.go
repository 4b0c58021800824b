package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/settings"
)

// Store keeps the settings in a single fixed row; saving upserts it.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const settingsColumns = `
	company_name, logo, address, phone, email, gst_no,
	bank_name, account_number, account_name, branch_name,
	show_packing_charges, show_pelmet_charges, show_courier_charges,
	show_installation_charges, show_local_cartage, pelmet_gst
`

func (s *Store) GetSettings(ctx context.Context) (*settings.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE id = 1`

	var st settings.Settings

	err := s.db.QueryRowContext(ctx, query).Scan(
		&st.Company.CompanyName, &st.Company.Logo, &st.Company.Address,
		&st.Company.Phone, &st.Company.Email, &st.Company.GSTNo,
		&st.Company.BankName, &st.Company.AccountNumber, &st.Company.AccountName, &st.Company.BranchName,
		&st.Charges.ShowPackingCharges, &st.Charges.ShowPelmetCharges, &st.Charges.ShowCourierCharges,
		&st.Charges.ShowInstallationCharges, &st.Charges.ShowLocalCartage, &st.Charges.PelmetGST,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, settings.ErrNotSaved
		}

		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return &st, nil
}

func (s *Store) SaveSettings(ctx context.Context, st *settings.Settings) error {
	query := `
		INSERT INTO settings (id, ` + settingsColumns + `, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW())
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			logo = EXCLUDED.logo,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			gst_no = EXCLUDED.gst_no,
			bank_name = EXCLUDED.bank_name,
			account_number = EXCLUDED.account_number,
			account_name = EXCLUDED.account_name,
			branch_name = EXCLUDED.branch_name,
			show_packing_charges = EXCLUDED.show_packing_charges,
			show_pelmet_charges = EXCLUDED.show_pelmet_charges,
			show_courier_charges = EXCLUDED.show_courier_charges,
			show_installation_charges = EXCLUDED.show_installation_charges,
			show_local_cartage = EXCLUDED.show_local_cartage,
			pelmet_gst = EXCLUDED.pelmet_gst,
			updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query,
		st.Company.CompanyName, st.Company.Logo, st.Company.Address,
		st.Company.Phone, st.Company.Email, st.Company.GSTNo,
		st.Company.BankName, st.Company.AccountNumber, st.Company.AccountName, st.Company.BranchName,
		st.Charges.ShowPackingCharges, st.Charges.ShowPelmetCharges, st.Charges.ShowCourierCharges,
		st.Charges.ShowInstallationCharges, st.Charges.ShowLocalCartage, st.Charges.PelmetGST,
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	return nil
}
