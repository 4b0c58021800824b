// Package store persists saved invoices in Postgres. Line items are
// stored with their snapshotted product attributes so reloading an old
// invoice reproduces its original totals even after catalog edits.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectInvoiceColumns = `
	id, vendor_id, party_id, invoice_number, date, gst_no,
	discount_percentage, packing_charges, pelmet_charges, courier_charges, installation_charges,
	gst_enabled, gst_percentage,
	total_material, total_sq_ft, discount_amount, total_amount_before_tax, gst_amount,
	grand_total, total_payment, status, created_at, updated_at
`

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var vendorID, partyID uuid.NullUUID

	var statusStr string

	if err := s.Scan(
		&inv.ID, &vendorID, &partyID, &inv.InvoiceNumber, &inv.Date, &inv.GSTNo,
		&inv.DiscountPercentage, &inv.PackingCharges, &inv.PelmetCharges, &inv.CourierCharges, &inv.InstallationCharges,
		&inv.GSTEnabled, &inv.GSTPercentage,
		&inv.TotalMaterial, &inv.TotalSqFt, &inv.DiscountAmount, &inv.TotalAmountBeforeTax, &inv.GSTAmount,
		&inv.GrandTotal, &inv.TotalPayment, &statusStr, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.VendorID = vendorID.UUID
	inv.PartyID = partyID.UUID
	inv.Status = invoice.Status(statusStr)

	return &inv, nil
}

const selectItemColumns = `
	id, invoice_id, product_id, product_name, shade, shade_color, operation_type,
	quantity, width_inches, height_inches, width_cm, height_cm, unit,
	sq_ft, price_per_sq_ft, amount
`

func scanItem(s scanner) (invoice.Item, uuid.UUID, error) {
	var (
		it        invoice.Item
		invoiceID uuid.UUID
		unitStr   string
	)

	if err := s.Scan(
		&it.ID, &invoiceID, &it.ProductID, &it.ProductName, &it.Shade, &it.ShadeColor, &it.OperationType,
		&it.Quantity, &it.WidthInches, &it.HeightInches, &it.WidthCm, &it.HeightCm, &unitStr,
		&it.SqFt, &it.PricePerSqFt, &it.Amount,
	); err != nil {
		return invoice.Item{}, uuid.Nil, err
	}

	it.Unit = pricing.Unit(unitStr)

	return it, invoiceID, nil
}

// UpsertInvoice writes the invoice and its items, replacing any prior
// snapshot with the same id. Header and items go in one database
// transaction; the item rows are rewritten wholesale so their stored
// order always matches the invoice's insertion order.
func (s *Store) UpsertInvoice(ctx context.Context, inv *invoice.Invoice) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO invoices (` + selectInvoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (id) DO UPDATE SET
			vendor_id = EXCLUDED.vendor_id,
			party_id = EXCLUDED.party_id,
			invoice_number = EXCLUDED.invoice_number,
			date = EXCLUDED.date,
			gst_no = EXCLUDED.gst_no,
			discount_percentage = EXCLUDED.discount_percentage,
			packing_charges = EXCLUDED.packing_charges,
			pelmet_charges = EXCLUDED.pelmet_charges,
			courier_charges = EXCLUDED.courier_charges,
			installation_charges = EXCLUDED.installation_charges,
			gst_enabled = EXCLUDED.gst_enabled,
			gst_percentage = EXCLUDED.gst_percentage,
			total_material = EXCLUDED.total_material,
			total_sq_ft = EXCLUDED.total_sq_ft,
			discount_amount = EXCLUDED.discount_amount,
			total_amount_before_tax = EXCLUDED.total_amount_before_tax,
			gst_amount = EXCLUDED.gst_amount,
			grand_total = EXCLUDED.grand_total,
			total_payment = EXCLUDED.total_payment,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`

	_, err = tx.ExecContext(ctx, query,
		inv.ID, nullUUID(inv.VendorID), nullUUID(inv.PartyID), inv.InvoiceNumber, inv.Date, inv.GSTNo,
		inv.DiscountPercentage, inv.PackingCharges, inv.PelmetCharges, inv.CourierCharges, inv.InstallationCharges,
		inv.GSTEnabled, inv.GSTPercentage,
		inv.TotalMaterial, inv.TotalSqFt, inv.DiscountAmount, inv.TotalAmountBeforeTax, inv.GSTAmount,
		inv.GrandTotal, inv.TotalPayment, inv.Status, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting invoice: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, inv.ID); err != nil {
		return fmt.Errorf("clearing items: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (` + selectItemColumns + `, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	for i, it := range inv.Items {
		_, err := tx.ExecContext(ctx, itemQuery,
			it.ID, inv.ID, it.ProductID, it.ProductName, it.Shade, it.ShadeColor, it.OperationType,
			it.Quantity, it.WidthInches, it.HeightInches, it.WidthCm, it.HeightCm, it.Unit,
			it.SqFt, it.PricePerSqFt, it.Amount, i,
		)
		if err != nil {
			return fmt.Errorf("inserting item %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing invoice: %w", err)
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	items, err := s.listItems(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.Items = items

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*invoice.Invoice)

	var invs []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		byID[inv.ID] = inv

		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}

	itemRows, err := s.db.QueryContext(ctx,
		`SELECT `+selectItemColumns+` FROM invoice_items ORDER BY invoice_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		it, invoiceID, err := scanItem(itemRows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		if inv, ok := byID[invoiceID]; ok {
			inv.Items = append(inv.Items, it)
		}
	}

	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return invs, nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	// invoice_items rows go with it via ON DELETE CASCADE.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

func (s *Store) listItems(ctx context.Context, invoiceID uuid.UUID) ([]invoice.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM invoice_items WHERE invoice_id = $1 ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []invoice.Item

	for rows.Next() {
		it, _, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}
