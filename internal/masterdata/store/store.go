package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
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

func (s *Store) CreateVendor(ctx context.Context, v *masterdata.Vendor) error {
	query := `
		INSERT INTO vendors (name, contact, gst_no, email, address, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, v.Name, v.Contact, v.GSTNo, v.Email, v.Address).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("creating vendor: %w", err)
	}

	return nil
}

func (s *Store) UpdateVendor(ctx context.Context, v *masterdata.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $1, contact = $2, gst_no = $3, email = $4, address = $5
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query, v.Name, v.Contact, v.GSTNo, v.Email, v.Address, v.ID)
	if err != nil {
		return fmt.Errorf("updating vendor: %w", err)
	}

	return checkFound(res)
}

func (s *Store) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM vendors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting vendor: %w", err)
	}

	return nil
}

func (s *Store) ListVendors(ctx context.Context) ([]*masterdata.Vendor, error) {
	query := `SELECT id, name, contact, gst_no, email, address FROM vendors ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing vendors: %w", err)
	}
	defer rows.Close()

	var vendors []*masterdata.Vendor

	for rows.Next() {
		var v masterdata.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Contact, &v.GSTNo, &v.Email, &v.Address); err != nil {
			return nil, fmt.Errorf("scanning vendor: %w", err)
		}

		vendors = append(vendors, &v)
	}

	return vendors, rows.Err()
}

func (s *Store) CreateParty(ctx context.Context, p *masterdata.Party) error {
	query := `
		INSERT INTO parties (name, contact_person, gst_no, email, address, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, p.Name, p.ContactPerson, p.GSTNo, p.Email, p.Address).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("creating party: %w", err)
	}

	return nil
}

func (s *Store) UpdateParty(ctx context.Context, p *masterdata.Party) error {
	query := `
		UPDATE parties
		SET name = $1, contact_person = $2, gst_no = $3, email = $4, address = $5
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query, p.Name, p.ContactPerson, p.GSTNo, p.Email, p.Address, p.ID)
	if err != nil {
		return fmt.Errorf("updating party: %w", err)
	}

	return checkFound(res)
}

func (s *Store) DeleteParty(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM parties WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting party: %w", err)
	}

	return nil
}

func (s *Store) ListParties(ctx context.Context) ([]*masterdata.Party, error) {
	query := `SELECT id, name, contact_person, gst_no, email, address FROM parties ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing parties: %w", err)
	}
	defer rows.Close()

	var parties []*masterdata.Party

	for rows.Next() {
		var p masterdata.Party
		if err := rows.Scan(&p.ID, &p.Name, &p.ContactPerson, &p.GSTNo, &p.Email, &p.Address); err != nil {
			return nil, fmt.Errorf("scanning party: %w", err)
		}

		parties = append(parties, &p)
	}

	return parties, rows.Err()
}

const selectProductColumns = `id, name, shade, shade_color, operation_type, price_per_sq_ft, is_motor_item`

func scanProduct(s scanner) (*masterdata.Product, error) {
	var p masterdata.Product
	if err := s.Scan(&p.ID, &p.Name, &p.Shade, &p.ShadeColor, &p.OperationType, &p.PricePerSqFt, &p.IsMotorItem); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *masterdata.Product) error {
	query := `
		INSERT INTO products (name, shade, shade_color, operation_type, price_per_sq_ft, is_motor_item, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Name, p.Shade, p.ShadeColor, p.OperationType, p.PricePerSqFt, p.IsMotorItem,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *masterdata.Product) error {
	query := `
		UPDATE products
		SET name = $1, shade = $2, shade_color = $3, operation_type = $4, price_per_sq_ft = $5, is_motor_item = $6
		WHERE id = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Name, p.Shade, p.ShadeColor, p.OperationType, p.PricePerSqFt, p.IsMotorItem, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	return checkFound(res)
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	return nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*masterdata.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, masterdata.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]*masterdata.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products ORDER BY name, shade`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*masterdata.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

func checkFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if n == 0 {
		return masterdata.ErrNotFound
	}

	return nil
}
