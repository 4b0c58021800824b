package masterdata

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=masterdata
type Repository interface {
	CreateVendor(ctx context.Context, v *Vendor) error
	UpdateVendor(ctx context.Context, v *Vendor) error
	DeleteVendor(ctx context.Context, id uuid.UUID) error
	ListVendors(ctx context.Context) ([]*Vendor, error)

	CreateParty(ctx context.Context, p *Party) error
	UpdateParty(ctx context.Context, p *Party) error
	DeleteParty(ctx context.Context, id uuid.UUID) error
	ListParties(ctx context.Context) ([]*Party, error)

	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddVendor(ctx context.Context, v *Vendor) error {
	return s.repo.CreateVendor(ctx, v)
}

func (s *Service) UpdateVendor(ctx context.Context, v *Vendor) error {
	return s.repo.UpdateVendor(ctx, v)
}

func (s *Service) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteVendor(ctx, id)
}

func (s *Service) Vendors(ctx context.Context) ([]*Vendor, error) {
	return s.repo.ListVendors(ctx)
}

func (s *Service) AddParty(ctx context.Context, p *Party) error {
	return s.repo.CreateParty(ctx, p)
}

func (s *Service) UpdateParty(ctx context.Context, p *Party) error {
	return s.repo.UpdateParty(ctx, p)
}

func (s *Service) DeleteParty(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteParty(ctx, id)
}

func (s *Service) Parties(ctx context.Context) ([]*Party, error) {
	return s.repo.ListParties(ctx)
}

func (s *Service) AddProduct(ctx context.Context, p *Product) error {
	return s.repo.CreateProduct(ctx, p)
}

func (s *Service) UpdateProduct(ctx context.Context, p *Product) error {
	return s.repo.UpdateProduct(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *Service) Product(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) Products(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

// ImportProducts creates every product in the batch. Meant for price-list
// imports; rows are created individually so a bad row reports its position.
func (s *Service) ImportProducts(ctx context.Context, products []*Product) (int, error) {
	for i, p := range products {
		if err := s.repo.CreateProduct(ctx, p); err != nil {
			return i, err
		}
	}

	return len(products), nil
}
