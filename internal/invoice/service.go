package invoice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	UpsertInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

// Service holds the invoice in progress and fronts the saved-invoice
// collection. Every mutation re-runs the aggregation, so the snapshot
// handed out is always internally consistent.
//
// The session is effectively single-user; the mutex only keeps the
// HTTP and TUI entry points from interleaving a mutation with a read.
type Service struct {
	repo Repository

	mu      sync.Mutex
	current *Invoice
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateNew starts a fresh draft invoice, unconditionally replacing
// whatever was in progress. An unsaved prior draft is discarded.
func (s *Service) CreateNew() *Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := Recompute(*New())
	s.current = &inv

	return s.current.Clone()
}

// Current returns a copy of the invoice in progress, or nil.
func (s *Service) Current() *Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	return s.current.Clone()
}

// UpdateHeader merges header changes into the current invoice and
// re-aggregates. Without a current invoice it is a no-op, not an error.
func (s *Service) UpdateHeader(u HeaderUpdate) *Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	s.current.applyHeader(u)
	s.touch()

	return s.current.Clone()
}

// AddItem validates and appends a priced line item built from the
// product snapshot and the entered dimensions. The invoice is left
// unmodified when validation fails.
func (s *Service) AddItem(product masterdata.Product, params ItemParams) (*Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoInvoice
	}

	item, err := newItem(product, params)
	if err != nil {
		return nil, err
	}

	s.current.Items = append(s.current.Items, item)
	s.touch()

	return s.current.Clone(), nil
}

// UpdateItem merges changes into the item with the given id, repricing
// it in place. Unknown ids are surfaced as ErrItemNotFound.
func (s *Service) UpdateItem(id uuid.UUID, u ItemUpdate) (*Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoInvoice
	}

	for i, it := range s.current.Items {
		if it.ID != id {
			continue
		}

		s.current.Items[i] = it.applied(u)
		s.touch()

		return s.current.Clone(), nil
	}

	return nil, ErrItemNotFound
}

// RemoveItem deletes the item with the given id. Removal is idempotent:
// an unknown id leaves the invoice untouched and returns no error.
func (s *Service) RemoveItem(id uuid.UUID) *Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	items := s.current.Items[:0]

	for _, it := range s.current.Items {
		if it.ID != id {
			items = append(items, it)
		}
	}

	s.current.Items = items
	s.touch()

	return s.current.Clone()
}

// Save upserts the current invoice into the saved collection, keyed by
// id, so saving twice replaces rather than duplicates. The in-memory
// status only advances to saved once the repository confirms; a failed
// persist leaves the invoice exactly as it was.
func (s *Service) Save(ctx context.Context) (*Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoInvoice
	}

	candidate := s.current.Clone()
	candidate.Status = StatusSaved
	candidate.UpdatedAt = time.Now()

	if err := s.repo.UpsertInvoice(ctx, candidate); err != nil {
		return nil, &PersistenceError{Op: "saving invoice", Err: err}
	}

	s.current = candidate

	return s.current.Clone(), nil
}

// Load replaces the current invoice with a copy of the saved one.
func (s *Service) Load(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = inv.Clone()

	return s.current.Clone(), nil
}

// Delete removes the saved invoice. When it is also the one in
// progress, the session is cleared.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteInvoice(ctx, id); err != nil {
		return &PersistenceError{Op: "deleting invoice", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.ID == id {
		s.current = nil
	}

	return nil
}

// Saved lists the saved-invoice collection.
func (s *Service) Saved(ctx context.Context) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

// Get fetches a single saved invoice without touching the session.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

// touch re-aggregates and stamps the modification time. Callers hold the mutex.
func (s *Service) touch() {
	inv := Recompute(*s.current)
	inv.UpdatedAt = time.Now()
	s.current = &inv
}
