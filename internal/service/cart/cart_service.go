package cart

import (
	"context"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/shopspring/decimal"
)

type CartUseCase interface {
	List(ctx context.Context, caller domain.Caller) ([]domain.CartLine, error)
	Add(ctx context.Context, caller domain.Caller, input AddInput) (*domain.CartItem, error)
	Update(ctx context.Context, caller domain.Caller, itemID int64, sel domain.Selection) (*domain.CartItem, error)
	Remove(ctx context.Context, caller domain.Caller, itemID int64) error
	Clear(ctx context.Context, caller domain.Caller) (int64, error)
	Count(ctx context.Context, caller domain.Caller) (int, error)
	Total(ctx context.Context, caller domain.Caller) (decimal.Decimal, error)
	Summary(ctx context.Context, caller domain.Caller) (*Summary, error)
}

type AddInput struct {
	PackageID int64
	domain.Selection
}

type Summary struct {
	Lines []domain.CartLine `json:"lines"`
	Count int               `json:"count"`
	Total decimal.Decimal   `json:"total"`
}

type CartService struct {
	items    repository.CartRepository
	packages repository.PackageRepository
}

func NewCartService(items repository.CartRepository, packages repository.PackageRepository) *CartService {
	return &CartService{items: items, packages: packages}
}

func (s *CartService) List(ctx context.Context, caller domain.Caller) ([]domain.CartLine, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.items.ListLines(ctx, caller.UserID)
}

// Add puts the package into the caller's cart. Adding a package that is
// already there overwrites the existing selection.
func (s *CartService) Add(ctx context.Context, caller domain.Caller, input AddInput) (*domain.CartItem, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Selection.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.packages.GetByID(ctx, input.PackageID); err != nil {
		return nil, err
	}

	item := &domain.CartItem{
		UserID:            caller.UserID,
		PackageID:         input.PackageID,
		SelectedStartDate: input.StartDate,
		SelectedEndDate:   input.EndDate,
		NumberOfGuests:    input.NumberOfGuests,
		SpecialRequests:   input.SpecialRequests,
	}
	if err := s.items.Upsert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) Update(ctx context.Context, caller domain.Caller, itemID int64, sel domain.Selection) (*domain.CartItem, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	item := &domain.CartItem{
		ID:                itemID,
		UserID:            caller.UserID,
		SelectedStartDate: sel.StartDate,
		SelectedEndDate:   sel.EndDate,
		NumberOfGuests:    sel.NumberOfGuests,
		SpecialRequests:   sel.SpecialRequests,
	}
	if err := s.items.UpdateForUser(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) Remove(ctx context.Context, caller domain.Caller, itemID int64) error {
	if !caller.Authenticated() {
		return domain.ErrUnauthorized
	}
	return s.items.DeleteForUser(ctx, itemID, caller.UserID)
}

// Clear returns the number of removed items.
func (s *CartService) Clear(ctx context.Context, caller domain.Caller) (int64, error) {
	if !caller.Authenticated() {
		return 0, domain.ErrUnauthorized
	}
	return s.items.Clear(ctx, caller.UserID)
}

func (s *CartService) Count(ctx context.Context, caller domain.Caller) (int, error) {
	if !caller.Authenticated() {
		return 0, domain.ErrUnauthorized
	}
	return s.items.Count(ctx, caller.UserID)
}

// Total sums the same line totals List returns.
func (s *CartService) Total(ctx context.Context, caller domain.Caller) (decimal.Decimal, error) {
	lines, err := s.List(ctx, caller)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.CartTotal(lines), nil
}

func (s *CartService) Summary(ctx context.Context, caller domain.Caller) (*Summary, error) {
	lines, err := s.List(ctx, caller)
	if err != nil {
		return nil, err
	}
	return &Summary{Lines: lines, Count: len(lines), Total: domain.CartTotal(lines)}, nil
}

var _ CartUseCase = (*CartService)(nil)
