// internal/service/loan.go
package service

import (
	"context"
	"fmt"
	"loan-catalog/internal/domain"
	"loan-catalog/internal/storage"
)

// LoanService turns catalog lookups that come back empty into NotFoundError.
type LoanService struct {
	store storage.LoanCatalog
}

func NewLoanService(store storage.LoanCatalog) *LoanService {
	return &LoanService{store: store}
}

// List returns the whole catalog, or only the products whose name contains
// nameFilter when it is set.
func (s *LoanService) List(ctx context.Context, nameFilter string) ([]domain.LoanProduct, error) {
	if nameFilter != "" {
		return s.Search(ctx, nameFilter)
	}
	loans, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return loans, nil
}

func (s *LoanService) Get(ctx context.Context, id int) (domain.LoanProduct, error) {
	loan, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.LoanProduct{}, fmt.Errorf("find loan %d: %w", id, err)
	}
	if loan == nil {
		return domain.LoanProduct{}, domain.LoanIDNotFound(id)
	}
	return *loan, nil
}

// Create inserts the product and returns the catalog as it stands afterwards.
func (s *LoanService) Create(ctx context.Context, product domain.LoanProduct) ([]domain.LoanProduct, error) {
	if _, err := s.store.Insert(ctx, product); err != nil {
		return nil, fmt.Errorf("insert loan: %w", err)
	}
	return s.List(ctx, "")
}

func (s *LoanService) Update(ctx context.Context, id int, patch domain.LoanProductPatch) (domain.LoanProduct, error) {
	loan, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return domain.LoanProduct{}, fmt.Errorf("update loan %d: %w", id, err)
	}
	if loan == nil {
		return domain.LoanProduct{}, domain.LoanIDNotFound(id)
	}
	return *loan, nil
}

// Delete returns the confirmation message shown to the client.
func (s *LoanService) Delete(ctx context.Context, id int) (string, error) {
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return "", fmt.Errorf("delete loan %d: %w", id, err)
	}
	if !ok {
		return "", domain.LoanIDNotFound(id)
	}
	return fmt.Sprintf("Loan with id %d deleted successfully", id), nil
}

func (s *LoanService) Search(ctx context.Context, text string) ([]domain.LoanProduct, error) {
	loans, err := s.store.SearchByName(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("search loans: %w", err)
	}
	if len(loans) == 0 {
		return nil, domain.NoLoanMatching(text)
	}
	return loans, nil
}
