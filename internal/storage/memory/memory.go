// internal/storage/memory/memory.go
package memory

import (
	"context"
	"loan-catalog/internal/domain"
	"log/slog"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Catalog is the in-process loan catalog. Reads share the lock; insert,
// update and delete take it exclusively. Products leave the catalog as copies.
type Catalog struct {
	mu     sync.RWMutex
	loans  []domain.LoanProduct
	nextID int
}

func NewCatalog(seed []domain.LoanProduct) *Catalog {
	c := &Catalog{loans: make([]domain.LoanProduct, 0, len(seed)), nextID: 1}
	for _, p := range seed {
		c.loans = append(c.loans, p)
		if p.ID >= c.nextID {
			c.nextID = p.ID + 1
		}
	}
	return c
}

// DefaultProducts is the catalog the API starts with.
func DefaultProducts() []domain.LoanProduct {
	return []domain.LoanProduct{
		product(1, "Libranza", 5_000_000, 50_000_000, "0.165"),
		product(2, "Hipotecario Vivienda", 20_000_000, 500_000_000, "0.12"),
		product(3, "Crédito de Consumo", 1_000_000, 25_000_000, "0.21"),
		product(4, "Crédito Vehicular", 15_000_000, 150_000_000, "0.15"),
		product(5, "Crédito Educativo", 2_000_000, 60_000_000, "0.09"),
		product(6, "Crédito de Libre Inversión", 1_000_000, 40_000_000, "0.24"),
		product(7, "Microcrédito para Negocio", 500_000, 25_000_000, "0.30"),
	}
}

func product(id int, name string, minAmount, maxAmount int64, rate string) domain.LoanProduct {
	return domain.LoanProduct{
		ID:                 id,
		ProductName:        name,
		MinimumAmount:      decimal.NewFromInt(minAmount),
		MaximumAmount:      decimal.NewFromInt(maxAmount),
		AnnualInterestRate: decimal.RequireFromString(rate),
	}
}

func (c *Catalog) List(ctx context.Context) ([]domain.LoanProduct, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.LoanProduct, len(c.loans))
	copy(out, c.loans)
	return out, nil
}

func (c *Catalog) FindByID(ctx context.Context, id int) (*domain.LoanProduct, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		p := c.loans[i]
		return &p, nil
	}
	return nil, nil
}

func (c *Catalog) FindByExactName(ctx context.Context, name string) (*domain.LoanProduct, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.loans {
		if p.ProductName == name {
			return &p, nil
		}
	}
	return nil, nil
}

// SearchByName is a case-insensitive substring match on the product name.
func (c *Catalog) SearchByName(ctx context.Context, text string) ([]domain.LoanProduct, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(text)
	var out []domain.LoanProduct
	for _, p := range c.loans {
		if strings.Contains(strings.ToLower(p.ProductName), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Insert assigns the next id; ids are never handed out twice, even after a delete.
func (c *Catalog) Insert(ctx context.Context, p domain.LoanProduct) (domain.LoanProduct, error) {
	if err := p.Validate(); err != nil {
		return domain.LoanProduct{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p.ID = c.nextID
	c.nextID++
	c.loans = append(c.loans, p)

	slog.Debug("Loan product inserted", "loan_id", p.ID, "product", p.ProductName)
	return p, nil
}

func (c *Catalog) Update(ctx context.Context, id int, patch domain.LoanProductPatch) (*domain.LoanProduct, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	updated := patch.Apply(c.loans[i])
	updated.ID = id
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	c.loans[i] = updated

	slog.Debug("Loan product updated", "loan_id", id)
	return &updated, nil
}

func (c *Catalog) Delete(ctx context.Context, id int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}
	c.loans = append(c.loans[:i], c.loans[i+1:]...)

	slog.Debug("Loan product deleted", "loan_id", id)
	return true, nil
}

// indexOf expects the caller to hold mu.
func (c *Catalog) indexOf(id int) int {
	for i, p := range c.loans {
		if p.ID == id {
			return i
		}
	}
	return -1
}
