// internal/storage/storage.go
package storage

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

import (
	"context"
	"loan-catalog/internal/domain"
)

// LoanReader lookups return (nil, nil) when nothing matches.
type LoanReader interface {
	List(ctx context.Context) ([]domain.LoanProduct, error)
	FindByID(ctx context.Context, id int) (*domain.LoanProduct, error)
	FindByExactName(ctx context.Context, name string) (*domain.LoanProduct, error)
	SearchByName(ctx context.Context, text string) ([]domain.LoanProduct, error)
}

type LoanWriter interface {
	Insert(ctx context.Context, product domain.LoanProduct) (domain.LoanProduct, error)
	Update(ctx context.Context, id int, patch domain.LoanProductPatch) (*domain.LoanProduct, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type LoanCatalog interface {
	LoanReader
	LoanWriter
}

// ScheduleCache stores serialized amortization schedules.
type ScheduleCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
