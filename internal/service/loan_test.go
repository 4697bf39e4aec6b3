package service

import (
	"context"
	"errors"
	"testing"

	"loan-catalog/internal/domain"
	"loan-catalog/internal/storage/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func libranza() domain.LoanProduct {
	return domain.LoanProduct{
		ID:                 1,
		ProductName:        "Libranza",
		MinimumAmount:      decimal.NewFromInt(5_000_000),
		MaximumAmount:      decimal.NewFromInt(50_000_000),
		AnnualInterestRate: decimal.RequireFromString("0.165"),
	}
}

func TestLoanService_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLoanCatalog(ctrl)
	store.EXPECT().List(gomock.Any()).Return([]domain.LoanProduct{libranza()}, nil)

	loans, err := NewLoanService(store).List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, loans, 1)
}

func TestLoanService_ListFilteredNoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLoanCatalog(ctrl)
	store.EXPECT().SearchByName(gomock.Any(), "zzz").Return(nil, nil)

	_, err := NewLoanService(store).List(context.Background(), "zzz")

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "No loan found matching name 'zzz'", nf.Error())
}

func TestLoanService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLoanCatalog(ctrl)
	p := libranza()
	store.EXPECT().FindByID(gomock.Any(), 1).Return(&p, nil)
	store.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)

	svc := NewLoanService(store)

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Libranza", got.ProductName)

	_, err = svc.Get(context.Background(), 9)
	assert.EqualError(t, err, "Loan with id 9 not found")
}

func TestLoanService_GetStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLoanCatalog(ctrl)
	boom := errors.New("boom")
	store.EXPECT().FindByID(gomock.Any(), 1).Return(nil, boom)

	_, err := NewLoanService(store).Get(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestLoanService_CreateReturnsListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLoanCatalog(ctrl)

	newProduct := domain.LoanProduct{ProductName: "Leasing"}
	created := newProduct
	created.ID = 8

	gomock.InOrder(
		store.EXPECT().Insert(gomock.Any(), newProduct).Return(created, nil),
		store.EXPECT().List(gomock.Any()).Return([]domain.LoanProduct{libranza(), created}, nil),
	)

	loans, err := NewLoanService(store).Create(context.Background(), newProduct)
	require.NoError(t, err)
	require.Len(t, loans, 2)
	assert.Equal(t, 8, loans[1].ID)
}

func TestLoanService_CreateInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLoanCatalog(ctrl)
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(domain.LoanProduct{}, &domain.ValidationError{Detail: "minimumAmount must not exceed maximumAmount"})

	_, err := NewLoanService(store).Create(context.Background(), domain.LoanProduct{})

	var vErr *domain.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestLoanService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLoanCatalog(ctrl)
	name := "Libranza Plus"
	patch := domain.LoanProductPatch{ProductName: &name}
	updated := libranza()
	updated.ProductName = name

	store.EXPECT().Update(gomock.Any(), 1, patch).Return(&updated, nil)
	store.EXPECT().Update(gomock.Any(), 2, patch).Return(nil, nil)

	svc := NewLoanService(store)

	got, err := svc.Update(context.Background(), 1, patch)
	require.NoError(t, err)
	assert.Equal(t, "Libranza Plus", got.ProductName)

	_, err = svc.Update(context.Background(), 2, patch)
	var nf *domain.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestLoanService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLoanCatalog(ctrl)
	store.EXPECT().Delete(gomock.Any(), 3).Return(true, nil)
	store.EXPECT().Delete(gomock.Any(), 4).Return(false, nil)

	svc := NewLoanService(store)

	msg, err := svc.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Loan with id 3 deleted successfully", msg)

	_, err = svc.Delete(context.Background(), 4)
	assert.EqualError(t, err, "Loan with id 4 not found")
}

func TestLoanService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLoanCatalog(ctrl)
	store.EXPECT().SearchByName(gomock.Any(), "libr").Return([]domain.LoanProduct{libranza()}, nil)

	loans, err := NewLoanService(store).Search(context.Background(), "libr")
	require.NoError(t, err)
	assert.Len(t, loans, 1)
}
