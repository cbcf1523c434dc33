package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockWalletRepository is a mock type for the WalletRepositoryFacade interface
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) FindWalletByOwner(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID, ownerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListWalletsByOwnerType(ctx context.Context, ownerType domain.OwnerType) ([]domain.Wallet, error) {
	args := m.Called(ctx, ownerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) CountWalletsByOwnerType(ctx context.Context, ownerType domain.OwnerType) (int64, error) {
	args := m.Called(ctx, ownerType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) CreateWalletIfAbsent(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) AppendTransaction(ctx context.Context, walletID string, expectedVersion int64, txn domain.Transaction, newBalance decimal.Decimal, updatedAt time.Time) error {
	args := m.Called(ctx, walletID, expectedVersion, txn, newBalance, updatedAt)
	return args.Error(0)
}

// MockWalletWriterSvc is a mock type for the WalletWriterSvc interface
type MockWalletWriterSvc struct {
	mock.Mock
}

func (m *MockWalletWriterSvc) GetOrCreateWallet(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID, ownerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletWriterSvc) AppendTransaction(ctx context.Context, ownerID string, ownerType domain.OwnerType, txn domain.Transaction) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID, ownerType, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletWriterSvc) ProcessWithdrawal(ctx context.Context, ownerID string, ownerType domain.OwnerType, amount decimal.Decimal, destination string) (*domain.WithdrawalResult, error) {
	args := m.Called(ctx, ownerID, ownerType, amount, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawalResult), args.Error(1)
}
