package services

import (
	"context"

	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReaderSvc defines read operations for wallet data
type WalletReaderSvc interface {
	// GetBalance returns the wallet balance, or zero when the owner has no wallet.
	GetBalance(ctx context.Context, ownerID string, ownerType domain.OwnerType) (decimal.Decimal, error)

	// ListWalletsByType retrieves every wallet of the given owner type.
	ListWalletsByType(ctx context.Context, ownerType domain.OwnerType) ([]domain.Wallet, error)

	// GetStatistics summarises wallet counts and balances per owner type.
	GetStatistics(ctx context.Context) (*domain.WalletStatistics, error)

	// GetEarnings summarises what an owner has earned without creating a wallet.
	GetEarnings(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.EarningsSummary, error)

	// ListTransactions returns the wallet's transactions newest first, one page at a time.
	ListTransactions(ctx context.Context, ownerID string, ownerType domain.OwnerType, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// WalletWriterSvc defines write operations for wallet data
type WalletWriterSvc interface {
	// GetOrCreateWallet returns the owner's wallet, creating an empty one if needed.
	GetOrCreateWallet(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.Wallet, error)

	// AppendTransaction applies txn to the owner's wallet, creating the wallet if needed.
	AppendTransaction(ctx context.Context, ownerID string, ownerType domain.OwnerType, txn domain.Transaction) (*domain.Wallet, error)

	// ProcessWithdrawal takes amount out of the wallet if it is positive and covered by the balance.
	ProcessWithdrawal(ctx context.Context, ownerID string, ownerType domain.OwnerType, amount decimal.Decimal, destination string) (*domain.WithdrawalResult, error)
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
