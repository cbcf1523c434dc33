package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReader defines read operations for wallet data
type WalletReader interface {
	// FindWalletByOwner retrieves the wallet of an owner, including its transaction log.
	// Returns apperrors.ErrNotFound when the owner has no wallet yet.
	FindWalletByOwner(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.Wallet, error)

	// ListWalletsByOwnerType retrieves every wallet of the given owner type.
	ListWalletsByOwnerType(ctx context.Context, ownerType domain.OwnerType) ([]domain.Wallet, error)

	// CountWalletsByOwnerType returns the number of wallets of the given owner type.
	CountWalletsByOwnerType(ctx context.Context, ownerType domain.OwnerType) (int64, error)
}

// WalletWriter defines write operations for wallet data
type WalletWriter interface {
	// CreateWalletIfAbsent inserts wallet unless one already exists for its
	// (ownerID, ownerType) and returns whichever wallet is stored.
	CreateWalletIfAbsent(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error)

	// AppendTransaction stores txn and newBalance as one unit, provided the
	// stored wallet is still at expectedVersion. It returns apperrors.ErrConflict
	// on a version mismatch and apperrors.ErrDuplicate when txn is a CREDIT for a
	// payment the wallet was already credited for.
	AppendTransaction(ctx context.Context, walletID string, expectedVersion int64, txn domain.Transaction, newBalance decimal.Decimal, updatedAt time.Time) error
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
