package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/healthconnect_wallet/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// WalletRepository keeps wallets in process memory. It enforces the same
// uniqueness and version rules as the database-backed repositories.
type WalletRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Wallet
	byOwner map[string]string // WalletKey -> walletID
}

// NewWalletRepository creates an empty in-memory wallet repository.
func NewWalletRepository() *WalletRepository {
	return &WalletRepository{
		byID:    make(map[string]*domain.Wallet),
		byOwner: make(map[string]string),
	}
}

var _ portsrepo.WalletRepositoryFacade = (*WalletRepository)(nil)

func (r *WalletRepository) FindWalletByOwner(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byOwner[domain.WalletKey(ownerID, ownerType)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	w := r.byID[id].Clone()
	return &w, nil
}

func (r *WalletRepository) ListWalletsByOwnerType(ctx context.Context, ownerType domain.OwnerType) ([]domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallets := make([]domain.Wallet, 0)
	for _, w := range r.byID {
		if w.OwnerType == ownerType {
			wallets = append(wallets, w.Clone())
		}
	}
	sort.Slice(wallets, func(i, j int) bool {
		if wallets[i].CreatedAt.Equal(wallets[j].CreatedAt) {
			return wallets[i].OwnerID < wallets[j].OwnerID
		}
		return wallets[i].CreatedAt.Before(wallets[j].CreatedAt)
	})
	return wallets, nil
}

func (r *WalletRepository) CountWalletsByOwnerType(ctx context.Context, ownerType domain.OwnerType) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, w := range r.byID {
		if w.OwnerType == ownerType {
			n++
		}
	}
	return n, nil
}

func (r *WalletRepository) CreateWalletIfAbsent(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := wallet.Key()
	if id, ok := r.byOwner[key]; ok {
		existing := r.byID[id].Clone()
		return &existing, nil
	}
	if _, ok := r.byID[wallet.WalletID]; ok {
		return nil, fmt.Errorf("%w: wallet ID %s already in use", apperrors.ErrDuplicate, wallet.WalletID)
	}

	stored := wallet.Clone()
	stored.Version = 0
	r.byID[stored.WalletID] = &stored
	r.byOwner[key] = stored.WalletID

	out := stored.Clone()
	return &out, nil
}

func (r *WalletRepository) AppendTransaction(ctx context.Context, walletID string, expectedVersion int64, txn domain.Transaction, newBalance decimal.Decimal, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.byID[walletID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if w.Version != expectedVersion {
		return fmt.Errorf("%w: wallet %s is at version %d, expected %d", apperrors.ErrConflict, walletID, w.Version, expectedVersion)
	}
	if txn.Type == domain.Credit {
		if _, dup := w.CreditForPayment(txn.PaymentID); dup {
			return fmt.Errorf("%w: payment %s already credited to wallet %s", apperrors.ErrDuplicate, txn.PaymentID, walletID)
		}
	}

	w.Transactions = append(w.Transactions, txn)
	w.Balance = newBalance
	w.UpdatedAt = updatedAt
	w.Version++
	return nil
}
