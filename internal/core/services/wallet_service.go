package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/healthconnect_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/healthconnect_wallet/internal/core/ports/services"
	"github.com/SscSPs/healthconnect_wallet/internal/platform/lock"
	"github.com/SscSPs/healthconnect_wallet/internal/platform/metrics"
	"github.com/SscSPs/healthconnect_wallet/internal/utils/accounting"
	"github.com/SscSPs/healthconnect_wallet/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultAppendMaxAttempts = 3
	defaultTransactionsLimit = 20
	maxTransactionsLimit     = 100
)

// walletService implements the WalletSvcFacade interface
type walletService struct {
	BaseService
	walletRepo       portsrepo.WalletRepositoryFacade
	locker           lock.Locker
	maxAttempts      int
	now              func() time.Time
	newWalletID      func() string
	newTransactionID func() string
}

// WalletServiceOption is a functional option for configuring the wallet service
type WalletServiceOption func(*walletService)

// WithLocker sets the per-wallet lock used to serialize writers.
func WithLocker(l lock.Locker) WalletServiceOption {
	return func(s *walletService) {
		s.locker = l
	}
}

// WithAppendMaxAttempts bounds how often an append is retried after a version conflict.
func WithAppendMaxAttempts(n int) WalletServiceOption {
	return func(s *walletService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) WalletServiceOption {
	return func(s *walletService) {
		s.now = now
	}
}

// WithIDGenerators overrides how wallet and transaction IDs are generated.
func WithIDGenerators(walletID, transactionID func() string) WalletServiceOption {
	return func(s *walletService) {
		if walletID != nil {
			s.newWalletID = walletID
		}
		if transactionID != nil {
			s.newTransactionID = transactionID
		}
	}
}

// NewWalletService creates a new wallet service with the provided options
func NewWalletService(repo portsrepo.WalletRepositoryFacade, options ...WalletServiceOption) portssvc.WalletSvcFacade {
	svc := &walletService{
		walletRepo:       repo,
		locker:           lock.NewLocalLocker(),
		maxAttempts:      defaultAppendMaxAttempts,
		now:              func() time.Time { return time.Now().UTC() },
		newWalletID:      uuid.NewString,
		newTransactionID: newTimeOrderedID,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure walletService implements the WalletSvcFacade interface
var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// newTimeOrderedID returns a UUIDv7 so transaction IDs sort by creation time.
func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func validateOwner(ownerID string, ownerType domain.OwnerType) error {
	if strings.TrimSpace(ownerID) == "" {
		return fmt.Errorf("%w: owner ID is required", apperrors.ErrValidation)
	}
	if !ownerType.Valid() {
		return fmt.Errorf("%w: unknown owner type %q", apperrors.ErrValidation, ownerType)
	}
	return nil
}

func (s *walletService) GetOrCreateWallet(ctx context.Context, ownerID string, ownerType domain.OwnerType) (wallet *domain.Wallet, err error) {
	done := metrics.ObserveOp("get_or_create")
	defer func() { done(err) }()

	if err := validateOwner(ownerID, ownerType); err != nil {
		return nil, err
	}

	wallet, err = s.walletRepo.FindWalletByOwner(ctx, ownerID, ownerType)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find wallet",
			slog.String("owner_id", ownerID),
			slog.String("owner_type", string(ownerType)))
		return nil, err
	}

	fresh := domain.NewWallet(s.newWalletID(), ownerID, ownerType, s.now())
	wallet, err = s.walletRepo.CreateWalletIfAbsent(ctx, fresh)
	if err != nil {
		s.LogError(ctx, err, "Failed to create wallet",
			slog.String("owner_id", ownerID),
			slog.String("owner_type", string(ownerType)))
		return nil, err
	}

	if wallet.WalletID == fresh.WalletID {
		s.LogInfo(ctx, "Wallet created",
			slog.String("wallet_id", wallet.WalletID),
			slog.String("owner_id", ownerID),
			slog.String("owner_type", string(ownerType)))
	}
	return wallet, nil
}

func (s *walletService) AppendTransaction(ctx context.Context, ownerID string, ownerType domain.OwnerType, txn domain.Transaction) (wallet *domain.Wallet, err error) {
	done := metrics.ObserveOp("append_" + strings.ToLower(string(txn.Type)))
	defer func() { done(err) }()

	if err := validateOwner(ownerID, ownerType); err != nil {
		return nil, err
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}
	if txn.TransactionID == "" {
		txn.TransactionID = s.newTransactionID()
	}

	wallet, err = s.updateWallet(ctx, ownerID, ownerType, true, func(current domain.Wallet) (*domain.Transaction, error) {
		if txn.Type == domain.Credit {
			if existing, ok := current.CreditForPayment(txn.PaymentID); ok {
				return nil, fmt.Errorf("%w: payment %s already credited by transaction %s",
					apperrors.ErrDuplicate, txn.PaymentID, existing.TransactionID)
			}
		}
		entry := txn
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = s.now()
		}
		return &entry, nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction appended",
		slog.String("wallet_id", wallet.WalletID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()),
		slog.String("balance", wallet.Balance.String()))
	return wallet, nil
}

func (s *walletService) ProcessWithdrawal(ctx context.Context, ownerID string, ownerType domain.OwnerType, amount decimal.Decimal, destination string) (result *domain.WithdrawalResult, err error) {
	done := metrics.ObserveOp("withdraw")
	defer func() { done(err) }()

	if err := validateOwner(ownerID, ownerType); err != nil {
		return nil, err
	}

	result = &domain.WithdrawalResult{Amount: amount, Balance: decimal.Zero}
	defer func() {
		if err == nil {
			outcome := "applied"
			if !result.Applied {
				outcome = strings.ToLower(result.Reason)
			}
			metrics.WithdrawalsTotal.WithLabelValues(outcome).Inc()
		}
	}()

	if !amount.IsPositive() || !domain.HasMoneyScale(amount) {
		result.Reason = domain.WithdrawalInvalidAmount
		return result, nil
	}

	wallet, err := s.updateWallet(ctx, ownerID, ownerType, false, func(current domain.Wallet) (*domain.Transaction, error) {
		result.Balance = current.Balance
		if !current.HasSufficientBalance(amount) {
			result.Reason = domain.WithdrawalInsufficientBalance
			return nil, nil
		}
		result.Reason = ""
		now := s.now()
		return &domain.Transaction{
			TransactionID: s.newTransactionID(),
			PaymentID:     fmt.Sprintf("withdrawal_%d", now.UnixMilli()),
			Type:          domain.Withdrawal,
			Amount:        amount,
			Description:   "Withdrawal to bank account: " + destination,
			CreatedAt:     now,
		}, nil
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		result.Reason = domain.WithdrawalWalletNotFound
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	if result.Reason != "" {
		s.LogInfo(ctx, "Withdrawal rejected",
			slog.String("owner_id", ownerID),
			slog.String("reason", result.Reason),
			slog.String("amount", amount.String()),
			slog.String("balance", result.Balance.String()))
		return result, nil
	}

	last := wallet.Transactions[len(wallet.Transactions)-1]
	result.Applied = true
	result.Balance = wallet.Balance
	result.Transaction = &last
	s.LogInfo(ctx, "Withdrawal processed",
		slog.String("wallet_id", wallet.WalletID),
		slog.String("transaction_id", last.TransactionID),
		slog.String("amount", amount.String()),
		slog.String("balance", wallet.Balance.String()))
	return result, nil
}

// updateWallet runs build against the current wallet while holding its lock and
// persists the transaction build returns. A nil transaction leaves the wallet
// untouched. On a version conflict the wallet is re-read and build runs again,
// up to maxAttempts times. With create=false a missing wallet yields ErrNotFound.
func (s *walletService) updateWallet(
	ctx context.Context,
	ownerID string,
	ownerType domain.OwnerType,
	create bool,
	build func(current domain.Wallet) (*domain.Transaction, error),
) (*domain.Wallet, error) {
	unlock, err := s.locker.Lock(ctx, domain.WalletKey(ownerID, ownerType))
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("waiting for wallet lock: %w", ctx.Err())
		}
		return nil, fmt.Errorf("%w: wallet lock: %v", apperrors.ErrPersistenceUnavailable, err)
	}
	defer unlock()

	for attempt := 1; ; attempt++ {
		var current *domain.Wallet
		if create {
			current, err = s.GetOrCreateWallet(ctx, ownerID, ownerType)
		} else {
			current, err = s.walletRepo.FindWalletByOwner(ctx, ownerID, ownerType)
		}
		if err != nil {
			return nil, err
		}

		txn, err := build(*current)
		if err != nil || txn == nil {
			return current, err
		}

		updated := current.Clone()
		if err := updated.Apply(*txn); err != nil {
			return nil, err
		}

		err = s.walletRepo.AppendTransaction(ctx, current.WalletID, current.Version, *txn, updated.Balance, updated.UpdatedAt)
		if err == nil {
			updated.Version = current.Version + 1
			return &updated, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) || attempt >= s.maxAttempts {
			s.LogError(ctx, err, "Failed to append transaction",
				slog.String("wallet_id", current.WalletID),
				slog.Int("attempt", attempt))
			return nil, err
		}

		metrics.AppendConflictsTotal.Inc()
		s.LogDebug(ctx, "Wallet version moved, retrying append",
			slog.String("wallet_id", current.WalletID),
			slog.Int64("expected_version", current.Version),
			slog.Int("attempt", attempt))
	}
}

func (s *walletService) GetBalance(ctx context.Context, ownerID string, ownerType domain.OwnerType) (decimal.Decimal, error) {
	if err := validateOwner(ownerID, ownerType); err != nil {
		return decimal.Zero, err
	}

	wallet, err := s.walletRepo.FindWalletByOwner(ctx, ownerID, ownerType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		s.LogError(ctx, err, "Failed to read wallet balance", slog.String("owner_id", ownerID))
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}

func (s *walletService) ListWalletsByType(ctx context.Context, ownerType domain.OwnerType) ([]domain.Wallet, error) {
	if !ownerType.Valid() {
		return nil, fmt.Errorf("%w: unknown owner type %q", apperrors.ErrValidation, ownerType)
	}

	wallets, err := s.walletRepo.ListWalletsByOwnerType(ctx, ownerType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallets", slog.String("owner_type", string(ownerType)))
		return nil, err
	}
	return wallets, nil
}

func (s *walletService) GetStatistics(ctx context.Context) (*domain.WalletStatistics, error) {
	stats := &domain.WalletStatistics{
		ByOwnerType:  make([]domain.OwnerTypeStatistics, 0, len(domain.OwnerTypes)),
		TotalBalance: decimal.Zero,
	}

	for _, ownerType := range domain.OwnerTypes {
		// Count and total come from the same read so they always agree.
		wallets, err := s.walletRepo.ListWalletsByOwnerType(ctx, ownerType)
		if err != nil {
			s.LogError(ctx, err, "Failed to list wallets", slog.String("owner_type", string(ownerType)))
			return nil, err
		}

		total := decimal.Zero
		for _, w := range wallets {
			total = total.Add(w.Balance)
		}
		stats.ByOwnerType = append(stats.ByOwnerType, domain.OwnerTypeStatistics{
			OwnerType:    ownerType,
			WalletCount:  int64(len(wallets)),
			TotalBalance: total,
		})
		stats.TotalBalance = stats.TotalBalance.Add(total)
	}

	return stats, nil
}

func (s *walletService) GetEarnings(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.EarningsSummary, error) {
	if err := validateOwner(ownerID, ownerType); err != nil {
		return nil, err
	}

	summary := &domain.EarningsSummary{
		OwnerID:        ownerID,
		OwnerType:      ownerType,
		CurrentBalance: decimal.Zero,
		TotalEarnings:  decimal.Zero,
		Currency:       domain.DefaultCurrency,
	}

	wallet, err := s.walletRepo.FindWalletByOwner(ctx, ownerID, ownerType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return summary, nil
		}
		s.LogError(ctx, err, "Failed to read wallet earnings", slog.String("owner_id", ownerID))
		return nil, err
	}

	lastUpdated := wallet.UpdatedAt
	summary.WalletExists = true
	summary.CurrentBalance = wallet.Balance
	summary.TotalEarnings = accounting.TotalCredits(wallet.Transactions)
	summary.TotalTransactions = len(wallet.Transactions)
	summary.Currency = wallet.Currency
	summary.Status = wallet.Status
	summary.LastUpdated = &lastUpdated
	return summary, nil
}

func (s *walletService) ListTransactions(ctx context.Context, ownerID string, ownerType domain.OwnerType, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if err := validateOwner(ownerID, ownerType); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = defaultTransactionsLimit
	}
	if limit > maxTransactionsLimit {
		limit = maxTransactionsLimit
	}

	wallet, err := s.walletRepo.FindWalletByOwner(ctx, ownerID, ownerType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Transaction{}, nil, nil
		}
		s.LogError(ctx, err, "Failed to list transactions", slog.String("owner_id", ownerID))
		return nil, nil, err
	}

	// The log is stored oldest first; pages are served newest first.
	start := len(wallet.Transactions) - 1
	if nextToken != nil && *nextToken != "" {
		_, lastID, err := pagination.DecodeTransactionCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid next token", apperrors.ErrValidation)
		}
		idx := transactionIndex(wallet.Transactions, lastID)
		if idx < 0 {
			return nil, nil, fmt.Errorf("%w: next token does not belong to this wallet", apperrors.ErrValidation)
		}
		start = idx - 1
	}

	page := make([]domain.Transaction, 0, limit)
	for i := start; i >= 0 && len(page) < limit; i-- {
		page = append(page, wallet.Transactions[i])
	}

	var token *string
	if len(page) == limit && start-limit >= 0 {
		last := page[len(page)-1]
		encoded := pagination.EncodeTransactionCursor(last.CreatedAt, last.TransactionID)
		token = &encoded
	}
	return page, token, nil
}

func transactionIndex(transactions []domain.Transaction, id string) int {
	for i := len(transactions) - 1; i >= 0; i-- {
		if transactions[i].TransactionID == id {
			return i
		}
	}
	return -1
}
