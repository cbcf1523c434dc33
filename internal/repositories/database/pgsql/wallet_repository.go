package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/healthconnect_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/healthconnect_wallet/internal/models"
	"github.com/SscSPs/healthconnect_wallet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const walletColumns = `wallet_id, owner_id, owner_type, balance, currency, status, version, created_at, updated_at`

// PgxWalletRepository stores wallets in a wallets table and their log in wallet_transactions.
type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet data.
func newPgxWalletRepository(pool *pgxpool.Pool) *PgxWalletRepository {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxWalletRepository implements portsrepo.WalletRepositoryFacade
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

func scanWallet(row pgx.Row) (models.Wallet, error) {
	var m models.Wallet
	err := row.Scan(&m.WalletID, &m.OwnerID, &m.OwnerType, &m.Balance, &m.Currency, &m.Status, &m.Version, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *PgxWalletRepository) FindWalletByOwner(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1 AND owner_type = $2;`

	m, err := scanWallet(r.Pool.QueryRow(ctx, query, ownerID, string(ownerType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, unavailable(fmt.Sprintf("find wallet %s/%s", ownerType, ownerID), err)
	}

	m.Transactions, err = r.loadTransactions(ctx, m.WalletID)
	if err != nil {
		return nil, err
	}

	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

func (r *PgxWalletRepository) loadTransactions(ctx context.Context, walletID string) ([]models.Transaction, error) {
	query := `
		SELECT transaction_id, wallet_id, COALESCE(payment_id, ''), transaction_type, amount,
		       COALESCE(description, ''), COALESCE(related_entity_id, ''), created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY seq ASC;
	`
	rows, err := r.Pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, unavailable("query wallet transactions", err)
	}
	defer rows.Close()

	txns := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.TransactionID, &t.WalletID, &t.PaymentID, &t.TransactionType, &t.Amount, &t.Description, &t.RelatedEntityID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wallet transaction: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate wallet transactions", err)
	}
	return txns, nil
}

func (r *PgxWalletRepository) ListWalletsByOwnerType(ctx context.Context, ownerType domain.OwnerType) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_type = $1 ORDER BY created_at ASC, owner_id ASC;`

	rows, err := r.Pool.Query(ctx, query, string(ownerType))
	if err != nil {
		return nil, unavailable("list wallets", err)
	}
	defer rows.Close()

	ms := make([]models.Wallet, 0)
	for rows.Next() {
		m, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate wallets", err)
	}

	// Listing returns balances only; the log is loaded per wallet on demand.
	for i := range ms {
		ms[i].Transactions = []models.Transaction{}
	}
	return mapping.ToDomainWalletSlice(ms), nil
}

func (r *PgxWalletRepository) CountWalletsByOwnerType(ctx context.Context, ownerType domain.OwnerType) (int64, error) {
	var n int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM wallets WHERE owner_type = $1;`, string(ownerType)).Scan(&n); err != nil {
		return 0, unavailable("count wallets", err)
	}
	return n, nil
}

func (r *PgxWalletRepository) CreateWalletIfAbsent(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error) {
	m := mapping.ToModelWallet(wallet)

	query := `
		INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)
		ON CONFLICT (owner_id, owner_type) DO NOTHING;
	`
	// An existing row for the owner is left untouched and returned below.
	_, err := r.Pool.Exec(ctx, query,
		m.WalletID, m.OwnerID, m.OwnerType, m.Balance, m.Currency, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: wallet ID %s already exists", apperrors.ErrDuplicate, m.WalletID)
		}
		return nil, unavailable("insert wallet", err)
	}
	return r.FindWalletByOwner(ctx, wallet.OwnerID, wallet.OwnerType)
}

func (r *PgxWalletRepository) AppendTransaction(ctx context.Context, walletID string, expectedVersion int64, txn domain.Transaction, newBalance decimal.Decimal, updatedAt time.Time) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE wallets
		SET balance = $1, updated_at = $2, version = version + 1
		WHERE wallet_id = $3 AND version = $4;
	`, newBalance, updatedAt, walletID, expectedVersion)
	if err != nil {
		return unavailable("update wallet balance", err)
	}
	if tag.RowsAffected() == 0 {
		return r.conflictOrMissing(ctx, tx, walletID, expectedVersion)
	}

	m := mapping.ToModelTransaction(walletID, txn)
	_, err = tx.Exec(ctx, `
		INSERT INTO wallet_transactions (transaction_id, wallet_id, payment_id, transaction_type, amount, description, related_entity_id, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8);
	`, m.TransactionID, m.WalletID, m.PaymentID, m.TransactionType, m.Amount, m.Description, m.RelatedEntityID, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payment %s already credited to wallet %s", apperrors.ErrDuplicate, m.PaymentID, walletID)
		}
		return unavailable("insert wallet transaction", err)
	}

	return r.Commit(ctx, tx)
}

// conflictOrMissing explains why a versioned update touched no rows.
func (r *PgxWalletRepository) conflictOrMissing(ctx context.Context, tx pgx.Tx, walletID string, expectedVersion int64) error {
	var current int64
	err := tx.QueryRow(ctx, `SELECT version FROM wallets WHERE wallet_id = $1;`, walletID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return unavailable("read wallet version", err)
	}
	return fmt.Errorf("%w: wallet %s is at version %d, expected %d", apperrors.ErrConflict, walletID, current, expectedVersion)
}
