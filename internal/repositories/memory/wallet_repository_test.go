package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func credit(id, paymentID string, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		PaymentID:     paymentID,
		Type:          domain.Credit,
		Amount:        decimal.NewFromInt(amount),
		CreatedAt:     time.Now().UTC(),
	}
}

func TestCreateWalletIfAbsent_ReturnsExisting(t *testing.T) {
	repo := NewWalletRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	first, err := repo.CreateWalletIfAbsent(ctx, domain.NewWallet("w-1", "doctor_001", domain.OwnerDoctor, now))
	require.NoError(t, err)
	second, err := repo.CreateWalletIfAbsent(ctx, domain.NewWallet("w-2", "doctor_001", domain.OwnerDoctor, now))
	require.NoError(t, err)

	assert.Equal(t, "w-1", first.WalletID)
	assert.Equal(t, "w-1", second.WalletID)

	count, err := repo.CountWalletsByOwnerType(ctx, domain.OwnerDoctor)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateWalletIfAbsent_Concurrent(t *testing.T) {
	repo := NewWalletRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	var wg sync.WaitGroup
	ids := make([]string, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w, err := repo.CreateWalletIfAbsent(ctx, domain.NewWallet(string(rune('a'+i)), "pharmacy_001", domain.OwnerPharmacy, now))
			if assert.NoError(t, err) {
				ids[i] = w.WalletID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestFindWalletByOwner_NotFound(t *testing.T) {
	repo := NewWalletRepository()
	_, err := repo.FindWalletByOwner(context.Background(), "doctor_404", domain.OwnerDoctor)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSameOwnerIDDifferentTypeAreDistinct(t *testing.T) {
	repo := NewWalletRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	d, err := repo.CreateWalletIfAbsent(ctx, domain.NewWallet("w-d", "shared_01", domain.OwnerDoctor, now))
	require.NoError(t, err)
	p, err := repo.CreateWalletIfAbsent(ctx, domain.NewWallet("w-p", "shared_01", domain.OwnerPharmacy, now))
	require.NoError(t, err)
	assert.NotEqual(t, d.WalletID, p.WalletID)
}

func TestAppendTransaction_VersionAndDuplicate(t *testing.T) {
	repo := NewWalletRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	w, err := repo.CreateWalletIfAbsent(ctx, domain.NewWallet("w-1", "doctor_001", domain.OwnerDoctor, now))
	require.NoError(t, err)
	require.EqualValues(t, 0, w.Version)

	require.NoError(t, repo.AppendTransaction(ctx, w.WalletID, 0, credit("t1", "pay_1", 400), decimal.NewFromInt(400), now))

	err = repo.AppendTransaction(ctx, w.WalletID, 0, credit("t2", "pay_2", 100), decimal.NewFromInt(500), now)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	err = repo.AppendTransaction(ctx, w.WalletID, 1, credit("t3", "pay_1", 400), decimal.NewFromInt(800), now)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	stored, err := repo.FindWalletByOwner(ctx, "doctor_001", domain.OwnerDoctor)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stored.Version)
	assert.Len(t, stored.Transactions, 1)
	assert.True(t, decimal.NewFromInt(400).Equal(stored.Balance))
}

func TestFindWalletByOwner_ReturnsCopy(t *testing.T) {
	repo := NewWalletRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	w, err := repo.CreateWalletIfAbsent(ctx, domain.NewWallet("w-1", "doctor_001", domain.OwnerDoctor, now))
	require.NoError(t, err)
	require.NoError(t, repo.AppendTransaction(ctx, w.WalletID, 0, credit("t1", "pay_1", 50), decimal.NewFromInt(50), now))

	got, err := repo.FindWalletByOwner(ctx, "doctor_001", domain.OwnerDoctor)
	require.NoError(t, err)
	got.Transactions[0].Amount = decimal.NewFromInt(999)

	again, err := repo.FindWalletByOwner(ctx, "doctor_001", domain.OwnerDoctor)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(again.Transactions[0].Amount))
}
