//go:build integration

package mongodb

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	"github.com/SscSPs/healthconnect_wallet/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Set MONGO_TEST_URI (e.g. mongodb://localhost:27017) to run these tests.
func newTestRepo(t *testing.T) *MongoWalletRepository {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	client, err := database.NewMongoClient(ctx, uri, NewRegistry(), true)
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("wallet_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		database.CloseMongoClient(client)
	})

	repo := NewMongoWalletRepository(db)
	require.NoError(t, repo.EnsureIndexes(ctx))
	return repo
}

func TestMongoWalletRepository_CreateIfAbsentIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w, err := repo.CreateWalletIfAbsent(ctx, domain.NewWallet(uuid.NewString(), "doctor_001", domain.OwnerDoctor, now))
			if assert.NoError(t, err) {
				ids[i] = w.WalletID
			}
		}(i)
	}
	wg.Wait()
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}

	n, err := repo.CountWalletsByOwnerType(ctx, domain.OwnerDoctor)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestMongoWalletRepository_AppendRules(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	w, err := repo.CreateWalletIfAbsent(ctx, domain.NewWallet(uuid.NewString(), "pharmacy_001", domain.OwnerPharmacy, now))
	require.NoError(t, err)

	credit := domain.Transaction{
		TransactionID: uuid.NewString(),
		PaymentID:     "pay_1",
		Type:          domain.Credit,
		Amount:        decimal.RequireFromString("270.00"),
		CreatedAt:     now,
	}
	require.NoError(t, repo.AppendTransaction(ctx, w.WalletID, 0, credit, decimal.RequireFromString("270.00"), now))

	err = repo.AppendTransaction(ctx, w.WalletID, 0, credit, decimal.RequireFromString("540.00"), now)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	credit.TransactionID = uuid.NewString()
	err = repo.AppendTransaction(ctx, w.WalletID, 1, credit, decimal.RequireFromString("540.00"), now)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	err = repo.AppendTransaction(ctx, "missing", 0, credit, decimal.Zero, now)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	stored, err := repo.FindWalletByOwner(ctx, "pharmacy_001", domain.OwnerPharmacy)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stored.Version)
	assert.True(t, decimal.RequireFromString("270").Equal(stored.Balance))
	require.Len(t, stored.Transactions, 1)
	assert.Equal(t, "pay_1", stored.Transactions[0].PaymentID)

	listed, err := repo.ListWalletsByOwnerType(ctx, domain.OwnerPharmacy)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Empty(t, listed[0].Transactions)
}
