package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommission(t *testing.T) {
	tests := []struct {
		name           string
		amount         string
		rate           string
		wantShare      string
		wantCommission string
	}{
		{"consultation whole amount", "500", "0.20", "400", "100"},
		{"medicine whole amount", "1200", "0.10", "1080", "120"},
		{"rounds share half up", "0.05", "0.20", "0.04", "0.01"},
		{"fractional consultation", "333.33", "0.20", "266.66", "66.67"},
		{"zero rate", "75.50", "0", "75.5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share, commission, err := SplitCommission(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.rate))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantShare).Equal(share), "share: got %s", share)
			assert.True(t, decimal.RequireFromString(tt.wantCommission).Equal(commission), "commission: got %s", commission)
			assert.True(t, share.Add(commission).Equal(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestSplitCommission_Invalid(t *testing.T) {
	_, _, err := SplitCommission(decimal.Zero, decimal.RequireFromString("0.2"))
	assert.Error(t, err)

	_, _, err = SplitCommission(decimal.NewFromInt(10), decimal.NewFromInt(1))
	assert.Error(t, err)

	_, _, err = SplitCommission(decimal.NewFromInt(10), decimal.RequireFromString("-0.1"))
	assert.Error(t, err)
}

func TestTotalCreditsAndBalanceValidation(t *testing.T) {
	now := time.Now()
	w := domain.NewWallet("w1", "doctor_001", domain.OwnerDoctor, now)
	require.NoError(t, w.Apply(domain.Transaction{TransactionID: "t1", Type: domain.Credit, Amount: decimal.NewFromInt(400), CreatedAt: now}))
	require.NoError(t, w.Apply(domain.Transaction{TransactionID: "t2", Type: domain.Withdrawal, Amount: decimal.NewFromInt(150), CreatedAt: now}))
	require.NoError(t, w.Apply(domain.Transaction{TransactionID: "t3", Type: domain.Refund, Amount: decimal.NewFromInt(20), CreatedAt: now}))

	assert.True(t, decimal.NewFromInt(400).Equal(TotalCredits(w.Transactions)))
	assert.NoError(t, ValidateWalletBalance(w))

	w.Balance = w.Balance.Add(decimal.NewFromInt(1))
	assert.Error(t, ValidateWalletBalance(w))
}
