package domain

import (
	"testing"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		txn     Transaction
		wantErr bool
	}{
		{"valid credit", Transaction{Type: Credit, Amount: decimal.NewFromInt(10)}, false},
		{"valid withdrawal", Transaction{Type: Withdrawal, Amount: decimal.RequireFromString("0.01")}, false},
		{"zero amount", Transaction{Type: Credit, Amount: decimal.Zero}, true},
		{"negative amount", Transaction{Type: Refund, Amount: decimal.NewFromInt(-1)}, true},
		{"trailing zeros", Transaction{Type: Credit, Amount: decimal.RequireFromString("1.500")}, false},
		{"sub-paisa amount", Transaction{Type: Withdrawal, Amount: decimal.RequireFromString("0.005")}, true},
		{"sub-paisa fraction", Transaction{Type: Credit, Amount: decimal.RequireFromString("10.001")}, true},
		{"unknown type", Transaction{Type: "BONUS", Amount: decimal.NewFromInt(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	ten := decimal.NewFromInt(10)
	for typ, want := range map[TransactionType]decimal.Decimal{
		Credit:     ten,
		Refund:     ten,
		Debit:      ten.Neg(),
		Withdrawal: ten.Neg(),
		Commission: ten.Neg(),
	} {
		got := Transaction{Type: typ, Amount: ten}.SignedAmount()
		assert.True(t, want.Equal(got), "%s: got %s", typ, got)
	}
}

func TestWallet_ApplyKeepsBalanceEqualToLog(t *testing.T) {
	now := time.Now().UTC()
	w := NewWallet("w-1", "doctor_001", OwnerDoctor, now)

	later := now.Add(time.Minute)
	require.NoError(t, w.Apply(Transaction{TransactionID: "t1", PaymentID: "p1", Type: Credit, Amount: decimal.NewFromInt(1200), CreatedAt: later}))
	require.NoError(t, w.Apply(Transaction{TransactionID: "t2", Type: Withdrawal, Amount: decimal.NewFromInt(200), CreatedAt: later}))

	assert.True(t, decimal.NewFromInt(1000).Equal(w.Balance))
	assert.True(t, w.Balance.Equal(w.LedgerBalance()))
	assert.Equal(t, later, w.UpdatedAt)

	err := w.Apply(Transaction{TransactionID: "t3", Type: Debit, Amount: decimal.Zero, CreatedAt: later})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Len(t, w.Transactions, 2)

	credit, ok := w.CreditForPayment("p1")
	assert.True(t, ok)
	assert.Equal(t, "t1", credit.TransactionID)
	_, ok = w.CreditForPayment("")
	assert.False(t, ok)
}

func TestWallet_HasSufficientBalance(t *testing.T) {
	w := NewWallet("w-1", "doctor_001", OwnerDoctor, time.Now())
	w.Balance = decimal.RequireFromString("1200.00")

	assert.True(t, w.HasSufficientBalance(decimal.RequireFromString("1200.00")))
	assert.False(t, w.HasSufficientBalance(decimal.RequireFromString("1200.01")))
}

func TestWallet_CloneIsIndependent(t *testing.T) {
	w := NewWallet("w-1", "doctor_001", OwnerDoctor, time.Now())
	require.NoError(t, w.Apply(Transaction{Type: Credit, Amount: decimal.NewFromInt(5), CreatedAt: time.Now()}))

	cp := w.Clone()
	require.NoError(t, cp.Apply(Transaction{Type: Credit, Amount: decimal.NewFromInt(5), CreatedAt: time.Now()}))
	assert.Len(t, w.Transactions, 1)
	assert.Len(t, cp.Transactions, 2)
}

func TestParseOwnerType(t *testing.T) {
	got, err := ParseOwnerType(" doctor ")
	require.NoError(t, err)
	assert.Equal(t, OwnerDoctor, got)

	got, err = ParseOwnerType("Pharmacy")
	require.NoError(t, err)
	assert.Equal(t, OwnerPharmacy, got)

	_, err = ParseOwnerType("patient")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
