package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnerTypeStatistics aggregates the wallets of one owner type.
type OwnerTypeStatistics struct {
	OwnerType    OwnerType       `json:"ownerType"`
	WalletCount  int64           `json:"walletCount"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

// WalletStatistics is the admin-level summary across all wallets.
type WalletStatistics struct {
	ByOwnerType  []OwnerTypeStatistics `json:"byOwnerType"`
	TotalBalance decimal.Decimal       `json:"totalBalance"`
}

// ForOwnerType returns the row for t, or a zero row.
func (s WalletStatistics) ForOwnerType(t OwnerType) OwnerTypeStatistics {
	for _, row := range s.ByOwnerType {
		if row.OwnerType == t {
			return row
		}
	}
	return OwnerTypeStatistics{OwnerType: t, TotalBalance: decimal.Zero}
}

// EarningsSummary is the per-wallet earnings view shown to doctors and pharmacies.
type EarningsSummary struct {
	OwnerID           string          `json:"ownerID"`
	OwnerType         OwnerType       `json:"ownerType"`
	WalletExists      bool            `json:"walletExists"`
	CurrentBalance    decimal.Decimal `json:"currentBalance"`
	TotalEarnings     decimal.Decimal `json:"totalEarnings"` // Sum of CREDIT amounts
	TotalTransactions int             `json:"totalTransactions"`
	Currency          string          `json:"currency"`
	Status            WalletStatus    `json:"status,omitempty"`
	LastUpdated       *time.Time      `json:"lastUpdated,omitempty"`
}

// WithdrawalResult reports a withdrawal request. Applied=false is a business
// outcome (insufficient or invalid amount), not an error.
type WithdrawalResult struct {
	Applied     bool            `json:"applied"`
	Reason      string          `json:"reason,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Transaction *Transaction    `json:"transaction,omitempty"`
}

const (
	WithdrawalInvalidAmount       = "INVALID_AMOUNT"
	WithdrawalInsufficientBalance = "INSUFFICIENT_BALANCE"
	WithdrawalWalletNotFound      = "WALLET_NOT_FOUND"
)
