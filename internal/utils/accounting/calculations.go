package accounting

import (
	"fmt"

	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SplitCommission divides a payment amount into the provider's share and the
// platform commission. The share is rounded to domain.MoneyScale and the
// commission takes whatever remains, so share + commission == amount.
func SplitCommission(amount, rate decimal.Decimal) (share decimal.Decimal, commission decimal.Decimal, err error) {
	if !amount.IsPositive() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("amount must be positive, got %s", amount.String())
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("commission rate must be within [0, 1), got %s", rate.String())
	}

	share = amount.Mul(decimal.NewFromInt(1).Sub(rate)).Round(domain.MoneyScale)
	commission = amount.Sub(share)
	return share, commission, nil
}

// TotalCredits sums the CREDIT entries of a transaction log.
func TotalCredits(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.Type == domain.Credit {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// ValidateWalletBalance checks that a wallet's stored balance equals the sum
// of its signed transactions.
func ValidateWalletBalance(wallet domain.Wallet) error {
	ledger := wallet.LedgerBalance()
	if !ledger.Equal(wallet.Balance) {
		return fmt.Errorf("wallet %s balance %s does not match transaction log sum %s",
			wallet.WalletID, wallet.Balance.String(), ledger.String())
	}
	return nil
}
