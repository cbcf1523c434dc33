package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates how a transaction moves a wallet balance.
type TransactionType string

const (
	Credit     TransactionType = "CREDIT"
	Debit      TransactionType = "DEBIT"
	Refund     TransactionType = "REFUND"
	Withdrawal TransactionType = "WITHDRAWAL"
	Commission TransactionType = "COMMISSION"
)

// IsInflow reports whether the type adds to the balance (CREDIT, REFUND).
func (t TransactionType) IsInflow() bool {
	return t == Credit || t == Refund
}

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case Credit, Debit, Refund, Withdrawal, Commission:
		return true
	}
	return false
}

// Transaction is a single immutable entry in a wallet's log.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	PaymentID       string          `json:"paymentID"`       // Back-reference, not owned
	Type            TransactionType `json:"type"`            // CREDIT, DEBIT, REFUND, WITHDRAWAL, COMMISSION
	Amount          decimal.Decimal `json:"amount"`          // Always positive
	Description     string          `json:"description"`     // Nullable
	RelatedEntityID string          `json:"relatedEntityID"` // Patient or order that triggered it
	CreatedAt       time.Time       `json:"createdAt"`
}

// Validate checks the transaction can be applied to a wallet.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, t.Type)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: transaction amount must be positive, got %s", apperrors.ErrValidation, t.Amount.String())
	}
	if !HasMoneyScale(t.Amount) {
		return fmt.Errorf("%w: transaction amount %s has more than %d decimal places", apperrors.ErrValidation, t.Amount.String(), MoneyScale)
	}
	return nil
}

// SignedAmount returns the amount with the sign it contributes to the balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type.IsInflow() {
		return t.Amount
	}
	return t.Amount.Neg()
}
