package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/shopspring/decimal"
)

// OwnerType identifies what kind of party owns a wallet.
type OwnerType string

const (
	OwnerDoctor   OwnerType = "DOCTOR"
	OwnerPharmacy OwnerType = "PHARMACY"
)

// OwnerTypes lists every supported owner type in reporting order.
var OwnerTypes = []OwnerType{OwnerDoctor, OwnerPharmacy}

// Valid reports whether t is a supported owner type.
func (t OwnerType) Valid() bool {
	return t == OwnerDoctor || t == OwnerPharmacy
}

// ParseOwnerType normalises user input ("doctor", " Pharmacy ") into an OwnerType.
func ParseOwnerType(s string) (OwnerType, error) {
	t := OwnerType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown owner type %q", apperrors.ErrValidation, s)
	}
	return t, nil
}

// WalletStatus is the lifecycle state of a wallet.
type WalletStatus string

const (
	WalletActive    WalletStatus = "ACTIVE"
	WalletSuspended WalletStatus = "SUSPENDED"
	WalletFrozen    WalletStatus = "FROZEN"
	WalletClosed    WalletStatus = "CLOSED"
)

// Wallet holds the running balance and transaction log of one (owner, type) pair.
// Balance is a materialized view over Transactions.
type Wallet struct {
	WalletID     string          `json:"walletID"`
	OwnerID      string          `json:"ownerID"`
	OwnerType    OwnerType       `json:"ownerType"`
	Balance      decimal.Decimal `json:"balance"`
	Currency     string          `json:"currency"`
	Status       WalletStatus    `json:"status"`
	Transactions []Transaction   `json:"transactions"`
	Version      int64           `json:"version"` // Incremented by the store on every append
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// NewWallet returns an empty ACTIVE wallet in the default currency.
func NewWallet(walletID, ownerID string, ownerType OwnerType, now time.Time) Wallet {
	return Wallet{
		WalletID:     walletID,
		OwnerID:      ownerID,
		OwnerType:    ownerType,
		Balance:      decimal.Zero,
		Currency:     DefaultCurrency,
		Status:       WalletActive,
		Transactions: []Transaction{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// WalletKey is the identity of a wallet independent of its generated ID.
func WalletKey(ownerID string, ownerType OwnerType) string {
	return string(ownerType) + ":" + ownerID
}

// Key returns WalletKey for w.
func (w Wallet) Key() string {
	return WalletKey(w.OwnerID, w.OwnerType)
}

// Apply validates txn, appends it to the log and moves the balance.
func (w *Wallet) Apply(txn Transaction) error {
	if err := txn.Validate(); err != nil {
		return err
	}
	w.Transactions = append(w.Transactions, txn)
	w.Balance = w.Balance.Add(txn.SignedAmount())
	w.UpdatedAt = txn.CreatedAt
	return nil
}

// LedgerBalance recomputes the balance from the log.
func (w Wallet) LedgerBalance() decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range w.Transactions {
		sum = sum.Add(txn.SignedAmount())
	}
	return sum
}

// HasSufficientBalance reports whether amount can be taken out.
func (w Wallet) HasSufficientBalance(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}

// CreditForPayment returns the CREDIT already recorded for paymentID, if any.
func (w Wallet) CreditForPayment(paymentID string) (Transaction, bool) {
	if paymentID == "" {
		return Transaction{}, false
	}
	for _, txn := range w.Transactions {
		if txn.Type == Credit && txn.PaymentID == paymentID {
			return txn, true
		}
	}
	return Transaction{}, false
}

// Clone returns a copy whose log can be mutated independently.
func (w Wallet) Clone() Wallet {
	cp := w
	cp.Transactions = make([]Transaction, len(w.Transactions))
	copy(cp.Transactions, w.Transactions)
	return cp
}
