package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one persisted wallet log entry.
type Transaction struct {
	TransactionID   string          `db:"transaction_id" bson:"transactionId"`
	WalletID        string          `db:"wallet_id" bson:"-"`
	PaymentID       string          `db:"payment_id" bson:"paymentId,omitempty"` // Nullable
	TransactionType string          `db:"transaction_type" bson:"type"`
	Amount          decimal.Decimal `db:"amount" bson:"amount"`
	Description     string          `db:"description" bson:"description,omitempty"`
	RelatedEntityID string          `db:"related_entity_id" bson:"relatedEntityId,omitempty"`
	CreatedAt       time.Time       `db:"created_at" bson:"createdAt"`
}
