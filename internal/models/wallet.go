package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the persisted form of a wallet. The Postgres store keeps
// transactions in their own table; the Mongo store embeds them.
type Wallet struct {
	WalletID     string          `db:"wallet_id" bson:"_id"`
	OwnerID      string          `db:"owner_id" bson:"ownerId"`
	OwnerType    string          `db:"owner_type" bson:"ownerType"`
	Balance      decimal.Decimal `db:"balance" bson:"balance"`
	Currency     string          `db:"currency" bson:"currency"`
	Status       string          `db:"status" bson:"status"`
	Transactions []Transaction   `db:"-" bson:"transactions"`
	Version      int64           `db:"version" bson:"version"`
	CreatedAt    time.Time       `db:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time       `db:"updated_at" bson:"updatedAt"`
}
