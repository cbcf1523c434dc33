package mapping

import (
	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	"github.com/SscSPs/healthconnect_wallet/internal/models"
)

// ToModelWallet converts a domain Wallet to a model Wallet
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:     d.WalletID,
		OwnerID:      d.OwnerID,
		OwnerType:    string(d.OwnerType),
		Balance:      d.Balance,
		Currency:     d.Currency,
		Status:       string(d.Status),
		Transactions: ToModelTransactionSlice(d.WalletID, d.Transactions),
		Version:      d.Version,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:     m.WalletID,
		OwnerID:      m.OwnerID,
		OwnerType:    domain.OwnerType(m.OwnerType),
		Balance:      m.Balance,
		Currency:     m.Currency,
		Status:       domain.WalletStatus(m.Status),
		Transactions: ToDomainTransactionSlice(m.Transactions),
		Version:      m.Version,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToDomainWalletSlice converts a slice of model Wallets to a slice of domain Wallets
func ToDomainWalletSlice(ms []models.Wallet) []domain.Wallet {
	ds := make([]domain.Wallet, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWallet(m)
	}
	return ds
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(walletID string, d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		WalletID:        walletID,
		PaymentID:       d.PaymentID,
		TransactionType: string(d.Type),
		Amount:          d.Amount,
		Description:     d.Description,
		RelatedEntityID: d.RelatedEntityID,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		PaymentID:       m.PaymentID,
		Type:            domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Description:     m.Description,
		RelatedEntityID: m.RelatedEntityID,
		CreatedAt:       m.CreatedAt,
	}
}

// ToModelTransactionSlice converts domain Transactions to model Transactions of one wallet
func ToModelTransactionSlice(walletID string, ds []domain.Transaction) []models.Transaction {
	ms := make([]models.Transaction, len(ds))
	for i, d := range ds {
		ms[i] = ToModelTransaction(walletID, d)
	}
	return ms
}

// ToDomainTransactionSlice converts model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
