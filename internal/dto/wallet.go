package dto

import (
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a wallet transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	PaymentID       string                 `json:"paymentID,omitempty"`
	Type            domain.TransactionType `json:"type"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description,omitempty"`
	RelatedEntityID string                 `json:"relatedEntityID,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// WalletResponse defines the data returned for a wallet.
// Transactions is omitted on list endpoints.
type WalletResponse struct {
	WalletID          string                `json:"walletID"`
	OwnerID           string                `json:"ownerID"`
	OwnerType         domain.OwnerType      `json:"ownerType"`
	Balance           decimal.Decimal       `json:"balance"`
	Currency          string                `json:"currency"`
	Status            domain.WalletStatus   `json:"status"`
	TotalTransactions int                   `json:"totalTransactions"`
	Transactions      []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	OwnerID   string           `json:"ownerID"`
	OwnerType domain.OwnerType `json:"ownerType"`
	Balance   decimal.Decimal  `json:"balance"`
	Currency  string           `json:"currency"`
}

// EarningsResponse defines the earnings summary of a doctor or pharmacy.
type EarningsResponse struct {
	OwnerID           string              `json:"ownerID"`
	OwnerType         domain.OwnerType    `json:"ownerType"`
	CurrentBalance    decimal.Decimal     `json:"currentBalance"`
	TotalEarnings     decimal.Decimal     `json:"totalEarnings"`
	TotalTransactions int                 `json:"totalTransactions"`
	Currency          string              `json:"currency"`
	WalletStatus      domain.WalletStatus `json:"walletStatus,omitempty"`
	LastUpdated       *time.Time          `json:"lastUpdated,omitempty"`
	Message           string              `json:"message,omitempty"`
}

// NoWalletMessage is returned in place of a summary for owners without a wallet.
const NoWalletMessage = "No wallet found, will be created on first payment"

// ListWalletsParams defines query parameters for listing wallets.
type ListWalletsParams struct {
	OwnerType string `form:"ownerType" binding:"required,ownertype"`
}

// ListWalletsResponse wraps the wallets of one owner type.
type ListWalletsResponse struct {
	Wallets []WalletResponse `json:"wallets"`
	Count   int              `json:"count"`
}

// ListTransactionsParams defines query parameters for listing wallet transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is one page of a wallet's history, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// WithdrawRequest defines the body of a withdrawal request.
type WithdrawRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	BankDetails string          `json:"bankDetails" binding:"required"`
}

// WithdrawResponse reports the outcome of a withdrawal request.
type WithdrawResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Reason      string               `json:"reason,omitempty"`
	Amount      decimal.Decimal      `json:"amount"`
	BankDetails string               `json:"bankDetails,omitempty"`
	Balance     decimal.Decimal      `json:"balance"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

const (
	WithdrawSuccessMessage = "Withdrawal request processed successfully"
	WithdrawFailureMessage = "Insufficient balance or invalid withdrawal amount"
)

// DistributeRequest is sent by the payment orchestrator once a payment settles.
type DistributeRequest struct {
	PaymentID       string               `json:"paymentID" binding:"required"`
	PatientID       string               `json:"patientID"`
	PaymentType     domain.PaymentType   `json:"paymentType" binding:"required"`
	Amount          decimal.Decimal      `json:"amount"`
	PaymentStatus   domain.PaymentStatus `json:"paymentStatus" binding:"required"`
	DoctorID        string               `json:"doctorID"`
	MedicineOrderID string               `json:"medicineOrderID"`
}

// ToDomainPayment converts the request into the payment the distributor reads.
func (r DistributeRequest) ToDomainPayment() domain.Payment {
	return domain.Payment{
		PaymentID:       r.PaymentID,
		PatientID:       r.PatientID,
		PaymentType:     r.PaymentType,
		Amount:          r.Amount,
		PaymentStatus:   r.PaymentStatus,
		DoctorID:        r.DoctorID,
		MedicineOrderID: r.MedicineOrderID,
	}
}

// DistributionResponse mirrors domain.DistributionResult.
type DistributionResponse struct {
	PaymentID      string                     `json:"paymentID"`
	Outcome        domain.DistributionOutcome `json:"outcome"`
	SkipReason     domain.SkipReason          `json:"skipReason,omitempty"`
	OwnerID        string                     `json:"ownerID,omitempty"`
	OwnerType      domain.OwnerType           `json:"ownerType,omitempty"`
	CreditedAmount decimal.Decimal            `json:"creditedAmount"`
	Commission     decimal.Decimal            `json:"commission"`
	CommissionRate decimal.Decimal            `json:"commissionRate"`
	Transaction    *TransactionResponse       `json:"transaction,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		PaymentID:       t.PaymentID,
		Type:            t.Type,
		Amount:          t.Amount,
		Description:     t.Description,
		RelatedEntityID: t.RelatedEntityID,
		CreatedAt:       t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions, never returning nil.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(t)
	}
	return res
}

// ToWalletResponse converts a domain.Wallet, including its transaction log.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	resp := ToWalletSummaryResponse(w)
	resp.Transactions = ToTransactionResponses(w.Transactions)
	return resp
}

// ToWalletSummaryResponse converts a domain.Wallet without its transaction log.
func ToWalletSummaryResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:          w.WalletID,
		OwnerID:           w.OwnerID,
		OwnerType:         w.OwnerType,
		Balance:           w.Balance,
		Currency:          w.Currency,
		Status:            w.Status,
		TotalTransactions: len(w.Transactions),
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}

// ToListWalletsResponse converts wallets returned by a listing.
func ToListWalletsResponse(wallets []domain.Wallet) ListWalletsResponse {
	res := make([]WalletResponse, len(wallets))
	for i := range wallets {
		res[i] = ToWalletSummaryResponse(&wallets[i])
	}
	return ListWalletsResponse{Wallets: res, Count: len(res)}
}

// ToEarningsResponse converts an earnings summary, adding the no-wallet message when needed.
func ToEarningsResponse(s *domain.EarningsSummary) EarningsResponse {
	resp := EarningsResponse{
		OwnerID:           s.OwnerID,
		OwnerType:         s.OwnerType,
		CurrentBalance:    s.CurrentBalance,
		TotalEarnings:     s.TotalEarnings,
		TotalTransactions: s.TotalTransactions,
		Currency:          s.Currency,
		WalletStatus:      s.Status,
		LastUpdated:       s.LastUpdated,
	}
	if !s.WalletExists {
		resp.Message = NoWalletMessage
	}
	return resp
}

// ToDistributionResponse converts a distribution result.
func ToDistributionResponse(r *domain.DistributionResult) DistributionResponse {
	resp := DistributionResponse{
		PaymentID:      r.PaymentID,
		Outcome:        r.Outcome,
		SkipReason:     r.SkipReason,
		OwnerID:        r.OwnerID,
		OwnerType:      r.OwnerType,
		CreditedAmount: r.CreditedAmount,
		Commission:     r.Commission,
		CommissionRate: r.CommissionRate,
	}
	if r.Transaction != nil {
		t := ToTransactionResponse(*r.Transaction)
		resp.Transaction = &t
	}
	return resp
}
