package domain

import "github.com/shopspring/decimal"

// DistributionOutcome reports whether a payment moved money into a wallet.
type DistributionOutcome string

const (
	Distributed         DistributionOutcome = "DISTRIBUTED"
	DistributionSkipped DistributionOutcome = "SKIPPED"
)

// SkipReason explains why a payment produced no credit.
type SkipReason string

const (
	SkipPaymentNotSucceeded SkipReason = "PAYMENT_NOT_SUCCEEDED"
	SkipNonPositiveAmount   SkipReason = "NON_POSITIVE_AMOUNT"
	SkipUnsupportedType     SkipReason = "UNSUPPORTED_PAYMENT_TYPE"
	SkipMissingTarget       SkipReason = "MISSING_TARGET"
	SkipAlreadyDistributed  SkipReason = "ALREADY_DISTRIBUTED"
)

// DistributionResult is what the payment orchestrator gets back from a
// distribution attempt. Commission is computed but never booked to a wallet.
type DistributionResult struct {
	PaymentID      string              `json:"paymentID"`
	Outcome        DistributionOutcome `json:"outcome"`
	SkipReason     SkipReason          `json:"skipReason,omitempty"`
	OwnerID        string              `json:"ownerID,omitempty"`
	OwnerType      OwnerType           `json:"ownerType,omitempty"`
	CreditedAmount decimal.Decimal     `json:"creditedAmount"`
	Commission     decimal.Decimal     `json:"commission"`
	CommissionRate decimal.Decimal     `json:"commissionRate"`
	Transaction    *Transaction        `json:"transaction,omitempty"`
}

// Skipped reports whether no credit was written.
func (r DistributionResult) Skipped() bool {
	return r.Outcome == DistributionSkipped
}

// SkippedDistribution builds a result for a payment that credited nothing.
func SkippedDistribution(paymentID string, reason SkipReason) *DistributionResult {
	return &DistributionResult{
		PaymentID:      paymentID,
		Outcome:        DistributionSkipped,
		SkipReason:     reason,
		CreditedAmount: decimal.Zero,
		Commission:     decimal.Zero,
		CommissionRate: decimal.Zero,
	}
}
