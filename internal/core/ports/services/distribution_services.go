package services

import (
	"context"

	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
)

// DistributionSvc splits successful payments between the platform and a provider wallet.
type DistributionSvc interface {
	// Distribute credits the provider's share of payment. Payments that cannot
	// be distributed come back as a skipped result, not an error.
	Distribute(ctx context.Context, payment domain.Payment) (*domain.DistributionResult, error)
}
