package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/healthconnect_wallet/internal/core/ports/services"
	"github.com/SscSPs/healthconnect_wallet/internal/platform/metrics"
	"github.com/SscSPs/healthconnect_wallet/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Default split and routing applied when no options override them.
var (
	DefaultDoctorCommissionRate   = decimal.RequireFromString("0.20")
	DefaultPharmacyCommissionRate = decimal.RequireFromString("0.10")
)

// DefaultPharmacyID receives every medicine payment; orders are fulfilled by a single pharmacy.
const DefaultPharmacyID = "pharmacy_001"

// distributionService implements the DistributionSvc interface
type distributionService struct {
	BaseService
	wallets      portssvc.WalletWriterSvc
	doctorRate   decimal.Decimal
	pharmacyRate decimal.Decimal
	pharmacyID   string
}

// DistributionOption is a functional option for configuring the distribution service
type DistributionOption func(*distributionService)

// WithCommissionRates sets the platform commission taken from consultation and medicine payments.
func WithCommissionRates(doctor, pharmacy decimal.Decimal) DistributionOption {
	return func(s *distributionService) {
		s.doctorRate = doctor
		s.pharmacyRate = pharmacy
	}
}

// WithPharmacyID sets the pharmacy wallet medicine payments are credited to.
func WithPharmacyID(id string) DistributionOption {
	return func(s *distributionService) {
		if id != "" {
			s.pharmacyID = id
		}
	}
}

// NewDistributionService creates a distribution service writing through wallets.
func NewDistributionService(wallets portssvc.WalletWriterSvc, options ...DistributionOption) portssvc.DistributionSvc {
	svc := &distributionService{
		wallets:      wallets,
		doctorRate:   DefaultDoctorCommissionRate,
		pharmacyRate: DefaultPharmacyCommissionRate,
		pharmacyID:   DefaultPharmacyID,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.DistributionSvc = (*distributionService)(nil)

// distributionTarget is where a payment's provider share goes.
type distributionTarget struct {
	ownerID     string
	ownerType   domain.OwnerType
	rate        decimal.Decimal
	description string
}

func (s *distributionService) Distribute(ctx context.Context, payment domain.Payment) (*domain.DistributionResult, error) {
	logger := s.GetLogger(ctx).With(
		slog.String("payment_id", payment.PaymentID),
		slog.String("payment_type", string(payment.PaymentType)),
	)

	if payment.PaymentStatus != domain.PaymentSuccess {
		return s.skip(ctx, payment, domain.SkipPaymentNotSucceeded), nil
	}
	if !payment.Amount.IsPositive() {
		return s.skip(ctx, payment, domain.SkipNonPositiveAmount), nil
	}

	var target distributionTarget
	switch payment.PaymentType {
	case domain.PaymentConsultation:
		if payment.DoctorID == "" {
			return s.skip(ctx, payment, domain.SkipMissingTarget), nil
		}
		target = distributionTarget{
			ownerID:     payment.DoctorID,
			ownerType:   domain.OwnerDoctor,
			rate:        s.doctorRate,
			description: "Consultation fee from patient - Payment ID: " + payment.PaymentID,
		}
	case domain.PaymentMedicine:
		target = distributionTarget{
			ownerID:     s.pharmacyID,
			ownerType:   domain.OwnerPharmacy,
			rate:        s.pharmacyRate,
			description: "Medicine order payment - Order ID: " + payment.MedicineOrderID,
		}
	default:
		return s.skip(ctx, payment, domain.SkipUnsupportedType), nil
	}

	share, commission, err := accounting.SplitCommission(payment.Amount, target.rate)
	if err != nil {
		return nil, err
	}
	if !share.IsPositive() {
		return s.skip(ctx, payment, domain.SkipNonPositiveAmount), nil
	}

	wallet, err := s.wallets.AppendTransaction(ctx, target.ownerID, target.ownerType, domain.Transaction{
		PaymentID:       payment.PaymentID,
		Type:            domain.Credit,
		Amount:          share,
		Description:     target.description,
		RelatedEntityID: payment.PatientID,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.skip(ctx, payment, domain.SkipAlreadyDistributed), nil
		}
		logger.Error("Failed to credit provider wallet",
			slog.String("owner_id", target.ownerID),
			slog.String("error", err.Error()))
		metrics.DistributionsTotal.WithLabelValues(string(payment.PaymentType), "error").Inc()
		return nil, err
	}

	credited := wallet.Transactions[len(wallet.Transactions)-1]
	metrics.DistributionsTotal.WithLabelValues(string(payment.PaymentType), string(domain.Distributed)).Inc()
	metrics.CommissionAmountTotal.WithLabelValues(string(payment.PaymentType)).Add(commission.InexactFloat64())
	logger.Info("Payment distributed",
		slog.String("owner_id", target.ownerID),
		slog.String("owner_type", string(target.ownerType)),
		slog.String("share", share.String()),
		slog.String("commission", commission.String()),
		slog.String("commission_rate", target.rate.String()))

	return &domain.DistributionResult{
		PaymentID:      payment.PaymentID,
		Outcome:        domain.Distributed,
		OwnerID:        target.ownerID,
		OwnerType:      target.ownerType,
		CreditedAmount: share,
		Commission:     commission,
		CommissionRate: target.rate,
		Transaction:    &credited,
	}, nil
}

func (s *distributionService) skip(ctx context.Context, payment domain.Payment, reason domain.SkipReason) *domain.DistributionResult {
	metrics.DistributionsTotal.WithLabelValues(string(payment.PaymentType), string(domain.DistributionSkipped)).Inc()
	s.LogInfo(ctx, "Payment distribution skipped",
		slog.String("payment_id", payment.PaymentID),
		slog.String("payment_status", string(payment.PaymentStatus)),
		slog.String("reason", string(reason)))
	return domain.SkippedDistribution(payment.PaymentID, reason)
}
