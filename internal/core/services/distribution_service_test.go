package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/healthconnect_wallet/internal/core/ports/services"
	"github.com/SscSPs/healthconnect_wallet/internal/core/services"
	"github.com/SscSPs/healthconnect_wallet/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DistributionServiceTestSuite struct {
	suite.Suite
	repo        *memory.WalletRepository
	wallets     portssvc.WalletSvcFacade
	distributor portssvc.DistributionSvc
	ctx         context.Context
}

func (suite *DistributionServiceTestSuite) SetupTest() {
	suite.repo = memory.NewWalletRepository()
	suite.wallets = services.NewWalletService(suite.repo)
	suite.distributor = services.NewDistributionService(suite.wallets)
	suite.ctx = context.Background()
}

func consultation(id, doctorID, amount string) domain.Payment {
	return domain.Payment{
		PaymentID:     id,
		PatientID:     "patient_001",
		PaymentType:   domain.PaymentConsultation,
		Amount:        dec(amount),
		PaymentStatus: domain.PaymentSuccess,
		DoctorID:      doctorID,
	}
}

func medicine(id, orderID, amount string) domain.Payment {
	return domain.Payment{
		PaymentID:       id,
		PatientID:       "patient_002",
		PaymentType:     domain.PaymentMedicine,
		Amount:          dec(amount),
		PaymentStatus:   domain.PaymentSuccess,
		MedicineOrderID: orderID,
	}
}

func (suite *DistributionServiceTestSuite) TestScenarioA_ConsultationCreditsDoctor() {
	res, err := suite.distributor.Distribute(suite.ctx, consultation("pay_A", "doctor_001", "1500.00"))
	suite.Require().NoError(err)
	suite.Equal(domain.Distributed, res.Outcome)
	suite.True(dec("1200.00").Equal(res.CreditedAmount))
	suite.True(dec("300.00").Equal(res.Commission))
	suite.True(dec("0.20").Equal(res.CommissionRate))

	w, err := suite.repo.FindWalletByOwner(suite.ctx, "doctor_001", domain.OwnerDoctor)
	suite.Require().NoError(err)
	suite.True(dec("1200.00").Equal(w.Balance))
	suite.Require().Len(w.Transactions, 1)

	txn := w.Transactions[0]
	suite.Equal(domain.Credit, txn.Type)
	suite.Equal("pay_A", txn.PaymentID)
	suite.Equal("patient_001", txn.RelatedEntityID)
	suite.Equal("Consultation fee from patient - Payment ID: pay_A", txn.Description)
}

func (suite *DistributionServiceTestSuite) TestScenarioD_MedicineAlwaysCreditsDefaultPharmacy() {
	_, err := suite.distributor.Distribute(suite.ctx, medicine("pay_D1", "order_77", "300.00"))
	suite.Require().NoError(err)
	res, err := suite.distributor.Distribute(suite.ctx, medicine("pay_D2", "order_78", "450.00"))
	suite.Require().NoError(err)
	suite.Equal("pharmacy_001", res.OwnerID)
	suite.Equal(domain.OwnerPharmacy, res.OwnerType)

	w, err := suite.repo.FindWalletByOwner(suite.ctx, "pharmacy_001", domain.OwnerPharmacy)
	suite.Require().NoError(err)
	suite.True(dec("675.00").Equal(w.Balance), "got %s", w.Balance)
	suite.Require().Len(w.Transactions, 2)
	suite.Equal("Medicine order payment - Order ID: order_77", w.Transactions[0].Description)

	pharmacies, err := suite.wallets.ListWalletsByType(suite.ctx, domain.OwnerPharmacy)
	suite.Require().NoError(err)
	suite.Len(pharmacies, 1)
}

func (suite *DistributionServiceTestSuite) TestCommissionSplitIsRoundedAndNeverBooked() {
	amounts := []string{"0.01", "0.05", "99.99", "333.33", "1234.56"}
	for i, amount := range amounts {
		res, err := suite.distributor.Distribute(suite.ctx, consultation(fmt.Sprintf("pay_%d", i), "doctor_002", amount))
		suite.Require().NoError(err)
		want := dec(amount).Mul(dec("0.80")).Round(2)
		suite.True(want.Equal(res.CreditedAmount), "amount %s: got %s want %s", amount, res.CreditedAmount, want)
		suite.True(dec(amount).Equal(res.CreditedAmount.Add(res.Commission)))
	}

	w, err := suite.repo.FindWalletByOwner(suite.ctx, "doctor_002", domain.OwnerDoctor)
	suite.Require().NoError(err)
	for _, txn := range w.Transactions {
		suite.Equal(domain.Credit, txn.Type, "no commission entry is ever appended")
	}

	stats, err := suite.wallets.GetStatistics(suite.ctx)
	suite.Require().NoError(err)
	suite.EqualValues(1, stats.ForOwnerType(domain.OwnerDoctor).WalletCount)
	suite.EqualValues(0, stats.ForOwnerType(domain.OwnerPharmacy).WalletCount)
}

func (suite *DistributionServiceTestSuite) TestSkips() {
	notPaid := consultation("pay_1", "doctor_001", "100")
	notPaid.PaymentStatus = domain.PaymentPending
	failed := consultation("pay_2", "doctor_001", "100")
	failed.PaymentStatus = domain.PaymentFailed
	unsupported := consultation("pay_5", "doctor_001", "100")
	unsupported.PaymentType = domain.PaymentType("LAB_TEST")

	tests := []struct {
		name    string
		payment domain.Payment
		reason  domain.SkipReason
	}{
		{"pending", notPaid, domain.SkipPaymentNotSucceeded},
		{"failed", failed, domain.SkipPaymentNotSucceeded},
		{"zero amount", consultation("pay_3", "doctor_001", "0"), domain.SkipNonPositiveAmount},
		{"negative amount", medicine("pay_4", "order_1", "-20"), domain.SkipNonPositiveAmount},
		{"unsupported type", unsupported, domain.SkipUnsupportedType},
		{"missing doctor", consultation("pay_6", "", "100"), domain.SkipMissingTarget},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			res, err := suite.distributor.Distribute(suite.ctx, tt.payment)
			suite.Require().NoError(err)
			suite.True(res.Skipped())
			suite.Equal(tt.reason, res.SkipReason)
			suite.Nil(res.Transaction)
		})
	}

	stats, err := suite.wallets.GetStatistics(suite.ctx)
	suite.Require().NoError(err)
	suite.True(stats.TotalBalance.IsZero())
	suite.EqualValues(0, stats.ForOwnerType(domain.OwnerDoctor).WalletCount)
}

func (suite *DistributionServiceTestSuite) TestDuplicateDistributionIsSkipped() {
	payment := consultation("pay_dup", "doctor_001", "500")

	first, err := suite.distributor.Distribute(suite.ctx, payment)
	suite.Require().NoError(err)
	suite.False(first.Skipped())

	second, err := suite.distributor.Distribute(suite.ctx, payment)
	suite.Require().NoError(err)
	suite.True(second.Skipped())
	suite.Equal(domain.SkipAlreadyDistributed, second.SkipReason)

	balance, err := suite.wallets.GetBalance(suite.ctx, "doctor_001", domain.OwnerDoctor)
	suite.Require().NoError(err)
	suite.True(dec("400").Equal(balance))
}

func (suite *DistributionServiceTestSuite) TestConfiguredRatesAndPharmacy() {
	distributor := services.NewDistributionService(suite.wallets,
		services.WithCommissionRates(dec("0.25"), dec("0.05")),
		services.WithPharmacyID("pharmacy_central"),
	)

	res, err := distributor.Distribute(suite.ctx, medicine("pay_m", "order_9", "200"))
	suite.Require().NoError(err)
	suite.Equal("pharmacy_central", res.OwnerID)
	suite.True(dec("190").Equal(res.CreditedAmount))

	res, err = distributor.Distribute(suite.ctx, consultation("pay_c", "doctor_003", "200"))
	suite.Require().NoError(err)
	suite.True(dec("150").Equal(res.CreditedAmount))
}

func TestDistributionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DistributionServiceTestSuite))
}

func TestDistribute_PersistenceErrorIsReturned(t *testing.T) {
	ctx := context.Background()
	wallets := new(MockWalletWriterSvc)
	distributor := services.NewDistributionService(wallets)

	wallets.On("AppendTransaction", ctx, "doctor_001", domain.OwnerDoctor, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Credit && txn.PaymentID == "pay_x" && txn.Amount.Equal(dec("80"))
	})).Return(nil, apperrors.ErrPersistenceUnavailable).Once()

	res, err := distributor.Distribute(ctx, consultation("pay_x", "doctor_001", "100"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPersistenceUnavailable)
	assert.Nil(t, res)
	wallets.AssertExpectations(t)
}
