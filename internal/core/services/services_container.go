package services

import (
	portsrepo "github.com/SscSPs/healthconnect_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/healthconnect_wallet/internal/core/ports/services"
	"github.com/SscSPs/healthconnect_wallet/internal/platform/config"
	"github.com/SscSPs/healthconnect_wallet/internal/platform/lock"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker lock.Locker) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Wallet = NewWalletService(
		repos.WalletRepo,
		WithLocker(locker),
		WithAppendMaxAttempts(cfg.AppendMaxAttempts),
	)

	// Distribution writes through the wallet service so it shares its locking
	container.Distribution = NewDistributionService(
		container.Wallet,
		WithCommissionRates(cfg.DoctorCommissionRate, cfg.PharmacyCommissionRate),
		WithPharmacyID(cfg.DefaultPharmacyID),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.WalletSvcFacade = (*walletService)(nil)
	_ portssvc.DistributionSvc = (*distributionService)(nil)
)
