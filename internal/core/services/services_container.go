package services

import (
	portsrepo "github.com/SscSPs/excise_register_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/excise_register_app/internal/core/ports/services"
	"github.com/SscSPs/excise_register_app/internal/platform/config"
	"github.com/SscSPs/excise_register_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	common := []ServiceOption{WithMetrics(m)}

	return &portssvc.ServiceContainer{
		SpiritReceipt: NewSpiritReceiptService(repos.SpiritReceiptRepo, common...),
		Bottling:      NewBottlingService(repos.BottlingRepo, repos.VatEventRepo, common...),
		CountryLiquor: NewCountryLiquorService(repos.CountryLiquorRepo, repos.BottlingRepo, common...),
		ExciseDuty:    NewExciseDutyService(repos.DutyRateRepo, repos.DutyLedgerRepo, common...),
		MasterLedger: NewMasterLedgerService(
			repos.MasterLedgerRepo,
			repos.SpiritReceiptRepo,
			repos.BottlingRepo,
			repos.VatEventRepo,
			WithReconciliationThreshold(cfg.ReconciliationThreshold),
			WithLedgerServiceOptions(common...),
		),
		VatEvent: NewVatEventService(repos.VatEventRepo, common...),
	}
}
