package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SpiritReceiptRepo SpiritReceiptRepositoryFacade
	BottlingRepo      BottlingRepositoryFacade
	CountryLiquorRepo CountryLiquorRepositoryFacade
	DutyRateRepo      DutyRateRepositoryFacade
	DutyLedgerRepo    DutyLedgerRepositoryFacade
	MasterLedgerRepo  MasterLedgerRepositoryFacade
	VatEventRepo      VatEventRepositoryFacade
}
