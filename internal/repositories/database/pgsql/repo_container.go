package pgsql

import (
	portsrepo "github.com/SscSPs/excise_register_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	dutyRepo := newPgxDutyRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SpiritReceiptRepo: newPgxSpiritReceiptRepository(dbPool),
		BottlingRepo:      newPgxBottlingRepository(dbPool),
		CountryLiquorRepo: newPgxCountryLiquorRepository(dbPool),
		DutyRateRepo:      dutyRepo,
		DutyLedgerRepo:    dutyRepo,
		MasterLedgerRepo:  newPgxMasterLedgerRepository(dbPool),
		VatEventRepo:      newPgxVatEventRepository(dbPool),
	}
}
