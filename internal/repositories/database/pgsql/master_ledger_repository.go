package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portsrepo "github.com/SscSPs/excise_register_app/internal/core/ports/repositories"
	"github.com/SscSPs/excise_register_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMasterLedgerRepository struct {
	BaseRepository
}

func newPgxMasterLedgerRepository(pool *pgxpool.Pool) portsrepo.MasterLedgerRepositoryWithTx {
	return &PgxMasterLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MasterLedgerRepositoryWithTx = (*PgxMasterLedgerRepository)(nil)

const masterLedgerColumns = `
	entry_id, entry_date,
	opening_bl, opening_al, receipt_bl, receipt_al, issue_bl, issue_al,
	wastage_bl, wastage_al, closing_bl, closing_al, wastage_breakdown,
	physical_closing_bl, physical_closing_al, variance, is_reconciled, reconciled_by, reconciled_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanMasterLedger(row rowScanner) (domain.MasterLedgerEntry, error) {
	var e domain.MasterLedgerEntry
	err := row.Scan(
		&e.EntryID, &e.EntryDate,
		&e.OpeningBl, &e.OpeningAl, &e.ReceiptBl, &e.ReceiptAl, &e.IssueBl, &e.IssueAl,
		&e.WastageBl, &e.WastageAl, &e.ClosingBl, &e.ClosingAl, &e.WastageBreakdown,
		&e.PhysicalClosingBl, &e.PhysicalClosingAl, &e.Variance, &e.IsReconciled, &e.ReconciledBy, &e.ReconciledAt,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	return e, err
}

// UpsertMasterLedger writes the entry for its date. On conflict the row keeps
// its ID and creation audit; everything else is replaced.
func (r *PgxMasterLedgerRepository) UpsertMasterLedger(ctx context.Context, e domain.MasterLedgerEntry) error {
	query := `INSERT INTO master_ledger_entries (` + masterLedgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (entry_date) DO UPDATE SET
			opening_bl = EXCLUDED.opening_bl, opening_al = EXCLUDED.opening_al,
			receipt_bl = EXCLUDED.receipt_bl, receipt_al = EXCLUDED.receipt_al,
			issue_bl = EXCLUDED.issue_bl, issue_al = EXCLUDED.issue_al,
			wastage_bl = EXCLUDED.wastage_bl, wastage_al = EXCLUDED.wastage_al,
			closing_bl = EXCLUDED.closing_bl, closing_al = EXCLUDED.closing_al,
			wastage_breakdown = EXCLUDED.wastage_breakdown,
			physical_closing_bl = EXCLUDED.physical_closing_bl, physical_closing_al = EXCLUDED.physical_closing_al,
			variance = EXCLUDED.variance, is_reconciled = EXCLUDED.is_reconciled,
			reconciled_by = EXCLUDED.reconciled_by, reconciled_at = EXCLUDED.reconciled_at,
			last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;`
	_, err := r.Pool.Exec(ctx, query,
		e.EntryID, dayOf(e.EntryDate),
		e.OpeningBl, e.OpeningAl, e.ReceiptBl, e.ReceiptAl, e.IssueBl, e.IssueAl,
		e.WastageBl, e.WastageAl, e.ClosingBl, e.ClosingAl, e.WastageBreakdown,
		e.PhysicalClosingBl, e.PhysicalClosingAl, e.Variance, e.IsReconciled, e.ReconciledBy, e.ReconciledAt,
		e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert master ledger for "+dayOf(e.EntryDate).Format(time.DateOnly), err)
	}
	return nil
}

// FindMasterLedgerByDate retrieves the entry for a day.
func (r *PgxMasterLedgerRepository) FindMasterLedgerByDate(ctx context.Context, date time.Time) (*domain.MasterLedgerEntry, error) {
	query := `SELECT ` + masterLedgerColumns + ` FROM master_ledger_entries WHERE entry_date = $1;`
	e, err := scanMasterLedger(r.Pool.QueryRow(ctx, query, dayOf(date)))
	if err != nil {
		return nil, wrapFindErr(err, "master ledger for "+dayOf(date).Format(time.DateOnly))
	}
	return &e, nil
}

// FindLatestMasterLedgerBefore retrieves the closest earlier entry, which carries the opening balance.
func (r *PgxMasterLedgerRepository) FindLatestMasterLedgerBefore(ctx context.Context, date time.Time) (*domain.MasterLedgerEntry, error) {
	query := `SELECT ` + masterLedgerColumns + ` FROM master_ledger_entries
		WHERE entry_date < $1 ORDER BY entry_date DESC LIMIT 1;`
	e, err := scanMasterLedger(r.Pool.QueryRow(ctx, query, dayOf(date)))
	if err != nil {
		return nil, wrapFindErr(err, "master ledger before "+dayOf(date).Format(time.DateOnly))
	}
	return &e, nil
}

// ListMasterLedger pages through days, newest first. Dates are unique so the token is the date alone.
func (r *PgxMasterLedgerRepository) ListMasterLedger(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (portsrepo.Page[domain.MasterLedgerEntry], error) {
	var w whereBuilder
	w.dateRange("entry_date", rng)
	if nextToken != nil && *nextToken != "" {
		lastDate, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return portsrepo.Page[domain.MasterLedgerEntry]{}, invalidToken(err)
		}
		w.add("entry_date < ?", lastDate)
	}
	query := `SELECT ` + masterLedgerColumns + ` FROM master_ledger_entries` + w.clause() +
		` ORDER BY entry_date DESC` + w.limitClause(limit+1)

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return portsrepo.Page[domain.MasterLedgerEntry]{}, apperrors.NewAppError(500, "failed to query master ledger", err)
	}
	entries, err := collect(rows, "master ledger", scanMasterLedger)
	if err != nil {
		return portsrepo.Page[domain.MasterLedgerEntry]{}, err
	}
	return paginate(entries, limit, func(e domain.MasterLedgerEntry) string {
		return pagination.EncodeDateBasedToken(e.EntryDate)
	}), nil
}
