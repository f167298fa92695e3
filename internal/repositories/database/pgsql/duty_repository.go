package pgsql

import (
	"context"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portsrepo "github.com/SscSPs/excise_register_app/internal/core/ports/repositories"
	"github.com/SscSPs/excise_register_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDutyRepository stores the rate schedule and the monthly duty ledger.
type PgxDutyRepository struct {
	BaseRepository
}

func newPgxDutyRepository(pool *pgxpool.Pool) *PgxDutyRepository {
	return &PgxDutyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.DutyRateRepositoryFacade   = (*PgxDutyRepository)(nil)
	_ portsrepo.DutyLedgerRepositoryWithTx = (*PgxDutyRepository)(nil)
)

const dutyRateColumns = `
	rate_id, category, subcategory, rate_per_unit, effective_from, effective_to, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanDutyRate(row rowScanner) (domain.DutyRate, error) {
	var r domain.DutyRate
	err := row.Scan(
		&r.RateID, &r.Category, &r.Subcategory, &r.RatePerUnit, &r.EffectiveFrom, &r.EffectiveTo, &r.IsActive,
		&r.CreatedAt, &r.CreatedBy, &r.LastUpdatedAt, &r.LastUpdatedBy,
	)
	return r, err
}

// SaveDutyRate inserts a schedule row.
func (r *PgxDutyRepository) SaveDutyRate(ctx context.Context, rate domain.DutyRate) error {
	query := `INSERT INTO duty_rates (` + dutyRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		rate.RateID, rate.Category, rate.Subcategory, rate.RatePerUnit, dayOf(rate.EffectiveFrom), rate.EffectiveTo, rate.IsActive,
		rate.CreatedAt, rate.CreatedBy, rate.LastUpdatedAt, rate.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteErr(err, "duty rate "+rate.RateID)
	}
	return nil
}

// ListDutyRates returns every row for a category and subcategory; selection happens in the engine.
func (r *PgxDutyRepository) ListDutyRates(ctx context.Context, category, subcategory string) ([]domain.DutyRate, error) {
	query := `SELECT ` + dutyRateColumns + ` FROM duty_rates
		WHERE category = $1 AND subcategory = $2 ORDER BY effective_from DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, category, subcategory)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query duty rates for "+category+"/"+subcategory, err)
	}
	return collect(rows, "duty rate", scanDutyRate)
}

const dutyLedgerColumns = `
	entry_id, month_year, category, subcategory, total_units_issued, applied_rate, applied_rate_id,
	duty_accrued, opening_balance, total_payments, closing_balance, status,
	created_at, created_by, last_updated_at, last_updated_by`

func scanDutyLedger(row rowScanner) (domain.DutyLedgerEntry, error) {
	var e domain.DutyLedgerEntry
	err := row.Scan(
		&e.EntryID, &e.MonthYear, &e.Category, &e.Subcategory, &e.TotalUnitsIssued, &e.AppliedRate, &e.AppliedRateID,
		&e.DutyAccrued, &e.OpeningBalance, &e.TotalPayments, &e.ClosingBalance, &e.Status,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	return e, err
}

// SaveDutyLedgerEntry inserts a month.
func (r *PgxDutyRepository) SaveDutyLedgerEntry(ctx context.Context, e domain.DutyLedgerEntry) error {
	query := `INSERT INTO duty_ledger_entries (` + dutyLedgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`
	_, err := r.Pool.Exec(ctx, query,
		e.EntryID, e.MonthYear, e.Category, e.Subcategory, e.TotalUnitsIssued, e.AppliedRate, e.AppliedRateID,
		e.DutyAccrued, e.OpeningBalance, e.TotalPayments, e.ClosingBalance, e.Status,
		e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteErr(err, "duty ledger "+e.MonthYear+" "+e.Category+"/"+e.Subcategory)
	}
	return nil
}

// SaveDutyPayment inserts the challan and rewrites the ledger totals under a row lock.
func (r *PgxDutyRepository) SaveDutyPayment(ctx context.Context, p domain.DutyPayment, apply portsrepo.DutyPaymentApplier) (*domain.DutyLedgerEntry, []domain.DutyPayment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	// Concurrent challans for the same month serialise on this row lock.
	ledger, err := scanDutyLedger(tx.QueryRow(ctx,
		`SELECT `+dutyLedgerColumns+` FROM duty_ledger_entries WHERE entry_id = $1 FOR UPDATE;`, p.LedgerEntryID))
	if err != nil {
		return nil, nil, wrapFindErr(err, "duty ledger "+p.LedgerEntryID)
	}
	payments, err := listDutyPayments(ctx, tx, p.LedgerEntryID)
	if err != nil {
		return nil, nil, err
	}
	payments = append(payments, p)
	if err := apply(&ledger, payments); err != nil {
		return nil, nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO duty_payments (payment_id, ledger_entry_id, amount, payment_date, challan_no,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		p.PaymentID, p.LedgerEntryID, p.Amount, dayOf(p.PaymentDate), p.ChallanNo,
		p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		return nil, nil, wrapWriteErr(err, "duty payment challan "+p.ChallanNo)
	}

	_, err = tx.Exec(ctx, `
		UPDATE duty_ledger_entries SET
			total_payments = $2, closing_balance = $3, status = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE entry_id = $1;`,
		ledger.EntryID, ledger.TotalPayments, ledger.ClosingBalance, ledger.Status,
		ledger.LastUpdatedAt, ledger.LastUpdatedBy,
	)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to update duty ledger "+ledger.EntryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return &ledger, payments, nil
}

func (r *PgxDutyRepository) FindDutyLedgerByID(ctx context.Context, entryID string) (*domain.DutyLedgerEntry, error) {
	query := `SELECT ` + dutyLedgerColumns + ` FROM duty_ledger_entries WHERE entry_id = $1;`
	e, err := scanDutyLedger(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, wrapFindErr(err, "duty ledger "+entryID)
	}
	return &e, nil
}

func (r *PgxDutyRepository) FindDutyLedgerByMonth(ctx context.Context, monthYear, category, subcategory string) (*domain.DutyLedgerEntry, error) {
	query := `SELECT ` + dutyLedgerColumns + ` FROM duty_ledger_entries
		WHERE month_year = $1 AND category = $2 AND subcategory = $3;`
	e, err := scanDutyLedger(r.Pool.QueryRow(ctx, query, monthYear, category, subcategory))
	if err != nil {
		return nil, wrapFindErr(err, "duty ledger "+monthYear+" "+category+"/"+subcategory)
	}
	return &e, nil
}

// ListDutyLedgerEntries pages through months, newest first, keyed by (month, entry ID).
func (r *PgxDutyRepository) ListDutyLedgerEntries(ctx context.Context, limit int, nextToken *string) (portsrepo.Page[domain.DutyLedgerEntry], error) {
	var w whereBuilder
	if nextToken != nil && *nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(*nextToken, 2)
		if err != nil {
			return portsrepo.Page[domain.DutyLedgerEntry]{}, invalidToken(err)
		}
		w.add("(month_year, entry_id) < (?, ?)", fields[0], fields[1])
	}
	query := `SELECT ` + dutyLedgerColumns + ` FROM duty_ledger_entries` + w.clause() +
		` ORDER BY month_year DESC, entry_id DESC` + w.limitClause(limit+1)

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return portsrepo.Page[domain.DutyLedgerEntry]{}, apperrors.NewAppError(500, "failed to query duty ledger", err)
	}
	entries, err := collect(rows, "duty ledger", scanDutyLedger)
	if err != nil {
		return portsrepo.Page[domain.DutyLedgerEntry]{}, err
	}
	return paginate(entries, limit, func(e domain.DutyLedgerEntry) string {
		return pagination.EncodeMultiFieldToken(e.MonthYear, e.EntryID)
	}), nil
}

// ListDutyPayments returns the challans of one ledger entry in payment order.
func (r *PgxDutyRepository) ListDutyPayments(ctx context.Context, ledgerEntryID string) ([]domain.DutyPayment, error) {
	return listDutyPayments(ctx, r.Pool, ledgerEntryID)
}

// paymentQuerier is satisfied by both the pool and a pgx.Tx.
type paymentQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func listDutyPayments(ctx context.Context, q paymentQuerier, ledgerEntryID string) ([]domain.DutyPayment, error) {
	rows, err := q.Query(ctx, `
		SELECT payment_id, ledger_entry_id, amount, payment_date, challan_no,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM duty_payments WHERE ledger_entry_id = $1 ORDER BY payment_date, created_at;`, ledgerEntryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query duty payments for "+ledgerEntryID, err)
	}
	return collect(rows, "duty payment", func(row rowScanner) (domain.DutyPayment, error) {
		var p domain.DutyPayment
		err := row.Scan(&p.PaymentID, &p.LedgerEntryID, &p.Amount, &p.PaymentDate, &p.ChallanNo,
			&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy)
		return p, err
	})
}
