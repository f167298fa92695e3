package pgsql

import (
	"context"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portsrepo "github.com/SscSPs/excise_register_app/internal/core/ports/repositories"
	"github.com/SscSPs/excise_register_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCountryLiquorRepository struct {
	BaseRepository
}

func newPgxCountryLiquorRepository(pool *pgxpool.Pool) portsrepo.CountryLiquorRepositoryWithTx {
	return &PgxCountryLiquorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CountryLiquorRepositoryWithTx = (*PgxCountryLiquorRepository)(nil)

// The four count sections are stored as JSONB keyed by band then size.
const countryLiquorColumns = `
	entry_id, entry_date, opening_counts, receipt_counts, issue_counts, wastage_counts,
	totals, production_fees, source_rega_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCountryLiquor(row rowScanner) (domain.CountryLiquorIssueEntry, error) {
	var e domain.CountryLiquorIssueEntry
	var sourceID *string
	err := row.Scan(
		&e.EntryID, &e.EntryDate, &e.Opening, &e.Receipt, &e.Issue, &e.Wastage,
		&e.Totals, &e.ProductionFees, &sourceID,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	if sourceID != nil {
		e.SourceRegAEntryID = *sourceID
	}
	return e, err
}

func bandCountsOrEmpty(b domain.BandCounts) domain.BandCounts {
	if b == nil {
		return domain.BandCounts{}
	}
	return b
}

// SaveCountryLiquorIssue inserts a Reg-B day.
func (r *PgxCountryLiquorRepository) SaveCountryLiquorIssue(ctx context.Context, e domain.CountryLiquorIssueEntry) error {
	var sourceID *string
	if e.SourceRegAEntryID != "" {
		sourceID = &e.SourceRegAEntryID
	}
	query := `INSERT INTO country_liquor_issues (` + countryLiquorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := r.Pool.Exec(ctx, query,
		e.EntryID, dayOf(e.EntryDate),
		bandCountsOrEmpty(e.Opening), bandCountsOrEmpty(e.Receipt), bandCountsOrEmpty(e.Issue), bandCountsOrEmpty(e.Wastage),
		e.Totals, e.ProductionFees, sourceID,
		e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteErr(err, "country liquor issue "+e.EntryID)
	}
	return nil
}

// FindCountryLiquorIssueByID retrieves a Reg-B entry by its ID.
func (r *PgxCountryLiquorRepository) FindCountryLiquorIssueByID(ctx context.Context, entryID string) (*domain.CountryLiquorIssueEntry, error) {
	query := `SELECT ` + countryLiquorColumns + ` FROM country_liquor_issues WHERE entry_id = $1;`
	e, err := scanCountryLiquor(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, wrapFindErr(err, "country liquor issue "+entryID)
	}
	return &e, nil
}

// ListCountryLiquorIssues pages through Reg-B entries, newest first.
func (r *PgxCountryLiquorRepository) ListCountryLiquorIssues(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (portsrepo.Page[domain.CountryLiquorIssueEntry], error) {
	var w whereBuilder
	w.dateRange("entry_date", rng)
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return portsrepo.Page[domain.CountryLiquorIssueEntry]{}, invalidToken(err)
		}
		w.add("(entry_date, created_at) < (?, ?)", lastDate, lastCreatedAt)
	}
	query := `SELECT ` + countryLiquorColumns + ` FROM country_liquor_issues` + w.clause() +
		` ORDER BY entry_date DESC, created_at DESC` + w.limitClause(limit+1)

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return portsrepo.Page[domain.CountryLiquorIssueEntry]{}, apperrors.NewAppError(500, "failed to query country liquor issues", err)
	}
	entries, err := collect(rows, "country liquor issue", scanCountryLiquor)
	if err != nil {
		return portsrepo.Page[domain.CountryLiquorIssueEntry]{}, err
	}
	return paginate(entries, limit, func(e domain.CountryLiquorIssueEntry) string {
		return pagination.EncodeToken(e.EntryDate, e.CreatedAt)
	}), nil
}
