package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portsrepo "github.com/SscSPs/excise_register_app/internal/core/ports/repositories"
	"github.com/SscSPs/excise_register_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBottlingRepository struct {
	BaseRepository
}

func newPgxBottlingRepository(pool *pgxpool.Pool) portsrepo.BottlingRepositoryWithTx {
	return &PgxBottlingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BottlingRepositoryWithTx = (*PgxBottlingRepository)(nil)

const bottlingColumns = `
	entry_id, batch_id, session_no, production_date, product_name, status,
	bottle_counts, avg_strength, mfm_total_al,
	spirit_bottled_bl, spirit_bottled_al, difference_found_al, production_wastage, production_increase,
	allowable_wastage, chargeable_wastage, is_chargeable, verified_by, completed_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanBottling(row rowScanner) (domain.BottlingProductionEntry, error) {
	var e domain.BottlingProductionEntry
	err := row.Scan(
		&e.EntryID, &e.BatchID, &e.SessionNo, &e.ProductionDate, &e.ProductName, &e.Status,
		&e.BottleCounts, &e.AvgStrength, &e.MfmTotalAl,
		&e.SpiritBottledBl, &e.SpiritBottledAl, &e.DifferenceFoundAl, &e.ProductionWastage, &e.ProductionIncrease,
		&e.AllowableWastage, &e.ChargeableWastage, &e.IsChargeable, &e.VerifiedBy, &e.CompletedAt,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	if e.BottleCounts == nil {
		e.BottleCounts = domain.BottleCounts{}
	}
	return e, err
}

func bottleCountsOrEmpty(c domain.BottleCounts) domain.BottleCounts {
	if c == nil {
		return domain.BottleCounts{}
	}
	return c
}

// SaveBottling inserts a new production session.
func (r *PgxBottlingRepository) SaveBottling(ctx context.Context, e domain.BottlingProductionEntry) error {
	query := `INSERT INTO bottling_productions (` + bottlingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);`
	_, err := r.Pool.Exec(ctx, query,
		e.EntryID, e.BatchID, e.SessionNo, dayOf(e.ProductionDate), e.ProductName, e.Status,
		bottleCountsOrEmpty(e.BottleCounts), e.AvgStrength, e.MfmTotalAl,
		e.SpiritBottledBl, e.SpiritBottledAl, e.DifferenceFoundAl, e.ProductionWastage, e.ProductionIncrease,
		e.AllowableWastage, e.ChargeableWastage, e.IsChargeable, e.VerifiedBy, e.CompletedAt,
		e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteErr(err, "bottling session "+e.BatchID+"/"+strconv.Itoa(e.SessionNo))
	}
	return nil
}

// UpdateBottling persists a declared, metered or finalized session.
// A session that is already COMPLETED in storage is never touched.
func (r *PgxBottlingRepository) UpdateBottling(ctx context.Context, e domain.BottlingProductionEntry) error {
	query := `
		UPDATE bottling_productions SET
			status = $2, bottle_counts = $3, avg_strength = $4, mfm_total_al = $5,
			spirit_bottled_bl = $6, spirit_bottled_al = $7, difference_found_al = $8,
			production_wastage = $9, production_increase = $10, allowable_wastage = $11,
			chargeable_wastage = $12, is_chargeable = $13, verified_by = $14, completed_at = $15,
			last_updated_at = $16, last_updated_by = $17
		WHERE entry_id = $1 AND status <> $18;`
	tag, err := r.Pool.Exec(ctx, query,
		e.EntryID, e.Status, bottleCountsOrEmpty(e.BottleCounts), e.AvgStrength, e.MfmTotalAl,
		e.SpiritBottledBl, e.SpiritBottledAl, e.DifferenceFoundAl,
		e.ProductionWastage, e.ProductionIncrease, e.AllowableWastage,
		e.ChargeableWastage, e.IsChargeable, e.VerifiedBy, e.CompletedAt,
		e.LastUpdatedAt, e.LastUpdatedBy, domain.ProductionCompleted,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update bottling session "+e.EntryID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.FindBottlingByID(ctx, e.EntryID); err != nil {
		return err
	}
	return apperrors.NewStateTransitionError("bottling session " + e.EntryID + " is already completed")
}

// FindBottlingByID retrieves a session by its ID.
func (r *PgxBottlingRepository) FindBottlingByID(ctx context.Context, entryID string) (*domain.BottlingProductionEntry, error) {
	query := `SELECT ` + bottlingColumns + ` FROM bottling_productions WHERE entry_id = $1;`
	e, err := scanBottling(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, wrapFindErr(err, "bottling session "+entryID)
	}
	return &e, nil
}

// FindBottlingBySession retrieves a session by batch and session number.
func (r *PgxBottlingRepository) FindBottlingBySession(ctx context.Context, batchID string, sessionNo int) (*domain.BottlingProductionEntry, error) {
	query := `SELECT ` + bottlingColumns + ` FROM bottling_productions WHERE batch_id = $1 AND session_no = $2;`
	e, err := scanBottling(r.Pool.QueryRow(ctx, query, batchID, sessionNo))
	if err != nil {
		return nil, wrapFindErr(err, "bottling session "+batchID+"/"+strconv.Itoa(sessionNo))
	}
	return &e, nil
}

// ListCompletedBottlingByDate returns the sessions completed for one production day.
func (r *PgxBottlingRepository) ListCompletedBottlingByDate(ctx context.Context, date time.Time) ([]domain.BottlingProductionEntry, error) {
	query := `SELECT ` + bottlingColumns + ` FROM bottling_productions
		WHERE production_date = $1 AND status = $2 ORDER BY batch_id, session_no;`
	rows, err := r.Pool.Query(ctx, query, dayOf(date), domain.ProductionCompleted)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query completed bottling sessions", err)
	}
	return collect(rows, "bottling session", scanBottling)
}

// ListBottling pages through sessions, newest production date first.
func (r *PgxBottlingRepository) ListBottling(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (portsrepo.Page[domain.BottlingProductionEntry], error) {
	var w whereBuilder
	w.dateRange("production_date", rng)
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return portsrepo.Page[domain.BottlingProductionEntry]{}, invalidToken(err)
		}
		w.add("(production_date, created_at) < (?, ?)", lastDate, lastCreatedAt)
	}
	query := `SELECT ` + bottlingColumns + ` FROM bottling_productions` + w.clause() +
		` ORDER BY production_date DESC, created_at DESC` + w.limitClause(limit+1)

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return portsrepo.Page[domain.BottlingProductionEntry]{}, apperrors.NewAppError(500, "failed to query bottling sessions", err)
	}
	entries, err := collect(rows, "bottling session", scanBottling)
	if err != nil {
		return portsrepo.Page[domain.BottlingProductionEntry]{}, err
	}
	return paginate(entries, limit, func(e domain.BottlingProductionEntry) string {
		return pagination.EncodeToken(e.ProductionDate, e.CreatedAt)
	}), nil
}
