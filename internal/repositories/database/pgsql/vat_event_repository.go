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

type PgxVatEventRepository struct {
	BaseRepository
}

func newPgxVatEventRepository(pool *pgxpool.Pool) portsrepo.VatEventRepositoryWithTx {
	return &PgxVatEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VatEventRepositoryWithTx = (*PgxVatEventRepository)(nil)

const vatEventColumns = `
	event_id, vat_code, event_date, event_type, adjustment_type, reason,
	quantity_bl, quantity_al, dead_stock_bl, dead_stock_al, batch_id, mfm_al, remarks,
	created_at, created_by, last_updated_at, last_updated_by`

func scanVatEvent(row rowScanner) (domain.VatEvent, error) {
	var e domain.VatEvent
	err := row.Scan(
		&e.EventID, &e.VatCode, &e.EventDate, &e.EventType, &e.AdjustmentType, &e.Reason,
		&e.QuantityBl, &e.QuantityAl, &e.DeadStockBl, &e.DeadStockAl, &e.BatchID, &e.MfmAl, &e.Remarks,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	return e, err
}

// SaveVatEvent appends a Reg-74 event. Events are never updated.
func (r *PgxVatEventRepository) SaveVatEvent(ctx context.Context, e domain.VatEvent) error {
	query := `INSERT INTO vat_events (` + vatEventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`
	_, err := r.Pool.Exec(ctx, query,
		e.EventID, e.VatCode, dayOf(e.EventDate), e.EventType, e.AdjustmentType, e.Reason,
		e.QuantityBl, e.QuantityAl, e.DeadStockBl, e.DeadStockAl, e.BatchID, e.MfmAl, e.Remarks,
		e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteErr(err, "vat event "+e.EventID)
	}
	return nil
}

func (r *PgxVatEventRepository) listWhere(ctx context.Context, cond string, arg any) ([]domain.VatEvent, error) {
	query := `SELECT ` + vatEventColumns + ` FROM vat_events WHERE ` + cond + ` ORDER BY event_date, created_at;`
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vat events", err)
	}
	return collect(rows, "vat event", scanVatEvent)
}

// ListVatEventsByVat returns a vat's full history, oldest first.
func (r *PgxVatEventRepository) ListVatEventsByVat(ctx context.Context, vatCode string) ([]domain.VatEvent, error) {
	return r.listWhere(ctx, "vat_code = $1", vatCode)
}

func (r *PgxVatEventRepository) ListVatEventsByDate(ctx context.Context, date time.Time) ([]domain.VatEvent, error) {
	return r.listWhere(ctx, "event_date = $1", dayOf(date))
}

func (r *PgxVatEventRepository) ListVatEventsByBatch(ctx context.Context, batchID string) ([]domain.VatEvent, error) {
	return r.listWhere(ctx, "batch_id = $1", batchID)
}

// ListVatEvents pages through events, newest first.
func (r *PgxVatEventRepository) ListVatEvents(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (portsrepo.Page[domain.VatEvent], error) {
	var w whereBuilder
	w.dateRange("event_date", rng)
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return portsrepo.Page[domain.VatEvent]{}, invalidToken(err)
		}
		w.add("(event_date, created_at) < (?, ?)", lastDate, lastCreatedAt)
	}
	query := `SELECT ` + vatEventColumns + ` FROM vat_events` + w.clause() +
		` ORDER BY event_date DESC, created_at DESC` + w.limitClause(limit+1)

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return portsrepo.Page[domain.VatEvent]{}, apperrors.NewAppError(500, "failed to query vat events", err)
	}
	events, err := collect(rows, "vat event", scanVatEvent)
	if err != nil {
		return portsrepo.Page[domain.VatEvent]{}, err
	}
	return paginate(events, limit, func(e domain.VatEvent) string {
		return pagination.EncodeToken(e.EventDate, e.CreatedAt)
	}), nil
}
