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

type PgxSpiritReceiptRepository struct {
	BaseRepository
}

func newPgxSpiritReceiptRepository(pool *pgxpool.Pool) portsrepo.SpiritReceiptRepositoryWithTx {
	return &PgxSpiritReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SpiritReceiptRepositoryWithTx = (*PgxSpiritReceiptRepository)(nil)

const spiritReceiptColumns = `
	entry_id, receipt_date, arrival_date, permit_no, vehicle_no, consignor_name, spirit_type,
	advised_bl, advised_al, advised_strength, advised_mass_kg, laden_weight_kg, unladen_weight_kg,
	avg_density, avg_temperature, received_strength,
	received_mass_kg, received_bl, received_al, transit_wastage_bl, transit_wastage_al, transit_increase_al,
	allowable_wastage, chargeable_wastage, is_chargeable, amendment_reason,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSpiritReceipt(row rowScanner) (domain.SpiritReceiptEntry, error) {
	var e domain.SpiritReceiptEntry
	err := row.Scan(
		&e.EntryID, &e.ReceiptDate, &e.ArrivalDate, &e.PermitNo, &e.VehicleNo, &e.ConsignorName, &e.SpiritType,
		&e.AdvisedBl, &e.AdvisedAl, &e.AdvisedStrength, &e.AdvisedMassKg, &e.LadenWeightKg, &e.UnladenWeightKg,
		&e.AvgDensity, &e.AvgTemperature, &e.ReceivedStrength,
		&e.ReceivedMassKg, &e.ReceivedBl, &e.ReceivedAl, &e.TransitWastageBl, &e.TransitWastageAl, &e.TransitIncreaseAl,
		&e.AllowableWastage, &e.ChargeableWastage, &e.IsChargeable, &e.AmendmentReason,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	return e, err
}

// SaveSpiritReceipt inserts a new Reg-76 receipt.
func (r *PgxSpiritReceiptRepository) SaveSpiritReceipt(ctx context.Context, e domain.SpiritReceiptEntry) error {
	query := `INSERT INTO spirit_receipts (` + spiritReceiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30);`
	_, err := r.Pool.Exec(ctx, query,
		e.EntryID, dayOf(e.ReceiptDate), e.ArrivalDate, e.PermitNo, e.VehicleNo, e.ConsignorName, e.SpiritType,
		e.AdvisedBl, e.AdvisedAl, e.AdvisedStrength, e.AdvisedMassKg, e.LadenWeightKg, e.UnladenWeightKg,
		e.AvgDensity, e.AvgTemperature, e.ReceivedStrength,
		e.ReceivedMassKg, e.ReceivedBl, e.ReceivedAl, e.TransitWastageBl, e.TransitWastageAl, e.TransitIncreaseAl,
		e.AllowableWastage, e.ChargeableWastage, e.IsChargeable, e.AmendmentReason,
		e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy,
	)
	if err != nil {
		return wrapWriteErr(err, "spirit receipt "+e.EntryID)
	}
	return nil
}

// UpdateSpiritReceipt rewrites every measured and derived column of an amended receipt.
func (r *PgxSpiritReceiptRepository) UpdateSpiritReceipt(ctx context.Context, e domain.SpiritReceiptEntry) error {
	query := `
		UPDATE spirit_receipts SET
			receipt_date = $2, arrival_date = $3, permit_no = $4, vehicle_no = $5, consignor_name = $6, spirit_type = $7,
			advised_bl = $8, advised_al = $9, advised_strength = $10, advised_mass_kg = $11,
			laden_weight_kg = $12, unladen_weight_kg = $13, avg_density = $14, avg_temperature = $15, received_strength = $16,
			received_mass_kg = $17, received_bl = $18, received_al = $19,
			transit_wastage_bl = $20, transit_wastage_al = $21, transit_increase_al = $22,
			allowable_wastage = $23, chargeable_wastage = $24, is_chargeable = $25, amendment_reason = $26,
			last_updated_at = $27, last_updated_by = $28
		WHERE entry_id = $1;`
	tag, err := r.Pool.Exec(ctx, query,
		e.EntryID, dayOf(e.ReceiptDate), e.ArrivalDate, e.PermitNo, e.VehicleNo, e.ConsignorName, e.SpiritType,
		e.AdvisedBl, e.AdvisedAl, e.AdvisedStrength, e.AdvisedMassKg,
		e.LadenWeightKg, e.UnladenWeightKg, e.AvgDensity, e.AvgTemperature, e.ReceivedStrength,
		e.ReceivedMassKg, e.ReceivedBl, e.ReceivedAl,
		e.TransitWastageBl, e.TransitWastageAl, e.TransitIncreaseAl,
		e.AllowableWastage, e.ChargeableWastage, e.IsChargeable, e.AmendmentReason,
		e.LastUpdatedAt, e.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update spirit receipt "+e.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("spirit receipt " + e.EntryID + " not found")
	}
	return nil
}

// FindSpiritReceiptByID retrieves a receipt by its ID.
func (r *PgxSpiritReceiptRepository) FindSpiritReceiptByID(ctx context.Context, entryID string) (*domain.SpiritReceiptEntry, error) {
	query := `SELECT ` + spiritReceiptColumns + ` FROM spirit_receipts WHERE entry_id = $1;`
	e, err := scanSpiritReceipt(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, wrapFindErr(err, "spirit receipt "+entryID)
	}
	return &e, nil
}

// ListSpiritReceiptsByDate returns the receipts of one day in creation order.
func (r *PgxSpiritReceiptRepository) ListSpiritReceiptsByDate(ctx context.Context, date time.Time) ([]domain.SpiritReceiptEntry, error) {
	query := `SELECT ` + spiritReceiptColumns + ` FROM spirit_receipts WHERE receipt_date = $1 ORDER BY created_at, entry_id;`
	rows, err := r.Pool.Query(ctx, query, dayOf(date))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query spirit receipts by date", err)
	}
	return collect(rows, "spirit receipt", scanSpiritReceipt)
}

// ListSpiritReceipts pages through receipts, newest first.
func (r *PgxSpiritReceiptRepository) ListSpiritReceipts(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) (portsrepo.Page[domain.SpiritReceiptEntry], error) {
	var w whereBuilder
	w.dateRange("receipt_date", rng)
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return portsrepo.Page[domain.SpiritReceiptEntry]{}, invalidToken(err)
		}
		w.add("(receipt_date, created_at) < (?, ?)", lastDate, lastCreatedAt)
	}
	query := `SELECT ` + spiritReceiptColumns + ` FROM spirit_receipts` + w.clause() +
		` ORDER BY receipt_date DESC, created_at DESC` + w.limitClause(limit+1)

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return portsrepo.Page[domain.SpiritReceiptEntry]{}, apperrors.NewAppError(500, "failed to query spirit receipts", err)
	}
	entries, err := collect(rows, "spirit receipt", scanSpiritReceipt)
	if err != nil {
		return portsrepo.Page[domain.SpiritReceiptEntry]{}, err
	}
	return paginate(entries, limit, func(e domain.SpiritReceiptEntry) string {
		return pagination.EncodeToken(e.ReceiptDate, e.CreatedAt)
	}), nil
}
