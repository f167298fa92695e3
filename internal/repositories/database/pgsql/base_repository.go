package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portsrepo "github.com/SscSPs/excise_register_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// wrapWriteErr maps a unique violation to ErrDuplicate and everything else to a 500.
func wrapWriteErr(err error, what string) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, what)
	}
	return apperrors.NewAppError(500, "failed to save "+what, err)
}

// wrapFindErr maps pgx.ErrNoRows to a not-found error.
func wrapFindErr(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(what + " not found")
	}
	return apperrors.NewAppError(500, "failed to load "+what, err)
}

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends a condition; each "?" in cond is replaced by the next placeholder.
func (w *whereBuilder) add(cond string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", "$"+strconv.Itoa(len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) dateRange(column string, rng domain.DateRange) {
	if rng.From != nil {
		w.add(column+" >= ?", domain.TruncateToDate(*rng.From))
	}
	if rng.To != nil {
		w.add(column+" <= ?", domain.TruncateToDate(*rng.To))
	}
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// limitClause appends the LIMIT argument and returns its clause.
func (w *whereBuilder) limitClause(limit int) string {
	w.args = append(w.args, limit)
	return " LIMIT $" + strconv.Itoa(len(w.args))
}

// paginate trims the extra row fetched beyond limit and derives the next token from the last kept row.
func paginate[T any](rows []T, limit int, token func(T) string) portsrepo.Page[T] {
	if len(rows) <= limit {
		return portsrepo.Page[T]{Items: rows}
	}
	next := token(rows[limit-1])
	return portsrepo.Page[T]{Items: rows[:limit], NextToken: &next}
}

// collect scans every row with scan, wrapping failures with what.
func collect[T any](rows pgx.Rows, what string, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan "+what+" row", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating "+what+" rows", err)
	}
	return out, nil
}

func invalidToken(err error) error {
	return apperrors.NewAppError(400, "invalid nextToken", err)
}

func dayOf(t time.Time) time.Time {
	return domain.TruncateToDate(t)
}
