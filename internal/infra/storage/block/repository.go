package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/dbmetrics"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/psqlbuilder"
)

var blockColumns = []string{"id", "start_time", "end_time", "scope", "reason", "created_at"}

// Repository репозиторий для работы с блокировками расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListOverlapping получает блокировки, пересекающие окно [from, to],
// отсортированные по началу (start_time ASC).
// Порядок важен: при полностью закрытом дне наружу уходит причина
// первой подходящей блокировки.
func (r *Repository) ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_intervals").
		Where(squirrel.LtOrEq{"start_time": to}).
		Where(squirrel.GtOrEq{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// List получает все блокировки начиная с указанного момента (админский список)
func (r *Repository) List(ctx context.Context, from time.Time) ([]*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_intervals").
		Where(squirrel.GtOrEq{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// GetByID получает блокировку по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_intervals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.BlockedInterval
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&b.ID, &b.Start, &b.End, &b.Scope, &b.Reason, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	return &b, nil
}

// Create создает новую блокировку
func (r *Repository) Create(ctx context.Context, b *domain.BlockedInterval) (*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_intervals").
		Columns("start_time", "end_time", "scope", "reason").
		Values(b.Start, b.End, b.Scope, b.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// Delete удаляет блокировку по идентификатору
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_intervals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

func scanBlocks(rows *sql.Rows) ([]*domain.BlockedInterval, error) {
	blocks := make([]*domain.BlockedInterval, 0)

	for rows.Next() {
		var b domain.BlockedInterval
		if err := rows.Scan(&b.ID, &b.Start, &b.End, &b.Scope, &b.Reason, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
