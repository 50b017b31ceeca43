package boat

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/dbmetrics"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/psqlbuilder"
)

// Repository репозиторий для работы с флотом
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория флота
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает активные лодки в стабильном порядке (id ASC).
// Порядок важен: привязка лодок к смещениям отправления позиционная.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity", "status").
		From("boats").
		Where(squirrel.Eq{"status": domain.BoatStatusActive}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBoats(rows)
}

// List получает все лодки флота (включая на обслуживании), id ASC
func (r *Repository) List(ctx context.Context) ([]*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity", "status").
		From("boats").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBoats(rows)
}

// GetByID получает лодку по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity", "status").
		From("boats").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Boat
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&b.ID, &b.Name, &b.Capacity, &b.Status)
	if err == sql.ErrNoRows {
		return nil, ErrBoatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan boat: %v", ErrScanRow, err)
	}

	return &b, nil
}

// UpdateStatus переводит лодку между ACTIVE и MAINTENANCE
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BoatStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("boats").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBoatNotFound
	}

	return nil
}

func scanBoats(rows *sql.Rows) ([]*domain.Boat, error) {
	boats := make([]*domain.Boat, 0)

	for rows.Next() {
		var b domain.Boat
		if err := rows.Scan(&b.ID, &b.Name, &b.Capacity, &b.Status); err != nil {
			return nil, fmt.Errorf("%w: scanBoats - scan row: %v", ErrScanRow, err)
		}
		boats = append(boats, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBoats - rows error: %v", ErrScanRow, err)
	}

	return boats, nil
}
