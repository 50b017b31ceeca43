package quota

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

// Repository репозиторий для работы с дневными квотами лодок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория квот
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForDay получает квоту на день. Отсутствие записи означает,
// что весь флот доступен (возвращается ErrQuotaNotFound).
func (r *Repository) GetForDay(ctx context.Context, day time.Time) (*domain.DailyBoatQuota, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day", "boats_available", "note", "created_at", "updated_at").
		From("daily_boat_quotas").
		Where(squirrel.Eq{"day": domain.NormalizeDay(day)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - build select query: %v", ErrBuildQuery, err)
	}

	var q domain.DailyBoatQuota
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&q.Day, &q.BoatsAvailable, &q.Note, &q.CreatedAt, &q.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrQuotaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - scan quota: %v", ErrScanRow, err)
	}

	return &q, nil
}

// Upsert создает или обновляет квоту на день
func (r *Repository) Upsert(ctx context.Context, q *domain.DailyBoatQuota) (*domain.DailyBoatQuota, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("daily_boat_quotas").
		Columns("day", "boats_available", "note").
		Values(domain.NormalizeDay(q.Day), q.BoatsAvailable, q.Note).
		Suffix(`ON CONFLICT (day) DO UPDATE
			SET boats_available = EXCLUDED.boats_available,
			    note = EXCLUDED.note,
			    updated_at = NOW()
			RETURNING day, boats_available, note, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var saved domain.DailyBoatQuota
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&saved.Day, &saved.BoatsAvailable, &saved.Note, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return &saved, nil
}

// Delete снимает квоту с дня (флот снова доступен целиком)
func (r *Repository) Delete(ctx context.Context, day time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("daily_boat_quotas").
		Where(squirrel.Eq{"day": domain.NormalizeDay(day)}).
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
		return ErrQuotaNotFound
	}

	return nil
}
