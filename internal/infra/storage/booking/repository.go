package booking

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

var bookingColumns = []string{
	"id",
	"public_reference",
	"date",
	"start_time",
	"end_time",
	"boat_id",
	"language",
	"adults",
	"children",
	"babies",
	"number_of_people",
	"total_price",
	"status",
	"checkin_status",
	"is_paid",
	"first_name",
	"last_name",
	"email",
	"phone",
	"message",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Создание с проверкой занятости слота всегда должно идти в сериализуемой
// транзакции, чтобы два конкурентных запроса не заняли последние места.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"public_reference",
			"date",
			"start_time",
			"end_time",
			"boat_id",
			"language",
			"adults",
			"children",
			"babies",
			"number_of_people",
			"total_price",
			"status",
			"checkin_status",
			"is_paid",
			"first_name",
			"last_name",
			"email",
			"phone",
			"message",
		).
		Values(
			b.ID,
			b.PublicReference,
			b.Date,
			b.StartTime,
			b.EndTime,
			b.BoatID,
			b.Language,
			b.Adults,
			b.Children,
			b.Babies,
			b.NumberOfPeople,
			b.TotalPrice,
			b.Status,
			b.Checkin,
			b.IsPaid,
			b.FirstName,
			b.LastName,
			b.Email,
			b.Phone,
			b.Message,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по UUID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByPublicReference получает бронирование по публичной ссылке
func (r *Repository) GetByPublicReference(ctx context.Context, ref string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"public_reference": ref}, "GetByPublicReference")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return b, nil
}

// ListForDay получает все не отменённые бронирования за плавающее UTC-окно дня,
// отсортированные по времени отправления.
// Внутри транзакции добавляет FOR UPDATE для блокировки строк
// (путь создания бронирования).
func (r *Repository) ListForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"start_time": dayStart}).
		Where(squirrel.LtOrEq{"start_time": dayEnd}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListConflicting получает активные бронирования лодки, пересекающие окно
// [from, to). Внутри транзакции блокирует строки FOR UPDATE.
func (r *Repository) ListConflicting(ctx context.Context, boatID int64, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"boat_id": boatID}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConflicting - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConflicting - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListWithFilter получает бронирования с гибкой фильтрацией
// (админский список, планинг за период)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_time": *filter.To})
	}
	if filter.BoatID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"boat_id": *filter.BoatID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Cancel отменяет бронирование
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
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
		return ErrBookingNotFound
	}

	return nil
}

// ExpireStaleHolds отменяет неоплаченные PENDING бронирования, созданные
// раньше указанного момента. Возвращает отменённые бронирования (id + дата)
// для инвалидации кеша по затронутым дням.
func (r *Repository) ExpireStaleHolds(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Eq{"is_paid": false}).
		Where(squirrel.Lt{"created_at": before}).
		Suffix("RETURNING id, public_reference, date, start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ExpireStaleHolds - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ExpireStaleHolds - execute update: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	expired := make([]*domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.PublicReference, &b.Date, &b.StartTime); err != nil {
			return nil, fmt.Errorf("%w: ExpireStaleHolds - scan row: %v", ErrScanRow, err)
		}
		expired = append(expired, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ExpireStaleHolds - rows error: %v", ErrScanRow, err)
	}

	return expired, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&b.ID,
		&b.PublicReference,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.BoatID,
		&b.Language,
		&b.Adults,
		&b.Children,
		&b.Babies,
		&b.NumberOfPeople,
		&b.TotalPrice,
		&b.Status,
		&b.Checkin,
		&b.IsPaid,
		&b.FirstName,
		&b.LastName,
		&b.Email,
		&b.Phone,
		&b.Message,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
