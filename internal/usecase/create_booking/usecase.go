package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/infra/cache"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/metrics"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/ptr"
)

// UseCase use case создания бронирования.
// Проверка занятости слота и вставка идут в одной сериализуемой транзакции
// с блокировкой строк, поэтому два конкурентных запроса на последние места
// не могут пройти оба.
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	fleetService FleetService
	txManager    TransactionManager
	cache        Cache
	notifier     PlanningNotifier
	schedule     domain.Schedule
	location     *time.Location
	timeProvider TimeProvider
	metrics      *metrics.Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	fleetService FleetService,
	txManager TransactionManager,
	c Cache,
	notifier PlanningNotifier,
	schedule domain.Schedule,
	location *time.Location,
	m *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		fleetService: fleetService,
		txManager:    txManager,
		cache:        c,
		notifier:     notifier,
		schedule:     schedule,
		location:     location,
		timeProvider: &RealTimeProvider{},
		metrics:      m,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute создает бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	day, minute, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: date=%s time=%s lang=%s party=%d",
		req.Date, req.Time, req.Language, req.PartySize())

	// 2. Слот должен существовать в расписании
	if !uc.schedule.AllowsStart(minute) || !uc.schedule.FitsBeforeClose(minute) {
		uc.logger.Warn("CreateBooking: %s %s is outside the departure pattern", req.Date, req.Time)
		return nil, ErrSlotNotAvailable
	}

	// 3. Минимальное время до отправления, по местной зоне бизнеса
	now := uc.timeProvider.Now()
	if isPastLocalDay(now, day, uc.location) {
		return nil, ErrSlotNotAvailable
	}
	if isSameLocalDay(now, day, uc.location) {
		if minute < minutesOfDayIn(now, uc.location)+uc.schedule.MinBookingDelay {
			uc.logger.Warn("CreateBooking: %s %s is too close to departure", req.Date, req.Time)
			return nil, ErrTooLate
		}
	}

	start := domain.SlotInstant(day, minute)
	tourEnd := start.Add(time.Duration(uc.schedule.TourDurationMinutes) * time.Minute)
	tripEnd := start.Add(time.Duration(uc.schedule.TripMinutes()) * time.Minute)

	// 4. Блокировки
	dayStart, dayEnd := domain.DayWindowUTC(day)
	blocks, err := uc.blockRepo.ListOverlapping(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load blocks for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load blocks: %v", ErrInternal, err)
	}
	for _, blk := range blocks {
		if blk.Overlaps(start, tourEnd) {
			uc.logger.Warn("CreateBooking: %s %s is blocked: %s", req.Date, req.Time, blk.Reason)
			return nil, ErrSlotNotAvailable
		}
	}

	// 5. Лодка слота: смещение минуты внутри цикла однозначно задает лодку
	boatSlot, err := uc.resolveBoat(ctx, day, minute, req.BoatID)
	if err != nil {
		return nil, err
	}

	booking := uc.buildBooking(req, day, start, tourEnd, boatSlot.Boat)

	// 6. Проверка занятости и вставка в одной сериализуемой транзакции.
	// ListConflicting блокирует строки лодки FOR UPDATE, поэтому результат
	// проверки не может устареть до коммита.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Буфер учитывается в обе стороны: предыдущий тур занимает лодку
		// еще BufferMinutes после своего end_time
		from := start.Add(-time.Duration(uc.schedule.BufferMinutes) * time.Minute)

		conflicts, err := uc.bookingRepo.ListConflicting(txCtx, boatSlot.Boat.ID, from, tripEnd)
		if err != nil {
			return fmt.Errorf("%w: failed to load conflicting bookings: %v", ErrInternal, err)
		}

		seatsTaken := 0
		for _, b := range conflicts {
			if !b.IsActive() {
				continue
			}
			if b.StartTime.Equal(start) {
				if b.Language != req.Language {
					return ErrSlotNotAvailable
				}
				seatsTaken += b.NumberOfPeople
				continue
			}
			return ErrSlotNotAvailable
		}

		if boatSlot.Boat.Capacity-seatsTaken < booking.NumberOfPeople {
			return ErrSlotNotAvailable
		}

		_, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot %s %s lost to a concurrent booking or full", req.Date, req.Time)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: transaction failed for %s %s: %v", req.Date, req.Time, err)
		return nil, err
	}

	// 7. Кеш и планинг обновляются после коммита
	if err := uc.cache.DeleteByPrefix(ctx, cache.AvailabilityDatePrefix(req.Date)); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate availability cache for %s: %v", req.Date, err)
	}
	uc.notifier.PlanningChanged(ctx)
	if uc.metrics != nil {
		uc.metrics.BookingsCreated.Inc()
	}

	uc.logger.Info("CreateBooking: created booking id=%s ref=%s boat=%d %s %s",
		booking.ID, booking.PublicReference, booking.BoatID, req.Date, req.Time)

	return toResponse(booking), nil
}

// resolveBoat находит лодку, отходящую в указанную минуту.
// Явно заданная лодка должна совпадать с выведенной из смещения.
func (uc *UseCase) resolveBoat(ctx context.Context, day time.Time, minute int, forcedBoatID *int64) (*domain.BoatSlot, error) {
	boatSlots, err := uc.fleetService.ListBoatSlotsForDay(ctx, day)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load fleet: %v", err)
		return nil, fmt.Errorf("%w: failed to load fleet: %v", ErrInternal, err)
	}

	offset := (minute - uc.schedule.OpenMinutes) % uc.schedule.CycleMinutes
	if offset < 0 {
		offset += uc.schedule.CycleMinutes
	}

	for i := range boatSlots {
		bs := &boatSlots[i]
		if bs.OffsetMinutes != offset {
			continue
		}
		if forcedBoatID != nil && *forcedBoatID != bs.Boat.ID {
			return nil, ErrSlotNotAvailable
		}
		return bs, nil
	}

	return nil, ErrSlotNotAvailable
}

func (uc *UseCase) buildBooking(req *Request, day time.Time, start, end time.Time, boat *domain.Boat) *domain.Booking {
	id := uuid.New()

	status := domain.StatusPending
	if req.Paid {
		status = domain.StatusConfirmed
	}

	var phone, message *string
	if req.Phone != nil && *req.Phone != "" {
		phone = ptr.Ptr(*req.Phone)
	}
	if req.Message != nil && *req.Message != "" {
		message = ptr.Ptr(*req.Message)
	}

	// Приватизация занимает всю лодку
	adults, children, babies := req.Adults, req.Children, req.Babies
	if req.IsPrivate {
		adults, children, babies = boat.Capacity, 0, 0
	}

	return &domain.Booking{
		ID:              id.String(),
		PublicReference: newPublicReference(id, day),
		Date:            day,
		StartTime:       start,
		EndTime:         end,
		BoatID:          boat.ID,
		Language:        req.Language,
		Adults:          adults,
		Children:        children,
		Babies:          babies,
		NumberOfPeople:  adults + children + babies,
		TotalPrice:      calculatePrice(adults, children, babies),
		Status:          status,
		Checkin:         domain.CheckinNone,
		IsPaid:          req.Paid,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           phone,
		Message:         message,
	}
}
