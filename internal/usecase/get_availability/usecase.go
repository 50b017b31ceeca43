package get_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/infra/cache"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/metrics"
)

// UseCase use case вычисления доступных слотов на день.
// Ответ выводится из бронирований, блокировок, квоты и расписания;
// нигде не хранится и кешируется на короткий TTL.
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	fleetService FleetService
	cache        Cache
	cacheTTL     time.Duration
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
	c Cache,
	cacheTTL time.Duration,
	schedule domain.Schedule,
	location *time.Location,
	m *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		fleetService: fleetService,
		cache:        c,
		cacheTTL:     cacheTTL,
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

// Execute вычисляет доступные слоты на день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	day, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Пустая группа: пустой ответ без похода в хранилище
	if req.PartySize() == 0 {
		return &Response{Date: req.Date, AvailableSlots: []string{}}, nil
	}

	// 3. Кеш
	cacheKey := cache.AvailabilityKey(req.Date, req.Language, req.Adults, req.Children, req.Babies)
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
		var resp Response
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		uc.logger.Warn("GetAvailability: failed to decode cached response for %s", cacheKey)
	}

	if uc.metrics != nil {
		uc.metrics.AvailabilityComputations.Inc()
	}

	resp, err := uc.compute(ctx, req, day)
	if err != nil {
		return nil, err
	}

	// 8. Кешируем готовый ответ
	if encoded, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, encoded, uc.cacheTTL); err != nil {
			uc.logger.Warn("GetAvailability: failed to cache response for %s: %v", cacheKey, err)
		}
	}

	return resp, nil
}

func (uc *UseCase) compute(ctx context.Context, req *Request, day time.Time) (*Response, error) {
	now := uc.timeProvider.Now()

	// Прошедший день: пустой ответ без похода в хранилище
	if isPastLocalDay(now, day, uc.location) {
		return &Response{Date: req.Date, AvailableSlots: []string{}}, nil
	}

	dayStart, dayEnd := domain.DayWindowUTC(day)

	// 4. Блокировки дня. Полная блокировка (scope=day) отсекает день
	// до загрузки флота и бронирований.
	blocks, err := uc.blockRepo.ListOverlapping(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load blocks for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load blocks: %v", ErrInternal, err)
	}

	if blk := fullDayBlock(blocks, dayStart, dayEnd); blk != nil {
		uc.logger.Info("GetAvailability: day %s fully blocked: %s", req.Date, blk.Reason)
		reason := blk.Reason
		return &Response{Date: req.Date, AvailableSlots: []string{}, BlockedReason: &reason}, nil
	}

	// 5. Флот дня: активные лодки, обрезанные квотой, привязанные к смещениям
	boatSlots, err := uc.fleetService.ListBoatSlotsForDay(ctx, day)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load fleet for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load fleet: %v", ErrInternal, err)
	}

	if len(boatSlots) == 0 {
		return &Response{Date: req.Date, AvailableSlots: []string{}}, nil
	}

	// 6. Бронирования дня
	bookings, err := uc.bookingRepo.ListForDay(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load bookings for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	// 7. Перебор кандидатов
	partySize := req.PartySize()
	today := isSameLocalDay(now, day, uc.location)
	minAllowed := 0
	if today {
		minAllowed = minutesOfDayIn(now, uc.location) + uc.schedule.MinBookingDelay
	}

	available := make([]int, 0)
	for minute, bs := range candidateMinutes(uc.schedule, boatSlots) {
		if today && minute < minAllowed {
			continue
		}

		start := domain.SlotInstant(day, minute)
		tourEnd := start.Add(time.Duration(uc.schedule.TourDurationMinutes) * time.Minute)
		tripEnd := start.Add(time.Duration(uc.schedule.TripMinutes()) * time.Minute)

		if blockedAt(blocks, start, tourEnd) {
			continue
		}

		if boatEligible(bs, start, tripEnd, req.Language, partySize, bookings) {
			available = append(available, minute)
		}
	}

	sort.Ints(available)

	slots := make([]string, 0, len(available))
	for _, minute := range available {
		slots = append(slots, domain.FormatSlot(minute))
	}

	resp := &Response{Date: req.Date, AvailableSlots: slots}

	// День без слотов при наличии блокировок: объясняем причиной первой
	if len(slots) == 0 && len(blocks) > 0 {
		reason := blocks[0].Reason
		resp.BlockedReason = &reason
	}

	return resp, nil
}
