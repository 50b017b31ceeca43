package get_planning

import (
	"context"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

type BookingsService interface {
	PlanningForDay(ctx context.Context, day string) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
