package get_fleet

import (
	"context"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

type FleetService interface {
	ListFleet(ctx context.Context) ([]*domain.Boat, error)
	SetBoatStatus(ctx context.Context, id int64, status domain.BoatStatus) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
