package day_quota

import (
	"context"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

type FleetService interface {
	GetQuota(ctx context.Context, day time.Time) (*domain.DailyBoatQuota, error)
	SetQuota(ctx context.Context, q *domain.DailyBoatQuota) (*domain.DailyBoatQuota, error)
	RemoveQuota(ctx context.Context, day time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
