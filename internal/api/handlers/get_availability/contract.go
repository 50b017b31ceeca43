package get_availability

import (
	"context"

	getAvailability "github.com/kalicatt/boat-booking-saas-sub003/internal/usecase/get_availability"
)

type GetAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
