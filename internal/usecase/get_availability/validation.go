package get_availability

import (
	"fmt"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

// validateRequest проверяет параметры запроса доступности.
// Возвращает распарсенный UTC-день.
func validateRequest(req *Request) (time.Time, error) {
	if req.Date == "" {
		return time.Time{}, ErrInvalidDate
	}

	day, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	if req.Language == "" || !domain.IsSupportedLanguage(req.Language) {
		return time.Time{}, ErrInvalidLanguage
	}

	if req.Adults < 0 || req.Children < 0 || req.Babies < 0 {
		return time.Time{}, fmt.Errorf("%w: counts must not be negative", ErrInvalidPartySize)
	}
	if req.PartySize() > domain.MaxPartySize {
		return time.Time{}, fmt.Errorf("%w: party of %d exceeds maximum %d",
			ErrInvalidPartySize, req.PartySize(), domain.MaxPartySize)
	}

	return day, nil
}
