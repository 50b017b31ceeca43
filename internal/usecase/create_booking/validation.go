package create_booking

import (
	"fmt"
	"regexp"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/types"
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest проверяет параметры создания бронирования.
// Возвращает UTC-день и минуту отправления.
func validateRequest(req *Request) (time.Time, int, error) {
	if req.Date == "" {
		return time.Time{}, 0, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	day, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}

	if req.Language == "" || !domain.IsSupportedLanguage(req.Language) {
		return time.Time{}, 0, fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, req.Language)
	}

	if req.Adults < 0 || req.Children < 0 || req.Babies < 0 {
		return time.Time{}, 0, fmt.Errorf("%w: counts must not be negative", ErrInvalidInput)
	}
	if req.PartySize() < 1 {
		return time.Time{}, 0, fmt.Errorf("%w: party must have at least one person", ErrInvalidInput)
	}
	if req.PartySize() > domain.MaxPartySize {
		return time.Time{}, 0, fmt.Errorf("%w: party of %d exceeds maximum %d",
			ErrInvalidInput, req.PartySize(), domain.MaxPartySize)
	}

	if req.FirstName == "" || req.LastName == "" {
		return time.Time{}, 0, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if !emailRegexp.MatchString(req.Email) {
		return time.Time{}, 0, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if req.Message != nil && len(*req.Message) > domain.MaxNoteLength {
		return time.Time{}, 0, fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	minutes, err := slot.Minutes()
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}

	return day, minutes, nil
}
