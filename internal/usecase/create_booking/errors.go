package create_booking

import "errors"

var (
	// ErrInvalidInput ошибка валидации входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input")

	// ErrSlotNotAvailable слот занят, заблокирован или не существует.
	// Включает проигрыш гонки за последние места (наружу уходит 409).
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTooLate до отправления осталось меньше минимального времени
	ErrTooLate = errors.New("create_booking: too close to departure")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("create_booking: internal error")
)
