package bookings

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrCannotCancel бронирование нельзя отменить в текущем статусе
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
