package schedule

import "errors"

var (
	// ErrBlockNotFound блокировка не найдена
	ErrBlockNotFound = errors.New("schedule.service: blocked interval not found")

	// ErrInvalidBlock недопустимые границы или параметры блокировки
	ErrInvalidBlock = errors.New("schedule.service: invalid blocked interval")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
