package fleet

import "errors"

var (
	// ErrBoatNotFound лодка не найдена
	ErrBoatNotFound = errors.New("fleet.service: boat not found")

	// ErrQuotaNotFound квота на день не задана
	ErrQuotaNotFound = errors.New("fleet.service: daily quota not found")

	// ErrInvalidQuota недопустимое значение квоты
	ErrInvalidQuota = errors.New("fleet.service: invalid quota value")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("fleet.service: internal error")
)
