package get_availability

import "errors"

var (
	// ErrInvalidDate дата отсутствует или не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("get_availability: invalid or missing date")

	// ErrInvalidLanguage язык отсутствует или не поддерживается
	ErrInvalidLanguage = errors.New("get_availability: invalid or missing language")

	// ErrInvalidPartySize недопустимый состав группы
	ErrInvalidPartySize = errors.New("get_availability: invalid party size")

	// ErrInternal внутренняя ошибка (хранилище и т.п.)
	ErrInternal = errors.New("get_availability: internal error")
)
