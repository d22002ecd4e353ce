package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("get_available_slots: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт записи
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrBusinessHoursNotConfigured расписание салона не настроено
	ErrBusinessHoursNotConfigured = errors.New("get_available_slots: business hours are not configured")

	// ErrInvalidConfiguration сохраненное расписание некорректно
	ErrInvalidConfiguration = errors.New("get_available_slots: invalid business hours configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
