package businesshours

import "errors"

var (
	// ErrBusinessHoursNotFound возвращается, когда расписание еще не настроено
	ErrBusinessHoursNotFound = errors.New("business hours are not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
