package closures

import "errors"

var (
	// ErrClosureNotFound возвращается, когда закрытие не найдено
	ErrClosureNotFound = errors.New("closure not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidPeriod возвращается при некорректном периоде выборки
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
