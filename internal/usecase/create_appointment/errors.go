package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidDate возвращается при записи на прошедшую дату
	ErrInvalidDate = errors.New("create_appointment: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт записи
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrShopClosed возвращается, когда салон закрыт весь день
	ErrShopClosed = errors.New("create_appointment: shop is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время начала не совпадает ни с одним слотом
	ErrInvalidTimeSlot = errors.New("create_appointment: start time is not an available slot")

	// ErrTooLateToBook возвращается, когда до начала осталось меньше минимального времени
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с другой записью
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrBusinessHoursNotConfigured расписание салона не настроено
	ErrBusinessHoursNotConfigured = errors.New("create_appointment: business hours are not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
