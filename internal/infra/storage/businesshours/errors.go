package businesshours

import "errors"

var (
	// ErrBusinessHoursNotFound расписание салона еще не настроено
	ErrBusinessHoursNotFound = errors.New("businesshours.repository: business hours not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("businesshours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("businesshours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("businesshours.repository: failed to scan row")
)
