package get_staff_appointments

import (
	"errors"
	"strconv"

	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

var errMissingDate = errors.New("date is required")

// ToServiceRequest формирует запрос сервиса из query параметров
func ToServiceRequest(staffID int64, dateStr, includeInactiveStr string) (*models.GetStaffScheduleRequest, error) {
	if dateStr == "" {
		return nil, errMissingDate
	}

	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	includeInactive := false
	if includeInactiveStr != "" {
		includeInactive, err = strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
	}

	return &models.GetStaffScheduleRequest{
		StaffID:         staffID,
		Date:            date,
		IncludeInactive: includeInactive,
	}, nil
}
