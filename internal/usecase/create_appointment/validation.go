package create_appointment

import (
	"fmt"
	"time"

	"github.com/dentwise/booking-service/internal/domain"
	"github.com/dentwise/booking-service/pkg/types"
	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.UserID); err != nil {
		return fmt.Errorf("%w: userID must be a valid UUID", ErrInvalidInput)
	}

	if req.DoctorID == "" {
		return fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.DoctorID); err != nil {
		return fmt.Errorf("%w: doctorID must be a valid UUID", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date, now time.Time) error {
	if domain.NormalizeDate(date).Before(domain.NormalizeDate(now)) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlot проверяет, что время попадает в сетку слотов рабочего дня
func validateSlot(date time.Time, startTime types.TimeString) error {
	if !domain.IsWorkday(date) {
		return ErrClinicClosed
	}
	if !domain.IsBookableSlot(date, startTime) {
		return ErrInvalidSlot
	}
	return nil
}
