package get_next_slot

import (
	"fmt"

	"github.com/dentwise/booking-service/internal/domain"
	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DoctorID == "" {
		return fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	if _, err := uuid.Parse(req.DoctorID); err != nil {
		return fmt.Errorf("%w: doctorID must be a valid UUID", ErrInvalidInput)
	}

	if req.HorizonDays < 0 || req.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: horizonDays must be between 1 and %d", ErrInvalidInput, domain.MaxHorizonDays)
	}

	return nil
}
