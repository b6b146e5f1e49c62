package get_next_available_slot

import (
	"github.com/dentwise/booking-service/internal/domain"
	getNextSlot "github.com/dentwise/booking-service/internal/usecase/get_next_slot"
)

// NextSlotResponse HTTP response model
// При found=false остальные поля опускаются
type NextSlotResponse struct {
	Found         bool   `json:"found"`
	Date          string `json:"date,omitempty"`
	StartTime     string `json:"startTime,omitempty"`
	FormattedDate string `json:"formattedDate,omitempty"`
	FormattedTime string `json:"formattedTime,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getNextSlot.Response) *NextSlotResponse {
	if !resp.Found {
		return &NextSlotResponse{Found: false}
	}

	return &NextSlotResponse{
		Found:         true,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		FormattedDate: resp.FormattedDate,
		FormattedTime: resp.FormattedTime,
	}
}
