package get_next_available_slot

import (
	"context"

	getNextSlot "github.com/dentwise/booking-service/internal/usecase/get_next_slot"
)

type GetNextSlotUseCase interface {
	Execute(ctx context.Context, req *getNextSlot.Request) (*getNextSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
