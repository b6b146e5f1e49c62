package get_next_slot

import (
	"context"
	"time"

	"github.com/dentwise/booking-service/internal/usecase/get_available_slots"
)

// SlotsResolver интерфейс резолвера доступных слотов на день
// Реализуется usecase get_available_slots
type SlotsResolver interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
