package get_available_slots

import (
	"context"
	"time"

	"github.com/dentwise/booking-service/internal/domain"
	"github.com/dentwise/booking-service/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	// FindBookedTimes возвращает занятые токены времени врача на день
	// с учетом переданных статусов
	FindBookedTimes(ctx context.Context, doctorID string, date time.Time, statuses []domain.AppointmentStatus) ([]types.TimeString, error)
}

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
