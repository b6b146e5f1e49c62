package doctors

import (
	"context"

	"github.com/dentwise/booking-service/internal/domain"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
	ListActive(ctx context.Context) ([]*domain.Doctor, error)
	ListAll(ctx context.Context) ([]*domain.Doctor, error)
	Delete(ctx context.Context, id string) error
}

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	ReassignDoctor(ctx context.Context, fromDoctorID, toDoctorID string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
