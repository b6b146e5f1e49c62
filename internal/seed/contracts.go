package seed

import (
	"context"

	"github.com/dentwise/booking-service/internal/domain"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error)
	Exists(ctx context.Context, name, email string) (bool, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	CreateBatch(ctx context.Context, appointments []*domain.Appointment) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
