package create_appointment

import (
	"time"

	"github.com/dentwise/booking-service/internal/domain"
	"github.com/dentwise/booking-service/pkg/types"
)

// Request модель запроса на создание записи на прием
type Request struct {
	UserID    string           // ID пользователя (UUID)
	DoctorID  string           // ID врача (UUID)
	Date      time.Time        // Дата приема
	StartTime types.TimeString // Время начала слота
	Reason    string           // Причина обращения (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
