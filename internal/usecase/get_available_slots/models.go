package get_available_slots

import (
	"time"

	"github.com/dentwise/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	DoctorID string    // ID врача (UUID)
	Date     time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	DoctorID string             // ID врача
	Date     time.Time          // Дата, на которую запрашивались слоты
	Slots    []types.TimeString // Свободные токены времени по возрастанию
}
