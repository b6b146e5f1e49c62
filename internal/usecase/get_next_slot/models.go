package get_next_slot

import (
	"time"

	"github.com/dentwise/booking-service/pkg/types"
)

// Request модель запроса на поиск ближайшего свободного слота
type Request struct {
	DoctorID    string    // ID врача (UUID)
	From        time.Time // Начало окна поиска (нулевое значение - "сегодня")
	HorizonDays int       // Горизонт поиска в днях (0 - значение по умолчанию)
}

// Response модель ответа с ближайшим свободным слотом
type Response struct {
	Found         bool             // Найден ли слот в пределах горизонта
	Date          time.Time        // Дата найденного слота
	StartTime     types.TimeString // Время начала слота
	FormattedDate string           // Дата в человекочитаемом виде ("Mon, Jan 2")
	FormattedTime string           // Время в 12-часовом формате ("9:00 AM")
}
