package domain

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "Mon, Jan 2" // короткая дата для UI, например "Tue, Oct 14"
)

// Next-slot search limits
const (
	DefaultHorizonDays = 7
	MaxHorizonDays     = 30
)

// Business validation constants
const (
	MaxReasonLength = 500
)

// OccupyingStatuses статусы, при которых запись занимает слот
// Используется при подсчете доступных слотов и при проверке конфликтов
var OccupyingStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusCompleted,
}

// IsValidStatus проверяет, что значение является известным статусом записи
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
