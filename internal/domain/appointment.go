package domain

import (
	"time"

	"github.com/dentwise/booking-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// Appointment represents a patient visit booked with a doctor
type Appointment struct {
	ID        string
	UserID    string
	DoctorID  string
	Date      time.Time // calendar day, time component is always midnight
	StartTime types.TimeString
	Reason    string
	Status    AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the appointment consumes its time slot
func (a *Appointment) IsOccupying() bool {
	return a.Status == StatusConfirmed || a.Status == StatusCompleted
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// DoctorAppointmentsFilter фильтр для выборки записей врача
type DoctorAppointmentsFilter struct {
	DoctorID         string             // Обязательный параметр
	Date             *time.Time         // Фильтр по дню (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные записи
}
