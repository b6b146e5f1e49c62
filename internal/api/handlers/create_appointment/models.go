package create_appointment

import (
	"time"

	"github.com/dentwise/booking-service/internal/domain"
	createAppointment "github.com/dentwise/booking-service/internal/usecase/create_appointment"
	"github.com/dentwise/booking-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	Reason    string `json:"reason,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	DoctorID  string    `json:"doctorId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID string) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:    userID,
		DoctorID:  r.DoctorID,
		Date:      date,
		StartTime: types.TimeString(r.StartTime),
		Reason:    r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	a := resp.Appointment
	return &AppointmentResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		DoctorID:  a.DoctorID,
		Date:      a.Date.Format(domain.DateFormat),
		StartTime: a.StartTime.String(),
		Reason:    a.Reason,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
}
