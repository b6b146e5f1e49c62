package models

import (
	"time"

	"github.com/dentwise/booking-service/internal/domain"
	"github.com/dentwise/booking-service/pkg/avatar"
	"github.com/dentwise/booking-service/pkg/phone"
)

// Response модели

// DoctorResponse ответ с данными врача
type DoctorResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Specialty        string  `json:"specialty"`
	Bio              *string `json:"bio,omitempty"`
	Gender           string  `json:"gender"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone,omitempty"`
	Area             *string `json:"area,omitempty"`
	ImageURL         string  `json:"imageUrl"`
	IsActive         bool    `json:"isActive"`
	AppointmentCount int     `json:"appointmentCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DoctorListResponse ответ со списком врачей
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

// Методы конвертации

// FromDomainDoctor конвертирует domain модель в DTO
// Для врачей без фото подставляется сгенерированный аватар,
// телефон приводится к формату (XXX) XXX-XXXX
func FromDomainDoctor(d *domain.Doctor) *DoctorResponse {
	if d == nil {
		return nil
	}

	imageURL := avatar.URL(d.Name)
	if d.ImageURL != nil && *d.ImageURL != "" {
		imageURL = *d.ImageURL
	}

	var phoneFormatted *string
	if d.Phone != nil && *d.Phone != "" {
		formatted := phone.FormatUS(*d.Phone)
		phoneFormatted = &formatted
	}

	return &DoctorResponse{
		ID:               d.ID,
		Name:             d.Name,
		Specialty:        d.Specialty,
		Bio:              d.Bio,
		Gender:           string(d.Gender),
		Email:            d.Email,
		Phone:            phoneFormatted,
		Area:             d.Area,
		ImageURL:         imageURL,
		IsActive:         d.IsActive,
		AppointmentCount: d.AppointmentCount,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// FromDomainDoctorList конвертирует список domain моделей в DTO
func FromDomainDoctorList(doctors []*domain.Doctor) *DoctorListResponse {
	result := &DoctorListResponse{
		Doctors: make([]DoctorResponse, 0, len(doctors)),
	}
	for _, d := range doctors {
		if resp := FromDomainDoctor(d); resp != nil {
			result.Doctors = append(result.Doctors, *resp)
		}
	}
	return result
}

// DuplicateGroup группа врачей-дубликатов с одинаковыми именем и email
type DuplicateGroup struct {
	Key    string           `json:"key"`
	Keep   DoctorResponse   `json:"keep"`
	Remove []DoctorResponse `json:"remove"`
}

// CleanupReport итог очистки дубликатов
type CleanupReport struct {
	DryRun             bool             `json:"dryRun"`
	Groups             []DuplicateGroup `json:"groups"`
	RemovedCount       int              `json:"removedCount"`
	ReassignedBookings int64            `json:"reassignedBookings"`
}
