package domain

import (
	"strings"
	"time"
)

// Gender represents the gender of a doctor
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Doctor represents a dentist available for booking
type Doctor struct {
	ID        string
	Name      string
	Specialty string
	Bio       *string
	Gender    Gender
	Email     string
	Phone     *string
	Area      *string
	ImageURL  *string
	IsActive  bool

	// Denormalized read-side counter, filled by list queries
	AppointmentCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DuplicateKey возвращает ключ группировки для поиска дублей
// Дублями считаются врачи с одинаковыми именем и email без учета регистра
func (d *Doctor) DuplicateKey() string {
	return strings.ToLower(strings.TrimSpace(d.Name)) + "|" + strings.ToLower(strings.TrimSpace(d.Email))
}
