package create_appointment

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден или деактивирован
	ErrDoctorNotFound = errors.New("create_appointment: doctor not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_appointment: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidDate возвращается, если дата записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: appointment date is in the past")

	// ErrClinicClosed возвращается при попытке записи на выходной день
	ErrClinicClosed = errors.New("create_appointment: clinic is closed on this day")

	// ErrInvalidSlot возвращается, если время не попадает в сетку слотов
	ErrInvalidSlot = errors.New("create_appointment: time is not a valid slot")

	// ErrSlotNotAvailable возвращается, если слот уже занят
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
