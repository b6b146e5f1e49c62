package get_available_slots

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден или деактивирован
	ErrDoctorNotFound = errors.New("get_available_slots: doctor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Отличим от пустого результата: недоступность хранилища не маскируется
	// под "нет свободных слотов"
	ErrInternal = errors.New("get_available_slots: internal error")
)
