package get_next_slot

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден или деактивирован
	ErrDoctorNotFound = errors.New("get_next_slot: doctor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_next_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_next_slot: internal error")
)
