package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/dentwise/booking-service/internal/domain"
	doctorRepo "github.com/dentwise/booking-service/internal/infra/storage/doctor"
	"github.com/dentwise/booking-service/pkg/types"
)

// UseCase use case для получения доступных слотов врача на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	doctorRepo      DoctorRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	doctorRepo DoctorRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Результат - все слоты рабочего дня за вычетом занятых (confirmed/completed).
// Ошибка хранилища возвращается как ошибка, а не как пустой список:
// вызывающая сторона должна отличать "нет свободных слотов" от "сервис недоступен"
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s",
		req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.NormalizeDate(req.Date)

	// 2. Проверяем, что врач существует и активен
	doctor, err := uc.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("GetAvailableSlots: doctor id=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	if !doctor.IsActive {
		uc.logger.Warn("GetAvailableSlots: doctor id=%s is not active", req.DoctorID)
		return nil, ErrDoctorNotFound
	}

	// 3. Генерируем сетку слотов дня
	allSlots := domain.DailySlots(date)

	// Выходной день - слотов нет, в хранилище не ходим
	if len(allSlots) == 0 {
		uc.logger.Info("GetAvailableSlots: %s is a weekend, no slots", date.Format(domain.DateFormat))
		return &Response{
			DoctorID: req.DoctorID,
			Date:     date,
			Slots:    []types.TimeString{},
		}, nil
	}

	// 4. Получаем занятые токены (только статусы, занимающие слот)
	bookedTimes, err := uc.appointmentRepo.FindBookedTimes(ctx, req.DoctorID, date, domain.OccupyingStatuses)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times for doctor=%s, date=%s: %v",
			req.DoctorID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	// 5. Вычитаем занятые токены, сохраняя исходный порядок
	booked := make(map[types.TimeString]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if _, taken := booked[slot]; !taken {
			available = append(available, slot)
		}
	}

	uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s: %d of %d slots available",
		req.DoctorID, date.Format(domain.DateFormat), len(available), len(allSlots))

	return &Response{
		DoctorID: req.DoctorID,
		Date:     date,
		Slots:    available,
	}, nil
}
