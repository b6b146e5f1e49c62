package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dentwise/booking-service/internal/domain"
	appointmentRepo "github.com/dentwise/booking-service/internal/infra/storage/appointment"
	doctorRepo "github.com/dentwise/booking-service/internal/infra/storage/doctor"
	userRepo "github.com/dentwise/booking-service/internal/infra/storage/user"
)

// UseCase use case для создания записи на прием
type UseCase struct {
	appointmentRepo AppointmentRepository
	doctorRepo      DoctorRepository
	userRepo        UserRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	doctorRepo DoctorRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи на прием
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка занятости слота и вставка происходят атомарно, а частичный
// уникальный индекс в БД страхует от двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%s, doctor=%s, date=%s, time=%s",
		req.UserID, req.DoctorID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	date := domain.NormalizeDate(req.Date)

	// 4. Проверяем, что время попадает в сетку слотов
	if err := validateSlot(date, req.StartTime); err != nil {
		uc.logger.Warn("CreateAppointment: slot validation failed for date=%s, time=%s: %v",
			date.Format(domain.DateFormat), req.StartTime, err)
		return nil, err
	}

	// 5. Проверяем, что врач существует и активен
	doctor, err := uc.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("CreateAppointment: doctor id=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}
	if !doctor.IsActive {
		uc.logger.Warn("CreateAppointment: doctor id=%s is not active", req.DoctorID)
		return nil, ErrDoctorNotFound
	}

	// 6. Проверяем существование пользователя
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: user id=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get user id=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем занятые токены на эту дату с блокировкой (FOR UPDATE)
		bookedTimes, err := uc.appointmentRepo.FindBookedTimes(txCtx, req.DoctorID, date, domain.OccupyingStatuses)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get booked times: %v", err)
			return fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
		}

		// 7.2. Проверяем доступность слота
		for _, t := range bookedTimes {
			if t == req.StartTime {
				uc.logger.Warn("CreateAppointment: slot %s on %s already taken for doctor=%s",
					req.StartTime, date.Format(domain.DateFormat), req.DoctorID)
				return ErrSlotNotAvailable
			}
		}

		// 7.3. Создаем запись со статусом CONFIRMED
		appointment := &domain.Appointment{
			UserID:    req.UserID,
			DoctorID:  req.DoctorID,
			Date:      date,
			StartTime: req.StartTime,
			Reason:    strings.TrimSpace(req.Reason),
			Status:    domain.StatusConfirmed,
		}

		result, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Уникальный индекс в БД - последняя линия защиты от гонки
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: unique index rejected slot %s on %s for doctor=%s",
					req.StartTime, date.Format(domain.DateFormat), req.DoctorID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s for user=%s, doctor=%s",
		result.ID, req.UserID, req.DoctorID)

	return &Response{Appointment: result}, nil
}
