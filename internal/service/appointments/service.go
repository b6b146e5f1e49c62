package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dentwise/booking-service/internal/domain"
	appointmentRepo "github.com/dentwise/booking-service/internal/infra/storage/appointment"
	doctorRepo "github.com/dentwise/booking-service/internal/infra/storage/doctor"
	"github.com/dentwise/booking-service/internal/service/appointments/models"
)

// Service сервис для работы с записями на прием
type Service struct {
	appointmentRepo AppointmentRepository
	doctorRepo      DoctorRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	doctorRepo DoctorRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		logger:          logger,
	}
}

// GetByID получает запись на прием по ID
// Проверяет права доступа - пользователь может видеть только свою запись
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%s", id, userID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if appointment.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetUserAppointments получает историю записей пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%s, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.AppointmentStatus
	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%s", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetDoctorAppointments получает записи врача с гибкой фильтрацией
// Поддерживает фильтрацию по дате, статусу и включению отмененных записей
func (s *Service) GetDoctorAppointments(ctx context.Context, req *models.GetDoctorAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetDoctorAppointments: fetching appointments for doctor=%s", req.DoctorID)

	// Проверяем, что врач существует
	if _, err := s.doctorRepo.GetByID(ctx, req.DoctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("GetDoctorAppointments: doctor id=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("GetDoctorAppointments: failed to get doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: GetDoctorAppointments - repository error: %v", ErrInternal, err)
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetDoctorAppointments: invalid filter for doctor=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByDoctorWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetDoctorAppointments: repository error for doctor=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: GetDoctorAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDoctorAppointments: successfully fetched %d appointments for doctor=%s", len(appointments), req.DoctorID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись на прием
// Пользователь может отменить только свою запись, и только пока она подтверждена
func (s *Service) Cancel(ctx context.Context, appointmentID string, userID string) error {
	s.logger.Info("Cancel: cancelling appointment id=%s by user=%s", appointmentID, userID)

	// Получаем запись
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if appointment.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%s to cancel appointment id=%s", userID, appointmentID)
		return ErrAccessDenied
	}

	// Проверяем, можно ли отменить запись
	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	// Отменяем запись
	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, domain.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", appointmentID)
	return nil
}

// CompletePastAppointments переводит прошедшие подтвержденные записи в COMPLETED
// Вызывается cron-задачей. Граница сравнения - начало текущего дня:
// записи сегодняшнего дня еще не прошли и остаются подтвержденными
func (s *Service) CompletePastAppointments(ctx context.Context, before time.Time) (int64, error) {
	cutoff := domain.NormalizeDate(before)

	s.logger.Info("CompletePastAppointments: completing confirmed appointments before %s",
		cutoff.Format(domain.DateFormat))

	count, err := s.appointmentRepo.CompletePastConfirmed(ctx, cutoff)
	if err != nil {
		s.logger.Error("CompletePastAppointments: repository error: %v", err)
		return 0, fmt.Errorf("%w: CompletePastAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CompletePastAppointments: completed %d appointments", count)
	return count, nil
}
