package doctors

import (
	"context"
	"errors"
	"fmt"

	"github.com/dentwise/booking-service/internal/domain"
	doctorRepo "github.com/dentwise/booking-service/internal/infra/storage/doctor"
	"github.com/dentwise/booking-service/internal/service/doctors/models"
)

// Service сервис для работы с врачами
type Service struct {
	doctorRepo      DoctorRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса врачей
func NewService(
	doctorRepo DoctorRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List возвращает всех активных врачей со счетчиком записей
func (s *Service) List(ctx context.Context) (*models.DoctorListResponse, error) {
	s.logger.Info("List: fetching active doctors")

	doctors, err := s.doctorRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d doctors", len(doctors))
	return models.FromDomainDoctorList(doctors), nil
}

// GetByID получает врача по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.DoctorResponse, error) {
	s.logger.Info("GetByID: fetching doctor id=%s", id)

	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("GetByID: doctor id=%s not found", id)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("GetByID: repository error for doctor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDoctor(doctor), nil
}

// CleanupDuplicates находит врачей с одинаковыми именем и email и удаляет
// все копии, кроме самой старой. Записи на прием у удаляемых копий
// переносятся на оставшегося врача. При dryRun изменения не применяются,
// возвращается только отчет
func (s *Service) CleanupDuplicates(ctx context.Context, dryRun bool) (*models.CleanupReport, error) {
	s.logger.Info("CleanupDuplicates: scanning for duplicates, dryRun=%v", dryRun)

	// ListAll сортирует по created_at, поэтому первый в группе - самый старый
	doctors, err := s.doctorRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("CleanupDuplicates: repository error: %v", err)
		return nil, fmt.Errorf("%w: CleanupDuplicates - repository error: %v", ErrInternal, err)
	}

	groups := groupDuplicates(doctors)

	report := &models.CleanupReport{
		DryRun: dryRun,
		Groups: make([]models.DuplicateGroup, 0, len(groups)),
	}

	for _, group := range groups {
		keep := group[0]
		remove := group[1:]

		dto := models.DuplicateGroup{
			Key:    keep.DuplicateKey(),
			Keep:   *models.FromDomainDoctor(keep),
			Remove: make([]models.DoctorResponse, 0, len(remove)),
		}
		for _, d := range remove {
			dto.Remove = append(dto.Remove, *models.FromDomainDoctor(d))
		}
		report.Groups = append(report.Groups, dto)

		if dryRun {
			report.RemovedCount += len(remove)
			continue
		}

		for _, dup := range remove {
			moved, err := s.appointmentRepo.ReassignDoctor(ctx, dup.ID, keep.ID)
			if err != nil {
				s.logger.Error("CleanupDuplicates: failed to reassign appointments from doctor=%s to doctor=%s: %v",
					dup.ID, keep.ID, err)
				return nil, fmt.Errorf("%w: CleanupDuplicates - reassign error: %v", ErrInternal, err)
			}
			report.ReassignedBookings += moved

			if err := s.doctorRepo.Delete(ctx, dup.ID); err != nil {
				s.logger.Error("CleanupDuplicates: failed to delete doctor=%s: %v", dup.ID, err)
				return nil, fmt.Errorf("%w: CleanupDuplicates - delete error: %v", ErrInternal, err)
			}
			report.RemovedCount++

			s.logger.Info("CleanupDuplicates: removed doctor=%s (%s), moved %d appointments to doctor=%s",
				dup.ID, dup.Name, moved, keep.ID)
		}
	}

	s.logger.Info("CleanupDuplicates: done, %d duplicate groups, %d doctors removed, %d appointments reassigned",
		len(report.Groups), report.RemovedCount, report.ReassignedBookings)

	return report, nil
}

// groupDuplicates группирует врачей по нормализованной паре имя+email
// и возвращает только группы размером больше одного, сохраняя порядок обхода
func groupDuplicates(doctors []*domain.Doctor) [][]*domain.Doctor {
	byKey := make(map[string][]*domain.Doctor)
	keys := make([]string, 0)

	for _, d := range doctors {
		key := d.DuplicateKey()
		if _, seen := byKey[key]; !seen {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], d)
	}

	groups := make([][]*domain.Doctor, 0)
	for _, key := range keys {
		if len(byKey[key]) > 1 {
			groups = append(groups, byKey[key])
		}
	}
	return groups
}
