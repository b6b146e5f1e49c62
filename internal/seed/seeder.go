package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dentwise/booking-service/internal/domain"
	userRepo "github.com/dentwise/booking-service/internal/infra/storage/user"
	"github.com/dentwise/booking-service/pkg/avatar"
	"github.com/dentwise/booking-service/pkg/ptr"
)

// SystemUserEmail email служебного пользователя, на которого
// записываются сгенерированные демо-записи
const SystemUserEmail = "system@dentwise.com"

// Диапазон числа демо-записей на врача
const (
	minSeedAppointments = 3
	maxSeedAppointments = 8
)

// Report итог прогона сидера
type Report struct {
	Total        int
	Created      int
	Skipped      int
	Appointments int64
	AreaStats    map[string]int
}

// Seeder наполняет базу врачами из CSV и генерирует демо-записи
type Seeder struct {
	doctorRepo      DoctorRepository
	userRepo        UserRepository
	appointmentRepo AppointmentRepository
	rng             *rand.Rand
	logger          Logger
}

// NewSeeder создает новый экземпляр сидера
func NewSeeder(
	doctorRepo DoctorRepository,
	userRepo UserRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Seeder {
	return &Seeder{
		doctorRepo:      doctorRepo,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:          logger,
	}
}

// Run читает CSV файл и создает врачей с демо-записями
func (s *Seeder) Run(ctx context.Context, csvPath string) (*Report, error) {
	content, err := os.ReadFile(csvPath)
	if err != nil {
		return nil, fmt.Errorf("seed: failed to read csv file %s: %w", csvPath, err)
	}

	rows := ParseCSV(string(content))
	s.logger.Info("Seed: found %d dentists in %s", len(rows), csvPath)

	report := &Report{
		Total:     len(rows),
		AreaStats: make(map[string]int),
	}

	for _, row := range rows {
		if row.Name == "" || row.Name == "Name" {
			report.Skipped++
			continue
		}

		email := row.Email
		if !strings.Contains(email, "@") {
			email = FallbackEmail(row.Name)
		}

		exists, err := s.doctorRepo.Exists(ctx, row.Name, email)
		if err != nil {
			return nil, fmt.Errorf("seed: failed to check doctor %q: %w", row.Name, err)
		}
		if exists {
			report.Skipped++
			continue
		}

		gender := domain.GenderFemale
		if s.rng.Intn(2) == 0 {
			gender = domain.GenderMale
		}

		specialty := InferSpecialty(row.Category, row.Name)
		area := CleanArea(row.Notes, row.LikelyArea)
		report.AreaStats[area]++

		doctor := &domain.Doctor{
			Name:      row.Name,
			Specialty: specialty,
			Bio:       ptr.Ptr(GenerateBio(s.rng, specialty, area, row.Name)),
			Gender:    gender,
			Email:     email,
			Phone:     ptr.Ptr(CleanPhone(s.rng, row.Phone)),
			Area:      ptr.Ptr(area),
			ImageURL:  ptr.Ptr(avatar.URL(row.Name)),
			IsActive:  true,
		}

		created, err := s.doctorRepo.Create(ctx, doctor)
		if err != nil {
			s.logger.Error("Seed: failed to create doctor %q: %v", row.Name, err)
			continue
		}

		count := s.rng.Intn(maxSeedAppointments-minSeedAppointments+1) + minSeedAppointments
		inserted, err := s.GenerateRandomAppointments(ctx, created.ID, count)
		if err != nil {
			s.logger.Error("Seed: failed to generate appointments for doctor %q: %v", row.Name, err)
		}
		report.Appointments += inserted

		report.Created++
		if report.Created%25 == 0 {
			s.logger.Info("Seed: created %d dentists...", report.Created)
		}
	}

	s.logger.Info("Seed: done, created=%d, skipped=%d, appointments=%d",
		report.Created, report.Skipped, report.Appointments)
	s.logTopAreas(report.AreaStats)

	return report, nil
}

// GenerateRandomAppointments создает для врача случайные подтвержденные
// записи на ближайшую неделю от имени служебного пользователя.
// Выходные дни и повторно выпавшие слоты пропускаются, поэтому итоговое
// число записей может быть меньше запрошенного
func (s *Seeder) GenerateRandomAppointments(ctx context.Context, doctorID string, count int) (int64, error) {
	systemUser, err := s.ensureSystemUser(ctx)
	if err != nil {
		return 0, err
	}

	today := domain.NormalizeDate(time.Now())

	seen := make(map[string]struct{})
	appointments := make([]*domain.Appointment, 0, count)

	for i := 0; i < count; i++ {
		date := today.AddDate(0, 0, s.rng.Intn(domain.DefaultHorizonDays))
		if !domain.IsWorkday(date) {
			continue
		}

		slots := domain.DailySlots(date)
		slot := slots[s.rng.Intn(len(slots))]

		key := date.Format(domain.DateFormat) + "|" + string(slot)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		appointments = append(appointments, &domain.Appointment{
			UserID:    systemUser.ID,
			DoctorID:  doctorID,
			Date:      date,
			StartTime: slot,
			Reason:    "Patient consultation",
			Status:    domain.StatusConfirmed,
		})
	}

	if len(appointments) == 0 {
		return 0, nil
	}

	// Конфликты с уже существующими записями гасятся на уровне БД
	return s.appointmentRepo.CreateBatch(ctx, appointments)
}

// ensureSystemUser находит или создает служебного пользователя
func (s *Seeder) ensureSystemUser(ctx context.Context) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, SystemUserEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, fmt.Errorf("seed: failed to get system user: %w", err)
	}

	return s.userRepo.Create(ctx, &domain.User{
		ClerkID:   "system",
		Email:     SystemUserEmail,
		FirstName: "System",
		LastName:  "Generated",
	})
}

// logTopAreas логирует десять районов с наибольшим числом врачей
func (s *Seeder) logTopAreas(stats map[string]int) {
	type areaCount struct {
		area  string
		count int
	}

	sorted := make([]areaCount, 0, len(stats))
	for area, count := range stats {
		sorted = append(sorted, areaCount{area, count})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].count > sorted[j].count })

	if len(sorted) > 10 {
		sorted = sorted[:10]
	}
	for _, ac := range sorted {
		s.logger.Info("Seed:   %s: %d dentists", ac.area, ac.count)
	}
}
