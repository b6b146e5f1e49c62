package seed

import (
	"context"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentwise/booking-service/internal/domain"
	userRepo "github.com/dentwise/booking-service/internal/infra/storage/user"
)

func TestParseCSV(t *testing.T) {
	content := `Name,Address,Category,Notes,Likely Area,Email,Phone
Smile Dental,123 Main St,Dentist,"Midtown",Midtown,info@smile.com,(212) 555-0123
"Bright Teeth",456 Oak Ave,Pediatric dentist,,Brooklyn,hello@bright.com,2125550187
short,line
`

	rows := ParseCSV(content)
	require.Len(t, rows, 2)

	assert.Equal(t, "Smile Dental", rows[0].Name)
	assert.Equal(t, "Midtown", rows[0].Notes)
	assert.Equal(t, "info@smile.com", rows[0].Email)
	assert.Equal(t, "(212) 555-0123", rows[0].Phone)

	// Кавычки срезаются
	assert.Equal(t, "Bright Teeth", rows[1].Name)
	assert.Equal(t, "Brooklyn", rows[1].LikelyArea)
}

func TestParseCSV_Empty(t *testing.T) {
	assert.Empty(t, ParseCSV(""))
	assert.Empty(t, ParseCSV("Name,Address,Category,Notes,Likely Area,Email,Phone\n"))
}

func TestInferSpecialty(t *testing.T) {
	cases := []struct {
		category string
		name     string
		expected string
	}{
		{"Pediatric dentist", "Kids Dental", "Pediatric Dentistry"},
		{"Dentist", "Pediatric Smiles", "Pediatric Dentistry"},
		{"Orthodontic clinic", "X", "Orthodontics"},
		{"Oral surgeon", "X", "Oral Surgery"},
		{"Cosmetic dentist", "X", "Cosmetic Dentistry"},
		{"Dentist", "NYC Implant Center", "Dental Implants"},
		{"Endodontist", "X", "Endodontics"},
		{"Periodontist", "X", "Periodontics"},
		{"Dentist", "Smile Dental", "General Dentistry"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, InferSpecialty(tc.category, tc.name), "%s / %s", tc.category, tc.name)
	}
}

func TestCleanArea(t *testing.T) {
	assert.Equal(t, "Midtown", CleanArea("note", "Midtown"))
	assert.Equal(t, "Harlem", CleanArea("Harlem", ""))

	// Мусорные значения отбрасываются
	assert.Equal(t, "Queens", CleanArea("Queens", "Dentist"))
	assert.Equal(t, "New York", CleanArea("dental", "office"))
	assert.Equal(t, "New York", CleanArea("", ""))
}

func TestGenerateBio(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	bio := GenerateBio(rng, "Orthodontics", "Midtown", "Smile Dental")
	assert.Contains(t, bio, "orthodontics")
	assert.Contains(t, bio, "Midtown")

	// Титулы отбрасываются из названия практики
	bio = GenerateBio(rng, "General Dentistry", "Harlem", "John Smith, DDS")
	assert.NotContains(t, bio, "DDS")
}

func TestCleanPhone(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Уже отформатированный телефон сохраняется
	assert.Equal(t, "(212) 555-0123", CleanPhone(rng, " (212) 555-0123 "))

	// Иначе генерируется случайный в том же формате
	generated := CleanPhone(rng, "2125550187")
	assert.Regexp(t, `^\(\d{3}\) \d{3}-\d{4}$`, generated)
}

func TestFallbackEmail(t *testing.T) {
	assert.Equal(t, "smiledental@dentwise.app", FallbackEmail("Smile Dental"))
	assert.Equal(t, "drjohnsmithdds@dentwise.app", FallbackEmail("Dr. John Smith, DDS"))
}

// Фейки хранилищ для прогона сидера целиком

type fakeDoctorRepo struct {
	created  []*domain.Doctor
	existing map[string]bool
}

func (f *fakeDoctorRepo) Create(_ context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	created := *d
	created.ID = "doctor-" + d.Email
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeDoctorRepo) Exists(_ context.Context, _, email string) (bool, error) {
	return f.existing[email], nil
}

type fakeUserRepo struct {
	user *domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	created := *u
	created.ID = "11111111-1111-1111-1111-111111111111"
	f.user = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	if f.user == nil {
		return nil, userRepo.ErrUserNotFound
	}
	return f.user, nil
}

type fakeAppointmentRepo struct {
	batches [][]*domain.Appointment
}

func (f *fakeAppointmentRepo) CreateBatch(_ context.Context, appointments []*domain.Appointment) (int64, error) {
	f.batches = append(f.batches, appointments)
	return int64(len(appointments)), nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGenerateRandomAppointments(t *testing.T) {
	doctors := &fakeDoctorRepo{existing: map[string]bool{}}
	users := &fakeUserRepo{}
	appointments := &fakeAppointmentRepo{}

	seeder := NewSeeder(doctors, users, appointments, nopLogger{})

	inserted, err := seeder.GenerateRandomAppointments(context.Background(), "doc-1", 8)
	require.NoError(t, err)

	// Служебный пользователь создается один раз
	require.NotNil(t, users.user)
	assert.Equal(t, SystemUserEmail, users.user.Email)
	assert.Equal(t, "system", users.user.ClerkID)

	// Из-за пропуска выходных и дублей записей может быть меньше запрошенного
	assert.LessOrEqual(t, inserted, int64(8))

	today := domain.NormalizeDate(time.Now())
	for _, batch := range appointments.batches {
		for _, a := range batch {
			assert.Equal(t, domain.StatusConfirmed, a.Status)
			assert.Equal(t, users.user.ID, a.UserID)
			assert.True(t, domain.IsWorkday(a.Date), "seeded appointment on weekend: %s", a.Date)
			assert.True(t, domain.IsBookableSlot(a.Date, a.StartTime))
			assert.False(t, a.Date.Before(today))
			assert.True(t, a.Date.Before(today.AddDate(0, 0, domain.DefaultHorizonDays)))
		}
	}
}

func TestSeederRun_SkipsExistingAndBlankRows(t *testing.T) {
	csvPath := t.TempDir() + "/dentists.csv"
	content := strings.Join([]string{
		"Name,Address,Category,Notes,Likely Area,Email,Phone",
		"Smile Dental,123 Main St,Dentist,,Midtown,info@smile.com,(212) 555-0123",
		"Known Dental,9 Elm St,Dentist,,Harlem,known@dental.com,(212) 555-0188",
		",,,,,,",
	}, "\n")
	require.NoError(t, writeFile(csvPath, content))

	doctors := &fakeDoctorRepo{existing: map[string]bool{"known@dental.com": true}}
	seeder := NewSeeder(doctors, &fakeUserRepo{}, &fakeAppointmentRepo{}, nopLogger{})

	report, err := seeder.Run(context.Background(), csvPath)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 2, report.Skipped)
	require.Len(t, doctors.created, 1)

	created := doctors.created[0]
	assert.Equal(t, "Smile Dental", created.Name)
	assert.Equal(t, "General Dentistry", created.Specialty)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.Area)
	assert.Equal(t, "Midtown", *created.Area)
	require.NotNil(t, created.ImageURL)
	assert.Contains(t, *created.ImageURL, "ui-avatars.com")
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
