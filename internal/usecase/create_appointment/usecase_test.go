package create_appointment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentwise/booking-service/internal/domain"
	doctorRepo "github.com/dentwise/booking-service/internal/infra/storage/doctor"
	userRepo "github.com/dentwise/booking-service/internal/infra/storage/user"
	"github.com/dentwise/booking-service/pkg/types"
)

const (
	testDoctorID = "6f1577b5-78d4-4b63-bc77-8764c9a19a83"
	testUserID   = "0d54e34c-2f15-4f52-a7b4-2a19dca711f5"
)

var (
	testMonday   = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	testSaturday = time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
)

type fakeAppointmentRepo struct {
	booked    []types.TimeString
	bookedErr error
	created   *domain.Appointment
	createErr error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *a
	created.ID = "b0a2e7de-55a7-4f11-8a5c-55a1a4a0c9ff"
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) FindBookedTimes(_ context.Context, _ string, _ time.Time, _ []domain.AppointmentStatus) ([]types.TimeString, error) {
	return f.booked, f.bookedErr
}

type fakeDoctorRepo struct {
	doctor *domain.Doctor
	err    error
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, _ string) (*domain.Doctor, error) {
	return f.doctor, f.err
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return f.user, f.err
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(appointments *fakeAppointmentRepo, doctors *fakeDoctorRepo, users *fakeUserRepo, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(appointments, doctors, users, tx, nopLogger{})
	uc.timeProvider = fixedTime{testMonday}
	return uc
}

func defaultFakes() (*fakeAppointmentRepo, *fakeDoctorRepo, *fakeUserRepo, *fakeTxManager) {
	return &fakeAppointmentRepo{},
		&fakeDoctorRepo{doctor: &domain.Doctor{ID: testDoctorID, IsActive: true}},
		&fakeUserRepo{user: &domain.User{ID: testUserID}},
		&fakeTxManager{}
}

func validRequest() *Request {
	return &Request{
		UserID:    testUserID,
		DoctorID:  testDoctorID,
		Date:      testMonday,
		StartTime: "10:30",
		Reason:    "Tooth pain",
	}
}

func TestExecute_Success(t *testing.T) {
	appointments, doctors, users, tx := defaultFakes()
	uc := newTestUseCase(appointments, doctors, users, tx)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.Appointment.Status)
	assert.Equal(t, types.TimeString("10:30"), resp.Appointment.StartTime)
	assert.Equal(t, testMonday, resp.Appointment.Date)
	assert.Equal(t, 1, tx.calls)
}

func TestExecute_SlotTakenByExistingAppointment(t *testing.T) {
	appointments, doctors, users, tx := defaultFakes()
	appointments.booked = []types.TimeString{"10:30"}
	uc := newTestUseCase(appointments, doctors, users, tx)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, appointments.created)
}

func TestExecute_WeekendRejected(t *testing.T) {
	appointments, doctors, users, tx := defaultFakes()
	uc := newTestUseCase(appointments, doctors, users, tx)

	req := validRequest()
	req.Date = testSaturday

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClinicClosed)
}

func TestExecute_OffGridTimeRejected(t *testing.T) {
	appointments, doctors, users, tx := defaultFakes()
	uc := newTestUseCase(appointments, doctors, users, tx)

	for _, startTime := range []types.TimeString{"08:30", "17:00", "10:15"} {
		req := validRequest()
		req.StartTime = startTime

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSlot, string(startTime))
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	appointments, doctors, users, tx := defaultFakes()
	uc := newTestUseCase(appointments, doctors, users, tx)

	req := validRequest()
	req.Date = testMonday.AddDate(0, 0, -3)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	appointments, _, users, tx := defaultFakes()
	doctors := &fakeDoctorRepo{err: doctorRepo.ErrDoctorNotFound}
	uc := newTestUseCase(appointments, doctors, users, tx)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_InactiveDoctorRejected(t *testing.T) {
	appointments, doctors, users, tx := defaultFakes()
	doctors.doctor.IsActive = false
	uc := newTestUseCase(appointments, doctors, users, tx)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_UserNotFound(t *testing.T) {
	appointments, doctors, _, tx := defaultFakes()
	users := &fakeUserRepo{err: userRepo.ErrUserNotFound}
	uc := newTestUseCase(appointments, doctors, users, tx)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_Validation(t *testing.T) {
	appointments, doctors, users, tx := defaultFakes()
	uc := newTestUseCase(appointments, doctors, users, tx)

	req := validRequest()
	req.UserID = "not-a-uuid"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = "9:00"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Reason = strings.Repeat("a", domain.MaxReasonLength+1)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreErrorSurfacesAsInternal(t *testing.T) {
	appointments, doctors, users, tx := defaultFakes()
	appointments.bookedErr = errors.New("connection refused")
	uc := newTestUseCase(appointments, doctors, users, tx)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
