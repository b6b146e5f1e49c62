package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentwise/booking-service/internal/domain"
	doctorRepo "github.com/dentwise/booking-service/internal/infra/storage/doctor"
	"github.com/dentwise/booking-service/pkg/types"
)

const (
	testDoctorID = "6f1577b5-78d4-4b63-bc77-8764c9a19a83"
	otherUUID    = "0d54e34c-2f15-4f52-a7b4-2a19dca711f5"
)

var (
	testMonday   = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	testSaturday = time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
)

type fakeAppointmentRepo struct {
	booked []types.TimeString
	err    error
	calls  int
}

func (f *fakeAppointmentRepo) FindBookedTimes(_ context.Context, _ string, _ time.Time, _ []domain.AppointmentStatus) ([]types.TimeString, error) {
	f.calls++
	return f.booked, f.err
}

type fakeDoctorRepo struct {
	doctor *domain.Doctor
	err    error
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, _ string) (*domain.Doctor, error) {
	return f.doctor, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeDoctor() *domain.Doctor {
	return &domain.Doctor{ID: testDoctorID, Name: "Smile Dental", IsActive: true}
}

func newTestUseCase(appointments *fakeAppointmentRepo, doctors *fakeDoctorRepo) *UseCase {
	return NewUseCase(appointments, doctors, nopLogger{})
}

func TestExecute_AllSlotsFree(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeDoctorRepo{doctor: activeDoctor()})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID, Date: testMonday})
	require.NoError(t, err)

	assert.Equal(t, domain.DailySlots(testMonday), resp.Slots)
	assert.Len(t, resp.Slots, 16)
}

func TestExecute_SubtractsBookedSlots(t *testing.T) {
	appointments := &fakeAppointmentRepo{booked: []types.TimeString{"09:00", "12:30", "16:30"}}
	uc := newTestUseCase(appointments, &fakeDoctorRepo{doctor: activeDoctor()})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID, Date: testMonday})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 13)
	assert.NotContains(t, resp.Slots, types.TimeString("09:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("12:30"))
	assert.NotContains(t, resp.Slots, types.TimeString("16:30"))

	// Порядок оставшихся слотов сохраняется
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].IsBefore(resp.Slots[i]))
	}
}

func TestExecute_BookedTokensOutsideGridIgnored(t *testing.T) {
	// Токены вне сетки (исторические данные) не влияют на результат
	appointments := &fakeAppointmentRepo{booked: []types.TimeString{"08:00", "17:00", "09:15"}}
	uc := newTestUseCase(appointments, &fakeDoctorRepo{doctor: activeDoctor()})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID, Date: testMonday})
	require.NoError(t, err)

	assert.Equal(t, domain.DailySlots(testMonday), resp.Slots)
}

func TestExecute_WeekendReturnsEmptyWithoutStoreCall(t *testing.T) {
	appointments := &fakeAppointmentRepo{err: errors.New("storage must not be called")}
	uc := newTestUseCase(appointments, &fakeDoctorRepo{doctor: activeDoctor()})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID, Date: testSaturday})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
	assert.Zero(t, appointments.calls)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeDoctorRepo{err: doctorRepo.ErrDoctorNotFound})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID, Date: testMonday})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_InactiveDoctorTreatedAsNotFound(t *testing.T) {
	doctor := activeDoctor()
	doctor.IsActive = false
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeDoctorRepo{doctor: doctor})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID, Date: testMonday})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_StoreErrorSurfacesAsInternal(t *testing.T) {
	// Отказ хранилища - это ошибка, а не пустой список слотов
	appointments := &fakeAppointmentRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(appointments, &fakeDoctorRepo{doctor: activeDoctor()})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID, Date: testMonday})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeDoctorRepo{doctor: activeDoctor()})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: "", Date: testMonday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DoctorID: "not-a-uuid", Date: testMonday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DoctorID: testDoctorID})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
