package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentwise/booking-service/internal/domain"
	appointmentRepo "github.com/dentwise/booking-service/internal/infra/storage/appointment"
	doctorRepo "github.com/dentwise/booking-service/internal/infra/storage/doctor"
	"github.com/dentwise/booking-service/internal/service/appointments/models"
	"github.com/dentwise/booking-service/pkg/ptr"
)

const (
	testAppointmentID = "b0a2e7de-55a7-4f11-8a5c-55a1a4a0c9ff"
	testUserID        = "0d54e34c-2f15-4f52-a7b4-2a19dca711f5"
	testDoctorID      = "6f1577b5-78d4-4b63-bc77-8764c9a19a83"
	otherUserID       = "11111111-1111-1111-1111-111111111111"
)

var testMonday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	list        []*domain.Appointment
	err         error

	updatedStatus   *domain.AppointmentStatus
	listStatus      *domain.AppointmentStatus
	filter          *domain.DoctorAppointmentsFilter
	completed       int64
	completedBefore time.Time
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ string) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointment, nil
}

func (f *fakeAppointmentRepo) GetByUserID(_ context.Context, _ string, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	f.listStatus = status
	return f.list, f.err
}

func (f *fakeAppointmentRepo) GetByDoctorWithFilter(_ context.Context, filter domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error) {
	f.filter = &filter
	return f.list, f.err
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ string, status domain.AppointmentStatus) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeAppointmentRepo) CompletePastConfirmed(_ context.Context, before time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.completedBefore = before
	return f.completed, nil
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

func testAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        testAppointmentID,
		UserID:    testUserID,
		DoctorID:  testDoctorID,
		Date:      testMonday,
		StartTime: "10:30",
		Reason:    "Tooth pain",
		Status:    status,
	}
}

func TestGetByID_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: testAppointment(domain.StatusConfirmed)}
	svc := NewService(repo, &fakeDoctorRepo{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), testAppointmentID, testUserID)
	require.NoError(t, err)

	assert.Equal(t, testAppointmentID, resp.ID)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "10:30", resp.StartTime)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestGetByID_AccessDeniedForOtherUser(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: testAppointment(domain.StatusConfirmed)}
	svc := NewService(repo, &fakeDoctorRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), testAppointmentID, otherUserID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{err: appointmentRepo.ErrAppointmentNotFound}
	svc := NewService(repo, &fakeDoctorRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), testAppointmentID, testUserID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetUserAppointments_PassesStatusFilter(t *testing.T) {
	repo := &fakeAppointmentRepo{list: []*domain.Appointment{testAppointment(domain.StatusCompleted)}}
	svc := NewService(repo, &fakeDoctorRepo{}, nopLogger{})

	resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: testUserID,
		Status: ptr.Ptr("COMPLETED"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.listStatus)
	assert.Equal(t, domain.StatusCompleted, *repo.listStatus)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "COMPLETED", resp.Appointments[0].Status)
}

func TestGetUserAppointments_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeDoctorRepo{}, nopLogger{})

	_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: testUserID,
		Status: ptr.Ptr("PENDING"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetDoctorAppointments_BuildsFilter(t *testing.T) {
	repo := &fakeAppointmentRepo{list: []*domain.Appointment{}}
	doctors := &fakeDoctorRepo{doctor: &domain.Doctor{ID: testDoctorID, IsActive: true}}
	svc := NewService(repo, doctors, nopLogger{})

	date := testMonday
	_, err := svc.GetDoctorAppointments(context.Background(), &models.GetDoctorAppointmentsRequest{
		DoctorID:         testDoctorID,
		Date:             &date,
		Status:           ptr.Ptr("CONFIRMED"),
		IncludeCancelled: true,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.filter)
	assert.Equal(t, testDoctorID, repo.filter.DoctorID)
	assert.Equal(t, date, *repo.filter.Date)
	assert.Equal(t, domain.StatusConfirmed, *repo.filter.Status)
	assert.True(t, repo.filter.IncludeCancelled)
}

func TestGetDoctorAppointments_DoctorNotFound(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeDoctorRepo{err: doctorRepo.ErrDoctorNotFound}, nopLogger{})

	_, err := svc.GetDoctorAppointments(context.Background(), &models.GetDoctorAppointmentsRequest{DoctorID: testDoctorID})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: testAppointment(domain.StatusConfirmed)}
	svc := NewService(repo, &fakeDoctorRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), testAppointmentID, testUserID)
	require.NoError(t, err)

	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCancelled, *repo.updatedStatus)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: testAppointment(domain.StatusConfirmed)}
	svc := NewService(repo, &fakeDoctorRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), testAppointmentID, otherUserID)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updatedStatus)
}

func TestCancel_OnlyConfirmedCanBeCancelled(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled} {
		repo := &fakeAppointmentRepo{appointment: testAppointment(status)}
		svc := NewService(repo, &fakeDoctorRepo{}, nopLogger{})

		err := svc.Cancel(context.Background(), testAppointmentID, testUserID)
		assert.ErrorIs(t, err, ErrCannotCancel, string(status))
		assert.Nil(t, repo.updatedStatus)
	}
}

func TestCompletePastAppointments(t *testing.T) {
	repo := &fakeAppointmentRepo{completed: 7}
	svc := NewService(repo, &fakeDoctorRepo{}, nopLogger{})

	count, err := svc.CompletePastAppointments(context.Background(), testMonday)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.Equal(t, testMonday, repo.completedBefore)

	repo = &fakeAppointmentRepo{err: errors.New("connection refused")}
	svc = NewService(repo, &fakeDoctorRepo{}, nopLogger{})

	_, err = svc.CompletePastAppointments(context.Background(), testMonday)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCompletePastAppointments_TruncatesToStartOfDay(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := NewService(repo, &fakeDoctorRepo{}, nopLogger{})

	// Задача запускается в 03:00; записи сегодняшнего дня (полночь в БД)
	// не должны попадать под строгое сравнение "раньше границы"
	_, err := svc.CompletePastAppointments(context.Background(), testMonday.Add(3*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, testMonday, repo.completedBefore)
	assert.False(t, testMonday.Before(repo.completedBefore))
}
