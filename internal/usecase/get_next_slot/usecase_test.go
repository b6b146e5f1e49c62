package get_next_slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentwise/booking-service/internal/domain"
	"github.com/dentwise/booking-service/internal/usecase/get_available_slots"
	"github.com/dentwise/booking-service/pkg/types"
)

const testDoctorID = "6f1577b5-78d4-4b63-bc77-8764c9a19a83"

var (
	testMonday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	testFriday = time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC)
)

// fakeResolver отдает заранее заданные слоты по дате
type fakeResolver struct {
	slotsByDate map[string][]types.TimeString
	err         error
	calls       []string
}

func (f *fakeResolver) Execute(_ context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error) {
	key := req.Date.Format(domain.DateFormat)
	f.calls = append(f.calls, key)
	if f.err != nil {
		return nil, f.err
	}

	slots, ok := f.slotsByDate[key]
	if !ok {
		slots = []types.TimeString{}
	}
	return &get_available_slots.Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
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

func TestExecute_FindsEarliestSlotOnFirstDay(t *testing.T) {
	resolver := &fakeResolver{slotsByDate: map[string][]types.TimeString{
		"2026-09-07": {"10:30", "14:00"},
		"2026-09-08": {"09:00"},
	}}
	uc := NewUseCase(resolver, fixedTime{testMonday}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID})
	require.NoError(t, err)

	// Более ранний день выигрывает, даже если на следующий день слот раньше в пределах дня
	require.True(t, resp.Found)
	assert.Equal(t, testMonday, resp.Date)
	assert.Equal(t, types.TimeString("10:30"), resp.StartTime)
	assert.Equal(t, "Mon, Sep 7", resp.FormattedDate)
	assert.Equal(t, "10:30 AM", resp.FormattedTime)
}

func TestExecute_SkipsFullDays(t *testing.T) {
	resolver := &fakeResolver{slotsByDate: map[string][]types.TimeString{
		"2026-09-09": {"16:30"},
	}}
	uc := NewUseCase(resolver, fixedTime{testMonday}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID})
	require.NoError(t, err)

	require.True(t, resp.Found)
	assert.Equal(t, "2026-09-09", resp.Date.Format(domain.DateFormat))
	assert.Equal(t, "4:30 PM", resp.FormattedTime)
}

func TestExecute_SkipsWeekendWithoutResolverCalls(t *testing.T) {
	// Поиск с пятницы: суббота и воскресенье пропускаются без обращения к резолверу
	resolver := &fakeResolver{slotsByDate: map[string][]types.TimeString{
		"2026-09-07": {"09:00"},
	}}
	uc := NewUseCase(resolver, fixedTime{testFriday}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID})
	require.NoError(t, err)

	require.True(t, resp.Found)
	assert.Equal(t, testMonday, resp.Date)
	assert.Equal(t, "9:00 AM", resp.FormattedTime)
	assert.Equal(t, []string{"2026-09-04", "2026-09-07"}, resolver.calls)
}

func TestExecute_HorizonExhaustedIsNotAnError(t *testing.T) {
	resolver := &fakeResolver{slotsByDate: map[string][]types.TimeString{}}
	uc := NewUseCase(resolver, fixedTime{testMonday}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID})
	require.NoError(t, err)

	assert.False(t, resp.Found)
	assert.Empty(t, resp.FormattedDate)

	// Горизонт по умолчанию - 7 дней, из них 5 рабочих
	assert.Len(t, resolver.calls, 5)
}

func TestExecute_CustomHorizon(t *testing.T) {
	resolver := &fakeResolver{slotsByDate: map[string][]types.TimeString{
		"2026-09-21": {"09:00"}, // через две недели, понедельник
	}}
	uc := NewUseCase(resolver, fixedTime{testMonday}, nopLogger{})

	// В горизонт 7 дней слот не попадает
	resp, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID, HorizonDays: 7})
	require.NoError(t, err)
	assert.False(t, resp.Found)

	// В горизонт 15 дней - попадает
	resp, err = uc.Execute(context.Background(), &Request{DoctorID: testDoctorID, HorizonDays: 15})
	require.NoError(t, err)
	require.True(t, resp.Found)
	assert.Equal(t, "2026-09-21", resp.Date.Format(domain.DateFormat))
}

func TestExecute_StartsFromExplicitDate(t *testing.T) {
	resolver := &fakeResolver{slotsByDate: map[string][]types.TimeString{
		"2026-09-07": {"09:00"},
		"2026-09-08": {"11:00"},
	}}
	uc := NewUseCase(resolver, fixedTime{testMonday}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID: testDoctorID,
		From:     testMonday.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	require.True(t, resp.Found)
	assert.Equal(t, "2026-09-08", resp.Date.Format(domain.DateFormat))
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeResolver{}, fixedTime{testMonday}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: "not-a-uuid"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DoctorID: testDoctorID, HorizonDays: domain.MaxHorizonDays + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DoctorID: testDoctorID, HorizonDays: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ResolverErrorsPropagate(t *testing.T) {
	uc := NewUseCase(&fakeResolver{err: get_available_slots.ErrDoctorNotFound}, fixedTime{testMonday}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{DoctorID: testDoctorID})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	uc = NewUseCase(&fakeResolver{err: errors.New("db down")}, fixedTime{testMonday}, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{DoctorID: testDoctorID})
	assert.ErrorIs(t, err, ErrInternal)
}
