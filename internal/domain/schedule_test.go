package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday   = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)
)

func TestDailySlots_Workday(t *testing.T) {
	slots := DailySlots(monday)

	require.Len(t, slots, SlotsPerWorkday)
	assert.Equal(t, 16, len(slots))
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "16:30", slots[len(slots)-1].String())

	// Слоты строго возрастают с шагом 30 минут
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]), "slot %s must be before %s", slots[i-1], slots[i])

		next, err := slots[i-1].AddMinutes(SlotStepMinutes)
		require.NoError(t, err)
		assert.Equal(t, slots[i], next)
	}
}

func TestDailySlots_Weekend(t *testing.T) {
	assert.Empty(t, DailySlots(saturday))
	assert.Empty(t, DailySlots(sunday))
}

func TestDailySlots_PureAndDeterministic(t *testing.T) {
	first := DailySlots(monday)
	second := DailySlots(monday)
	assert.Equal(t, first, second)

	// Один и тот же день недели в разные даты дает одинаковую сетку
	nextMonday := monday.AddDate(0, 0, 7)
	assert.Equal(t, first, DailySlots(nextMonday))
}

func TestIsWorkday(t *testing.T) {
	assert.True(t, IsWorkday(monday))
	assert.True(t, IsWorkday(monday.AddDate(0, 0, 4))) // пятница
	assert.False(t, IsWorkday(saturday))
	assert.False(t, IsWorkday(sunday))
}

func TestIsBookableSlot(t *testing.T) {
	assert.True(t, IsBookableSlot(monday, "09:00"))
	assert.True(t, IsBookableSlot(monday, "16:30"))

	// Вне сетки
	assert.False(t, IsBookableSlot(monday, "08:30"))
	assert.False(t, IsBookableSlot(monday, "17:00"))
	assert.False(t, IsBookableSlot(monday, "09:15"))

	// Выходной день
	assert.False(t, IsBookableSlot(saturday, "09:00"))
}

func TestNormalizeDate(t *testing.T) {
	withTime := time.Date(2026, time.September, 7, 15, 42, 11, 99, time.UTC)
	normalized := NormalizeDate(withTime)

	assert.Equal(t, monday, normalized)
	assert.Equal(t, 0, normalized.Hour())
	assert.Equal(t, 0, normalized.Minute())
}

func TestAppointmentStatusHelpers(t *testing.T) {
	confirmed := &Appointment{Status: StatusConfirmed}
	completed := &Appointment{Status: StatusCompleted}
	cancelled := &Appointment{Status: StatusCancelled}

	assert.True(t, confirmed.IsOccupying())
	assert.True(t, completed.IsOccupying())
	assert.False(t, cancelled.IsOccupying())

	assert.True(t, confirmed.CanBeCancelled())
	assert.False(t, completed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())
}

func TestDoctorDuplicateKey(t *testing.T) {
	a := &Doctor{Name: "Smile Dental", Email: "INFO@smile.com"}
	b := &Doctor{Name: "  smile dental ", Email: "info@SMILE.com"}
	c := &Doctor{Name: "Smile Dental", Email: "other@smile.com"}

	assert.Equal(t, a.DuplicateKey(), b.DuplicateKey())
	assert.NotEqual(t, a.DuplicateKey(), c.DuplicateKey())
}
