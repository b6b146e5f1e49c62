package domain

import (
	"fmt"
	"time"

	"github.com/dentwise/booking-service/pkg/types"
)

// Working-hours policy. Fixed for the whole clinic: weekdays 09:00-17:00,
// 30-minute slots, closed on weekends.
const (
	OpenHour        = 9
	CloseHour       = 17
	SlotStepMinutes = 30
)

// SlotsPerWorkday число слотов в рабочем дне при текущей политике
const SlotsPerWorkday = (CloseHour - OpenHour) * 60 / SlotStepMinutes

// IsWorkday returns false for Saturday and Sunday
func IsWorkday(day time.Time) bool {
	weekday := day.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}

// NormalizeDate strips the time component, keeping the calendar day
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DailySlots returns every bookable time token for the given calendar day
// in ascending order. Weekends produce no slots. The function is pure: the
// result depends on the weekday only, never on doctor identity or bookings.
func DailySlots(day time.Time) []types.TimeString {
	if !IsWorkday(day) {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, SlotsPerWorkday)
	for hour := OpenHour; hour < CloseHour; hour++ {
		for minute := 0; minute < 60; minute += SlotStepMinutes {
			slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)))
		}
	}

	return slots
}

// IsBookableSlot проверяет, что токен входит в сетку слотов указанного дня
func IsBookableSlot(day time.Time, slot types.TimeString) bool {
	for _, s := range DailySlots(day) {
		if s == slot {
			return true
		}
	}
	return false
}
