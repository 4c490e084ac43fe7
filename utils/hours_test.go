package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sacavia/sacavia-api/schema"
)

// 2020-06-01 is a Monday
func monday(hour, minute int) time.Time {
	return time.Date(2020, 6, 1, hour, minute, 0, 0, time.Local)
}

var weekdaySchedule = []schema.BusinessHours{
	{Day: "Monday", Open: "09:00", Close: "17:00"},
	{Day: "Tuesday", Open: "09:00", Close: "17:00"},
	{Day: "Sunday", Closed: true},
}

func TestBusinessStatusOpen(t *testing.T) {
	open, today := BusinessStatus(weekdaySchedule, monday(10, 0))
	assert.True(t, open)
	assert.Equal(t, "09:00 - 17:00", today)
}

func TestBusinessStatusAfterClosing(t *testing.T) {
	open, today := BusinessStatus(weekdaySchedule, monday(18, 0))
	assert.False(t, open)
	assert.Equal(t, "", today)
}

func TestBusinessStatusBoundariesInclusive(t *testing.T) {
	assert.True(t, IsOpen(weekdaySchedule, monday(9, 0)))
	assert.True(t, IsOpen(weekdaySchedule, monday(17, 0)))
	assert.False(t, IsOpen(weekdaySchedule, monday(8, 59)))
	assert.False(t, IsOpen(weekdaySchedule, monday(17, 1)))
}

func TestBusinessStatusClosedDay(t *testing.T) {
	hours := []schema.BusinessHours{
		{Day: "Monday", Open: "00:00", Close: "24:00", Closed: true},
	}
	for h := 0; h < 24; h++ {
		assert.False(t, IsOpen(hours, monday(h, 30)))
	}
}

func TestBusinessStatusMissingDay(t *testing.T) {
	// 2020-06-06 is a Saturday
	assert.False(t, IsOpen(weekdaySchedule, time.Date(2020, 6, 6, 12, 0, 0, 0, time.Local)))
	assert.False(t, IsOpen(nil, monday(12, 0)))
}

func TestBusinessStatusMissingTimes(t *testing.T) {
	assert.False(t, IsOpen([]schema.BusinessHours{{Day: "Monday", Open: "09:00"}}, monday(12, 0)))
	assert.False(t, IsOpen([]schema.BusinessHours{{Day: "Monday", Open: "9am", Close: "5pm"}}, monday(12, 0)))
}

func TestBusinessStatusFirstMatchWins(t *testing.T) {
	hours := []schema.BusinessHours{
		{Day: "monday", Open: "09:00", Close: "10:00"},
		{Day: "Monday", Open: "09:00", Close: "20:00"},
	}
	assert.False(t, IsOpen(hours, monday(12, 0)))
	assert.True(t, IsOpen(hours, monday(9, 30)))
}

func TestBusinessStatusOvernight(t *testing.T) {
	hours := []schema.BusinessHours{
		{Day: "Sunday", Open: "22:00", Close: "02:00"},
		{Day: "Monday", Open: "18:00", Close: "23:00"},
	}

	// tail of sunday's period
	open, today := BusinessStatus(hours, monday(1, 30))
	assert.True(t, open)
	assert.Equal(t, "22:00 - 02:00", today)

	assert.False(t, IsOpen(hours, monday(2, 1)))
	assert.False(t, IsOpen(hours, monday(12, 0)))
	assert.True(t, IsOpen(hours, monday(18, 0)))

	// start of an overnight period on the same day
	sunday := time.Date(2020, 5, 31, 23, 15, 0, 0, time.Local)
	assert.True(t, IsOpen(hours, sunday))
}

func TestBusinessStatusClosedDayEndsOvernight(t *testing.T) {
	hours := []schema.BusinessHours{
		{Day: "Sunday", Open: "22:00", Close: "02:00"},
		{Day: "Monday", Closed: true},
	}

	open, today := BusinessStatus(hours, monday(1, 0))
	assert.False(t, open)
	assert.Equal(t, "", today)

	sunday := time.Date(2020, 5, 31, 23, 0, 0, 0, time.Local)
	assert.True(t, IsOpen(hours, sunday))
}

func TestBusinessStatusAllDay(t *testing.T) {
	hours := []schema.BusinessHours{{Day: "Monday", Open: "00:00", Close: "24:00"}}
	assert.True(t, IsOpen(hours, monday(0, 0)))
	assert.True(t, IsOpen(hours, monday(23, 59)))
}

func TestParseClock(t *testing.T) {
	m, ok := parseClock("07:05")
	assert.True(t, ok)
	assert.Equal(t, 425, m)

	m, ok = parseClock(" 24:00 ")
	assert.True(t, ok)
	assert.Equal(t, 1440, m)

	for _, s := range []string{"", "7", "7:5", "24:01", "12:60", "ab:cd"} {
		_, ok := parseClock(s)
		assert.False(t, ok, s)
	}
}
