package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sacavia/sacavia-api/schema"
)

const minutesPerDay = 24 * 60

// BusinessStatus evaluates a weekly schedule at the given time. It returns
// whether the place is open and, when it is, the opening hours of the
// running period formatted as "HH:MM - HH:MM".
//
// The first entry matching a weekday is used. A period whose close time is
// before its open time runs past midnight into the following day, unless
// that day is marked closed.
func BusinessStatus(hours []schema.BusinessHours, now time.Time) (bool, string) {
	current := now.Hour()*60 + now.Minute()

	if entry, ok := findDay(hours, now.Weekday()); ok {
		if entry.Closed {
			return false, ""
		}
		if opens, closes, ok := period(entry); ok {
			if opens <= closes {
				if current >= opens && current <= closes {
					return true, formatPeriod(entry)
				}
			} else if current >= opens {
				return true, formatPeriod(entry)
			}
		}
	}

	// the tail of an overnight period opened yesterday
	yesterday := (now.Weekday() + 6) % 7
	if entry, ok := findDay(hours, yesterday); ok {
		if opens, closes, ok := period(entry); ok && closes < opens && current <= closes {
			return true, formatPeriod(entry)
		}
	}

	return false, ""
}

// IsOpen reports whether the place is open at the given time
func IsOpen(hours []schema.BusinessHours, now time.Time) bool {
	open, _ := BusinessStatus(hours, now)
	return open
}

func findDay(hours []schema.BusinessHours, day time.Weekday) (schema.BusinessHours, bool) {
	name := day.String()
	for _, h := range hours {
		if strings.EqualFold(strings.TrimSpace(h.Day), name) {
			return h, true
		}
	}
	return schema.BusinessHours{}, false
}

func period(h schema.BusinessHours) (int, int, bool) {
	if h.Closed {
		return 0, 0, false
	}

	opens, ok := parseClock(h.Open)
	if !ok {
		return 0, 0, false
	}

	closes, ok := parseClock(h.Close)
	if !ok {
		return 0, 0, false
	}

	return opens, closes, true
}

// parseClock converts a 24-hour HH:MM string into minutes of the day.
// "24:00" is accepted as the end of the day.
func parseClock(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if h < 0 || m < 0 || m > 59 || h*60+m > minutesPerDay {
		return 0, false
	}

	return h*60 + m, true
}

func formatPeriod(h schema.BusinessHours) string {
	return fmt.Sprintf("%s - %s", strings.TrimSpace(h.Open), strings.TrimSpace(h.Close))
}
