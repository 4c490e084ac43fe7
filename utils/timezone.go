package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var locations map[string]*time.Location = map[string]*time.Location{}

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))
	}
}

// GetLocation returns a location of a GMT-X or GMT-X:MM format timezone,
// or of an IANA zone name. It returns nil for unknown timezones.
func GetLocation(timezone string) *time.Location {
	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		return nil
	}

	if tz, ok := locations[strings.ToUpper(timezone)]; ok {
		return tz
	}

	if tz := parseGMTOffset(strings.ToUpper(timezone)); tz != nil {
		return tz
	}

	if tz, err := time.LoadLocation(timezone); err == nil {
		return tz
	}

	return nil
}

// LocalTime converts t into the given timezone. Unknown or empty timezones
// leave t in its own location.
func LocalTime(t time.Time, timezone string) time.Time {
	if tz := GetLocation(timezone); tz != nil {
		return t.In(tz)
	}
	return t
}

func parseGMTOffset(name string) *time.Location {
	if !strings.HasPrefix(name, "GMT") || len(name) < 5 {
		return nil
	}

	sign := 1
	switch name[3] {
	case '+':
	case '-':
		sign = -1
	default:
		return nil
	}

	parts := strings.Split(name[4:], ":")
	if len(parts) != 2 {
		return nil
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h > 14 {
		return nil
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return nil
	}

	return time.FixedZone(name, sign*(h*3600+m*60))
}
