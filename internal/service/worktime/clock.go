package worktime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock converts an "H:MM" clock string into a duration offset from the
// day's 00:00. Hour values of 24 and above are taken literally, so "25:30"
// means 01:30 on the following calendar day. Empty or malformed input decodes
// to zero: incomplete rows must not block report generation.
func ParseClock(s string) time.Duration {
	if s == "" {
		return 0
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 {
		return 0
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
}

// FormatClock renders a duration as "H:MM" with zero-padded minutes.
// Negative durations format as "0:00".
func FormatClock(d time.Duration) string {
	if d < 0 {
		return "0:00"
	}
	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	return fmt.Sprintf("%d:%02d", hours, minutes)
}
