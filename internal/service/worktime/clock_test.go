package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"regular time", "9:30", 9*time.Hour + 30*time.Minute},
		{"zero padded hour", "09:30", 9*time.Hour + 30*time.Minute},
		{"midnight", "0:00", 0},
		{"hour 24 taken literally", "24:00", 24 * time.Hour},
		{"past midnight next day", "25:30", 25*time.Hour + 30*time.Minute},
		{"empty string", "", 0},
		{"missing minutes", "9", 0},
		{"too many parts", "9:30:00", 0},
		{"non numeric hour", "ab:30", 0},
		{"non numeric minutes", "9:xx", 0},
		{"negative hour", "-5:30", 0},
		{"negative minutes", "5:-30", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseClock(tt.input))
		})
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{"regular duration", 9*time.Hour + 30*time.Minute, "9:30"},
		{"zero", 0, "0:00"},
		{"minutes zero padded", 8*time.Hour + 5*time.Minute, "8:05"},
		{"over 24 hours", 25 * time.Hour, "25:00"},
		{"over 100 hours", 170*time.Hour + 45*time.Minute, "170:45"},
		{"negative formats as zero", -time.Hour, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.input))
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	t.Parallel()

	// decode(encode(d)) == d for any minute-granular duration under a day
	for minutes := 0; minutes < 24*60; minutes += 7 {
		d := time.Duration(minutes) * time.Minute
		assert.Equal(t, d, ParseClock(FormatClock(d)), "round trip failed for %v", d)
	}
}
