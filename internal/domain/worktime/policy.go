package worktime

import "time"

// WorkPolicy holds the company work-hour policy applied by the calculator.
// Values come from configuration so threshold changes do not require a rebuild.
type WorkPolicy struct {
	StandardDailyWork time.Duration // contractually scheduled daily work
	LegalDailyWork    time.Duration // statutory threshold where overtime premium law applies
	LateNightStart    time.Duration // offset from 00:00, e.g. 22h
	LateNightEnd      time.Duration // offset from 00:00 of the following morning, e.g. 5h
}

// DefaultPolicy returns the current company policy: 8h standard, 8h legal,
// late-night band 22:00-05:00.
func DefaultPolicy() WorkPolicy {
	return WorkPolicy{
		StandardDailyWork: 8 * time.Hour,
		LegalDailyWork:    8 * time.Hour,
		LateNightStart:    22 * time.Hour,
		LateNightEnd:      5 * time.Hour,
	}
}

// InnerOvertimeCap is how much overtime still falls inside the legal threshold.
// Zero when standard and legal thresholds are equal.
func (p WorkPolicy) InnerOvertimeCap() time.Duration {
	cap := p.LegalDailyWork - p.StandardDailyWork
	if cap < 0 {
		return 0
	}
	return cap
}
