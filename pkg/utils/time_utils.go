package utils

import "time"

const (
	MillisPerDay = int64(24 * 60 * 60 * 1000)

	TrialPeriodMillis   = 3 * MillisPerDay
	MonthlyPeriodMillis = 30 * MillisPerDay
	YearlyPeriodMillis  = 365 * MillisPerDay

	ExpiringSoonWindowMillis = 7 * MillisPerDay
)

// All membership timestamps are stored as epoch milliseconds.
func NowUnixMillis() int64 { return time.Now().UnixMilli() }

func FromUnixMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
