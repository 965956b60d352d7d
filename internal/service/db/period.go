package db

import (
	"fmt"
	"math"
	"time"
)

// Range names accepted by the dashboard endpoints.
const (
	RangeWeek    = "week"
	RangeMonth   = "month"
	RangeQuarter = "quarter"
	RangeYear    = "year"
)

// PeriodStart returns the start of the period containing now:
// Monday 00:00 for week, day 1 for month, the quarter's first month for
// quarter, January 1 for year. Unknown ranges fall back to month.
func PeriodStart(rangeName string, now time.Time) time.Time {
	switch rangeName {
	case RangeWeek:
		// time.Weekday has Sunday as 0; shift so Monday starts the week.
		offset := (int(now.Weekday()) + 6) % 7
		day := now.AddDate(0, 0, -offset)
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	case RangeQuarter:
		month := time.Month((int(now.Month())-1)/3*3 + 1)
		return time.Date(now.Year(), month, 1, 0, 0, 0, 0, now.Location())
	case RangeYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// PreviousPeriodStart returns the start of the period before the one
// beginning at start.
func PreviousPeriodStart(rangeName string, start time.Time) time.Time {
	switch rangeName {
	case RangeWeek:
		return start.AddDate(0, 0, -7)
	case RangeQuarter:
		return start.AddDate(0, -3, 0)
	case RangeYear:
		return start.AddDate(-1, 0, 0)
	default:
		return start.AddDate(0, -1, 0)
	}
}

// PercentageChange rounds the relative change to a whole percent. A zero
// previous value yields 100 when current is positive, otherwise 0.
func PercentageChange(current, previous int) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

// TrendWindowStart returns the start of the rolling window the trend
// endpoint covers: 7, 30, 90 or 365 days back from now.
func TrendWindowStart(rangeName string, now time.Time) time.Time {
	switch rangeName {
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeMonth:
		return now.AddDate(0, 0, -30)
	case RangeQuarter:
		return now.AddDate(0, 0, -90)
	default:
		return now.AddDate(0, 0, -365)
	}
}

// BucketKey formats a timestamp into the trend bucket label for the
// range: day for week, ISO week for month, month for quarter, quarter
// for year.
func BucketKey(rangeName string, t time.Time) string {
	switch rangeName {
	case RangeWeek:
		return t.Format("2006-01-02")
	case RangeMonth:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case RangeQuarter:
		return t.Format("2006-01")
	default:
		return QuarterLabel(t)
	}
}

// QuarterLabel formats a timestamp as "YYYY-Qn".
func QuarterLabel(t time.Time) string {
	return fmt.Sprintf("%d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
}
