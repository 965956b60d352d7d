package db

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 4, 5, 0, time.UTC)
}

func TestPeriodStart(t *testing.T) {
	cases := []struct {
		rangeName string
		now       time.Time
		want      time.Time
	}{
		// 2026-09-01 is a Tuesday; the week starts Monday 2026-08-31.
		{RangeWeek, date(2026, time.September, 1), time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)},
		// A Sunday belongs to the week begun the previous Monday.
		{RangeWeek, date(2026, time.September, 6), time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)},
		{RangeMonth, date(2026, time.September, 15), time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)},
		{RangeQuarter, date(2026, time.August, 20), time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{RangeQuarter, date(2026, time.December, 31), time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{RangeYear, date(2026, time.June, 10), time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
		// Unknown range defaults to month.
		{"fortnight", date(2026, time.September, 15), time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		if got := PeriodStart(c.rangeName, c.now); !got.Equal(c.want) {
			t.Errorf("PeriodStart(%s, %v) = %v, want %v", c.rangeName, c.now, got, c.want)
		}
	}
}

func TestPreviousPeriodStart(t *testing.T) {
	cases := []struct {
		rangeName string
		start     time.Time
		want      time.Time
	}{
		{RangeWeek, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)},
		{RangeMonth, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{RangeQuarter, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{RangeYear, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		if got := PreviousPeriodStart(c.rangeName, c.start); !got.Equal(c.want) {
			t.Errorf("PreviousPeriodStart(%s, %v) = %v, want %v", c.rangeName, c.start, got, c.want)
		}
	}
}

func TestPercentageChange(t *testing.T) {
	cases := []struct {
		current, previous, want int
	}{
		{10, 0, 100},
		{0, 0, 0},
		{15, 10, 50},
		{5, 10, -50},
		{10, 3, 233},
		{7, 7, 0},
	}
	for _, c := range cases {
		if got := PercentageChange(c.current, c.previous); got != c.want {
			t.Errorf("PercentageChange(%d, %d) = %d, want %d", c.current, c.previous, got, c.want)
		}
	}
}

func TestBucketKey(t *testing.T) {
	ts := date(2026, time.September, 1)
	cases := []struct {
		rangeName string
		want      string
	}{
		{RangeWeek, "2026-09-01"},
		{RangeMonth, "2026-W36"},
		{RangeQuarter, "2026-09"},
		{RangeYear, "2026-Q3"},
	}
	for _, c := range cases {
		if got := BucketKey(c.rangeName, ts); got != c.want {
			t.Errorf("BucketKey(%s) = %q, want %q", c.rangeName, got, c.want)
		}
	}
}

func TestTrendWindowStart(t *testing.T) {
	now := date(2026, time.September, 1)
	if got := TrendWindowStart(RangeWeek, now); !got.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("week window start = %v", got)
	}
	if got := TrendWindowStart(RangeYear, now); !got.Equal(now.AddDate(0, 0, -365)) {
		t.Errorf("year window start = %v", got)
	}
}
