package report

import (
	"fmt"
	"time"
)

// dailyBucketCount is the number of calendar days shown on the daily chart.
const dailyBucketCount = 7

// weeklyBucketCount is the number of trailing weeks shown on the weekly chart.
const weeklyBucketCount = 4

// monthlyWindowCap limits the current-month chart to four seven-day windows.
const monthlyWindowCap = 4

// daysPerWeek converts the daily budget into a weekly budget line.
const daysPerWeek = 7

// weekStartDate returns the Monday of the week containing the given date.
func weekStartDate(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, date.Location())
}

// startOfDay truncates a time to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay reports whether two times fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// withinRange reports whether t falls on a day between start and end,
// both inclusive.
func withinRange(t, start, end time.Time) bool {
	day := startOfDay(t)
	return !day.Before(start) && !day.After(end)
}

// dailyPeriods returns the last seven calendar days ending on now's day,
// oldest first, labelled with the short weekday name.
func dailyPeriods(now time.Time) []Bucket {
	periods := make([]Bucket, 0, dailyBucketCount)
	for i := dailyBucketCount - 1; i >= 0; i-- {
		day := startOfDay(now.AddDate(0, 0, -i))
		periods = append(periods, Bucket{
			Label: day.Format("Mon"),
			Start: day,
			End:   day,
		})
	}
	return periods
}

// weeklyPeriods returns the last four Monday-aligned weeks ending with the
// week containing now, oldest first.
func weeklyPeriods(now time.Time) []Bucket {
	currentWeek := weekStartDate(now)
	periods := make([]Bucket, 0, weeklyBucketCount)
	for i := weeklyBucketCount - 1; i >= 0; i-- {
		start := currentWeek.AddDate(0, 0, -7*i)
		periods = append(periods, Bucket{
			Label: fmt.Sprintf("Week %d", weeklyBucketCount-i),
			Start: start,
			End:   start.AddDate(0, 0, 6),
		})
	}
	return periods
}

// monthlyPeriods splits the month containing now into seven-day windows
// aligned to the weekday grid of the month's first day: the first window
// starts on the Monday of the week containing the 1st, so day-of-week
// columns line up across windows. Windows that end before the month starts
// are skipped and at most four windows are returned.
func monthlyPeriods(now time.Time) []Bucket {
	loc := now.Location()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, -1)

	periods := make([]Bucket, 0, monthlyWindowCap)
	windowStart := weekStartDate(monthStart)
	week := 1
	for !windowStart.After(monthEnd) && len(periods) < monthlyWindowCap {
		periods = append(periods, Bucket{
			Label: fmt.Sprintf("Week %d", week),
			Start: windowStart,
			End:   windowStart.AddDate(0, 0, 6),
		})
		windowStart = windowStart.AddDate(0, 0, 7)
		week++
	}
	return periods
}
