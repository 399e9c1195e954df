package model

import (
	"fmt"
	"time"
)

// MonthGrid lays out the month containing ref as a Sunday-start grid.
// Cells hold the day number, or 0 for the leading blanks before the 1st.
func MonthGrid(ref time.Time) []int {
	year, month, _ := ref.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday())

	grid := make([]int, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		grid = append(grid, 0)
	}
	for day := 1; day <= daysInMonth; day++ {
		grid = append(grid, day)
	}
	return grid
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// FormatDate renders a date the way the app displays it, e.g. 2026年9月1日.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}
