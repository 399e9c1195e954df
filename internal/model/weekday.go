package model

import "time"

type Weekday string

const (
	Sunday    Weekday = "日"
	Monday    Weekday = "月"
	Tuesday   Weekday = "火"
	Wednesday Weekday = "水"
	Thursday  Weekday = "木"
	Friday    Weekday = "金"
	Saturday  Weekday = "土"
)

// weekdayOrder is Sunday-start, matching time.Weekday numbering.
var weekdayOrder = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func (d Weekday) IsValid() bool {
	switch d {
	case Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	default:
		return false
	}
}

// Weekdays returns all seven labels in Sunday-start display order.
func Weekdays() []Weekday {
	out := make([]Weekday, len(weekdayOrder))
	copy(out, weekdayOrder[:])
	return out
}

// WeekdayOf maps a date to its weekday label.
func WeekdayOf(t time.Time) Weekday {
	return weekdayOrder[int(t.Weekday())]
}
