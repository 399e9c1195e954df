package model

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("model: exercise index out of range")

// WeeklyMenu maps every weekday to its ordered exercise list. All seven
// weekday keys are always present, possibly with an empty list. Mutating
// operations return a fresh snapshot and leave the receiver untouched.
type WeeklyMenu map[Weekday][]Exercise

// NewWeeklyMenu returns an empty menu with all seven weekday keys.
func NewWeeklyMenu() WeeklyMenu {
	m := make(WeeklyMenu, 7)
	for _, d := range Weekdays() {
		m[d] = []Exercise{}
	}
	return m
}

// Clone deep-copies the menu, restoring any missing weekday keys so the
// all-keys-present invariant survives deserialization of older payloads.
func (m WeeklyMenu) Clone() WeeklyMenu {
	out := NewWeeklyMenu()
	for _, d := range Weekdays() {
		if src, ok := m[d]; ok && len(src) > 0 {
			dst := make([]Exercise, len(src))
			copy(dst, src)
			out[d] = dst
		}
	}
	return out
}

func (m WeeklyMenu) checkDay(day Weekday) error {
	if !day.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
	}
	return nil
}

func (m WeeklyMenu) checkIndex(day Weekday, index int) error {
	if index < 0 || index >= len(m[day]) {
		return fmt.Errorf("%w: %s[%d] of %d", ErrIndexOutOfRange, day, index, len(m[day]))
	}
	return nil
}

// Add appends an exercise to the end of a day's list.
func (m WeeklyMenu) Add(day Weekday, ex Exercise) (WeeklyMenu, error) {
	if err := m.checkDay(day); err != nil {
		return nil, err
	}
	next := m.Clone()
	next[day] = append(next[day], ex)
	return next, nil
}

// Edit replaces the exercise at index in day's list.
func (m WeeklyMenu) Edit(day Weekday, index int, ex Exercise) (WeeklyMenu, error) {
	if err := m.checkDay(day); err != nil {
		return nil, err
	}
	if err := m.checkIndex(day, index); err != nil {
		return nil, err
	}
	next := m.Clone()
	next[day][index] = ex
	return next, nil
}

// Delete removes the exercise at index, shifting later entries left.
// Indices held by the caller are stale after this and must be re-derived.
func (m WeeklyMenu) Delete(day Weekday, index int) (WeeklyMenu, error) {
	if err := m.checkDay(day); err != nil {
		return nil, err
	}
	if err := m.checkIndex(day, index); err != nil {
		return nil, err
	}
	next := m.Clone()
	next[day] = append(next[day][:index], next[day][index+1:]...)
	return next, nil
}

// Copy appends every exercise of sourceDay, in order, to the end of each
// target day. The source day is left unchanged; copies are independent values.
func (m WeeklyMenu) Copy(sourceDay Weekday, targetDays []Weekday) (WeeklyMenu, error) {
	if err := m.checkDay(sourceDay); err != nil {
		return nil, err
	}
	for _, d := range targetDays {
		if err := m.checkDay(d); err != nil {
			return nil, err
		}
	}
	next := m.Clone()
	src := make([]Exercise, len(m[sourceDay]))
	copy(src, m[sourceDay])
	for _, d := range targetDays {
		next[d] = append(next[d], src...)
	}
	return next, nil
}

// Reorder moves the exercise at sourceIndex to destinationIndex within one
// day's list. Equal indices are a no-op.
func (m WeeklyMenu) Reorder(day Weekday, sourceIndex, destinationIndex int) (WeeklyMenu, error) {
	if err := m.checkDay(day); err != nil {
		return nil, err
	}
	if err := m.checkIndex(day, sourceIndex); err != nil {
		return nil, err
	}
	if err := m.checkIndex(day, destinationIndex); err != nil {
		return nil, err
	}
	next := m.Clone()
	if sourceIndex == destinationIndex {
		return next, nil
	}
	list := next[day]
	moved := list[sourceIndex]
	list = append(list[:sourceIndex], list[sourceIndex+1:]...)
	list = append(list[:destinationIndex], append([]Exercise{moved}, list[destinationIndex:]...)...)
	next[day] = list
	return next, nil
}

// MoveAcrossDays implements edit-with-day-reassignment: the exercise at
// fromIndex is removed from fromDay, then ex (the possibly edited record)
// is appended to every target day, which may include fromDay again.
func (m WeeklyMenu) MoveAcrossDays(fromDay Weekday, fromIndex int, ex Exercise, targetDays []Weekday) (WeeklyMenu, error) {
	next, err := m.Delete(fromDay, fromIndex)
	if err != nil {
		return nil, err
	}
	for _, d := range targetDays {
		next, err = next.Add(d, ex)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}

// Total counts exercises across all days.
func (m WeeklyMenu) Total() int {
	n := 0
	for _, d := range Weekdays() {
		n += len(m[d])
	}
	return n
}
