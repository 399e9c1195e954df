package model

import (
	"errors"
	"reflect"
	"testing"
)

func ex(name string) Exercise {
	return Exercise{Name: name, Emoji: "💪", Reps: 10, Sets: 3, Unit: UnitReps}
}

func assertAllDaysPresent(t *testing.T, m WeeklyMenu) {
	t.Helper()
	if len(m) != 7 {
		t.Fatalf("expected 7 weekday keys, got %d", len(m))
	}
	for _, d := range Weekdays() {
		if _, ok := m[d]; !ok {
			t.Fatalf("weekday %q missing from menu", d)
		}
	}
}

func TestNewWeeklyMenuHasAllDays(t *testing.T) {
	assertAllDaysPresent(t, NewWeeklyMenu())
}

func TestCloneRestoresMissingDays(t *testing.T) {
	partial := WeeklyMenu{Monday: []Exercise{ex("プランク")}}
	cloned := partial.Clone()
	assertAllDaysPresent(t, cloned)
	if len(cloned[Monday]) != 1 {
		t.Fatalf("expected Monday preserved, got %d entries", len(cloned[Monday]))
	}
}

func TestAddDoesNotMutateOriginal(t *testing.T) {
	m := NewWeeklyMenu()
	next, err := m.Add(Tuesday, ex("腕立て伏せ"))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(m[Tuesday]) != 0 {
		t.Fatalf("original mutated: %d entries", len(m[Tuesday]))
	}
	if len(next[Tuesday]) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(next[Tuesday]))
	}
	assertAllDaysPresent(t, next)
}

func TestAddThenDeleteRoundTrip(t *testing.T) {
	m := NewWeeklyMenu()
	next, err := m.Add(Tuesday, ex("腕立て伏せ"))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	next, err = next.Delete(Tuesday, 0)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(next[Tuesday]) != 0 {
		t.Fatalf("expected Tuesday back to empty, got %d entries", len(next[Tuesday]))
	}
	assertAllDaysPresent(t, next)
}

func TestEditReplacesInPlace(t *testing.T) {
	m, _ := NewWeeklyMenu().Add(Monday, ex("a"))
	m, _ = m.Add(Monday, ex("b"))
	next, err := m.Edit(Monday, 1, ex("c"))
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if next[Monday][0].Name != "a" || next[Monday][1].Name != "c" {
		t.Fatalf("unexpected order after edit: %+v", next[Monday])
	}
	if m[Monday][1].Name != "b" {
		t.Fatal("original snapshot mutated by edit")
	}
}

func TestDeleteShiftsLeft(t *testing.T) {
	m, _ := NewWeeklyMenu().Add(Friday, ex("a"))
	m, _ = m.Add(Friday, ex("b"))
	m, _ = m.Add(Friday, ex("c"))
	next, err := m.Delete(Friday, 1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	got := []string{next[Friday][0].Name, next[Friday][1].Name}
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("unexpected order after delete: %v", got)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	m := NewWeeklyMenu()
	if _, err := m.Delete(Monday, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := m.Edit(Monday, -1, ex("x")); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := m.Add(Weekday("祝"), ex("x")); !errors.Is(err, ErrInvalidWeekday) {
		t.Fatalf("expected ErrInvalidWeekday, got %v", err)
	}
}

func TestCopyLeavesSourceUnchanged(t *testing.T) {
	m, _ := NewWeeklyMenu().Add(Monday, ex("a"))
	m, _ = m.Add(Monday, ex("b"))
	m, _ = m.Add(Saturday, ex("z"))

	next, err := m.Copy(Monday, []Weekday{Saturday, Sunday})
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if len(next[Monday]) != 2 {
		t.Fatalf("source day changed: %d entries", len(next[Monday]))
	}
	satNames := []string{next[Saturday][0].Name, next[Saturday][1].Name, next[Saturday][2].Name}
	if !reflect.DeepEqual(satNames, []string{"z", "a", "b"}) {
		t.Fatalf("unexpected Saturday order: %v", satNames)
	}
	sunNames := []string{next[Sunday][0].Name, next[Sunday][1].Name}
	if !reflect.DeepEqual(sunNames, []string{"a", "b"}) {
		t.Fatalf("unexpected Sunday order: %v", sunNames)
	}

	// Copies are independent values.
	next2, _ := next.Edit(Saturday, 1, ex("edited"))
	if next2[Monday][0].Name != "a" {
		t.Fatal("editing a copy changed the source day")
	}
}

func TestReorderSameIndexIsNoOp(t *testing.T) {
	m, _ := NewWeeklyMenu().Add(Monday, ex("a"))
	m, _ = m.Add(Monday, ex("b"))
	next, err := m.Reorder(Monday, 1, 1)
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if !reflect.DeepEqual(next, m) {
		t.Fatalf("expected identical snapshot, got %+v", next)
	}
}

func TestReorderMovesWithinDay(t *testing.T) {
	m, _ := NewWeeklyMenu().Add(Monday, ex("a"))
	m, _ = m.Add(Monday, ex("b"))
	m, _ = m.Add(Monday, ex("c"))

	next, err := m.Reorder(Monday, 0, 2)
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	names := []string{next[Monday][0].Name, next[Monday][1].Name, next[Monday][2].Name}
	if !reflect.DeepEqual(names, []string{"b", "c", "a"}) {
		t.Fatalf("unexpected order after 0->2: %v", names)
	}

	next, err = m.Reorder(Monday, 2, 0)
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	names = []string{next[Monday][0].Name, next[Monday][1].Name, next[Monday][2].Name}
	if !reflect.DeepEqual(names, []string{"c", "a", "b"}) {
		t.Fatalf("unexpected order after 2->0: %v", names)
	}
}

func TestMoveAcrossDays(t *testing.T) {
	m, _ := NewWeeklyMenu().Add(Monday, ex("a"))
	m, _ = m.Add(Monday, ex("b"))

	edited := ex("a-edited")
	next, err := m.MoveAcrossDays(Monday, 0, edited, []Weekday{Wednesday, Friday})
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if len(next[Monday]) != 1 || next[Monday][0].Name != "b" {
		t.Fatalf("unexpected Monday after move: %+v", next[Monday])
	}
	if len(next[Wednesday]) != 1 || next[Wednesday][0].Name != "a-edited" {
		t.Fatalf("unexpected Wednesday after move: %+v", next[Wednesday])
	}
	if len(next[Friday]) != 1 {
		t.Fatalf("unexpected Friday after move: %+v", next[Friday])
	}
	assertAllDaysPresent(t, next)
}

func TestMoveAcrossDaysBackToSameDayAppends(t *testing.T) {
	m, _ := NewWeeklyMenu().Add(Monday, ex("a"))
	m, _ = m.Add(Monday, ex("b"))

	next, err := m.MoveAcrossDays(Monday, 0, ex("a2"), []Weekday{Monday})
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	names := []string{next[Monday][0].Name, next[Monday][1].Name}
	if !reflect.DeepEqual(names, []string{"b", "a2"}) {
		t.Fatalf("unexpected order: %v", names)
	}
}

func TestDefaultWeeklyMenuShape(t *testing.T) {
	m := DefaultWeeklyMenu()
	assertAllDaysPresent(t, m)
	if len(m[Monday]) != 2 || len(m[Saturday]) != 0 || len(m[Sunday]) != 0 {
		t.Fatalf("unexpected default shape: mon=%d sat=%d sun=%d", len(m[Monday]), len(m[Saturday]), len(m[Sunday]))
	}
	for _, d := range Weekdays() {
		for _, e := range m[d] {
			if err := e.Validate(); err != nil {
				t.Fatalf("default exercise invalid: %v", err)
			}
		}
	}
}

func TestTemplatesAreValid(t *testing.T) {
	templates := Templates()
	if len(templates) == 0 {
		t.Fatal("expected template exercises")
	}
	for _, e := range templates {
		if err := e.Validate(); err != nil {
			t.Fatalf("template %q invalid: %v", e.Name, err)
		}
		if e.Category == "" {
			t.Fatalf("template %q missing category", e.Name)
		}
	}
}
