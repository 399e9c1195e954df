package update

import (
	"context"
	"testing"

	"github.com/fitroutine/trainy/internal/model"
	"github.com/fitroutine/trainy/internal/storage"
)

// openManagement walks start -> calendar -> management with Monday active.
func openManagement(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t, monday)
	m = press(t, m, "c", "e")
	if m.CurrentScreen != ScreenMenuManagement {
		t.Fatalf("expected management screen, got %s", m.CurrentScreen)
	}
	if m.mgmtWeekday() != model.Monday {
		t.Fatalf("expected Monday active, got %s", m.mgmtWeekday())
	}
	return m
}

func loadPersistedMenus(t *testing.T, m Model) model.WeeklyMenu {
	t.Helper()
	menus, err := storage.NewKeyspace[model.WeeklyMenu](m.store, storage.KeyWeeklyMenus).
		LoadOr(context.Background(), nil)
	if err != nil {
		t.Fatalf("loading persisted menus: %v", err)
	}
	return menus
}

func TestAddExerciseAppendsAndPersists(t *testing.T) {
	m := openManagement(t)
	before := len(m.Menus[model.Monday])

	m = press(t, m, "a")
	if m.CurrentScreen != ScreenMenuDetail {
		t.Fatalf("expected detail screen, got %s", m.CurrentScreen)
	}
	if !m.Detail.Days[model.Monday] {
		t.Fatal("expected the active day preselected")
	}

	m = press(t, m, "スクワット", "enter")
	if m.CurrentScreen != ScreenMenuManagement {
		t.Fatalf("expected back on management, got %s", m.CurrentScreen)
	}
	menu := m.Menus[model.Monday]
	if len(menu) != before+1 {
		t.Fatalf("expected %d exercises, got %d", before+1, len(menu))
	}
	added := menu[len(menu)-1]
	if added.Name != "スクワット" || added.Unit != model.UnitReps {
		t.Fatalf("unexpected added exercise %+v", added)
	}

	persisted := loadPersistedMenus(t, m)
	if len(persisted[model.Monday]) != before+1 {
		t.Fatal("expected the new exercise persisted")
	}
}

func TestAddRejectsEmptyNameAndNoDays(t *testing.T) {
	m := openManagement(t)
	m = press(t, m, "a", "enter")
	if m.CurrentScreen != ScreenMenuDetail || !m.Status.IsError {
		t.Fatal("expected a blocking notice for the empty name")
	}

	// Fill the name but clear the day selection.
	m = press(t, m, "腹筋")
	m.Detail.Days[model.Monday] = false
	m = press(t, m, "enter")
	if m.CurrentScreen != ScreenMenuDetail || !m.Status.IsError {
		t.Fatal("expected a blocking notice for zero selected days")
	}
}

func TestEditMovesExerciseToSelectedDays(t *testing.T) {
	m := openManagement(t)
	original := m.Menus[model.Monday][0]

	m = press(t, m, "e")
	if !m.Detail.Editing.Active || m.Detail.Editing.Index != 0 {
		t.Fatalf("expected edit target index 0, got %+v", m.Detail.Editing)
	}
	if m.Detail.name.Value() != original.Name {
		t.Fatalf("expected prefilled name %q, got %q", original.Name, m.Detail.name.Value())
	}

	// Add Wednesday to the selection and save unchanged.
	m.Detail.Days[model.Wednesday] = true
	m = press(t, m, "enter")

	mondayMenu := m.Menus[model.Monday]
	if mondayMenu[len(mondayMenu)-1].Name != original.Name {
		t.Fatal("expected the edited exercise re-appended to Monday")
	}
	wednesdayMenu := m.Menus[model.Wednesday]
	if wednesdayMenu[len(wednesdayMenu)-1].Name != original.Name {
		t.Fatal("expected the edited exercise appended to Wednesday")
	}
}

func TestDeleteRemovesAndClampsCursor(t *testing.T) {
	m := openManagement(t)
	before := len(m.Menus[model.Monday])

	m = press(t, m, "j", "d") // move to last entry, delete it
	if got := len(m.Menus[model.Monday]); got != before-1 {
		t.Fatalf("expected %d exercises, got %d", before-1, got)
	}
	if m.MgmtCursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m.MgmtCursor)
	}

	persisted := loadPersistedMenus(t, m)
	if len(persisted[model.Monday]) != before-1 {
		t.Fatal("expected the deletion persisted")
	}
}

func TestCopyAppendsToTargets(t *testing.T) {
	m := openManagement(t)
	source := m.Menus[model.Monday]
	saturdayBefore := len(m.Menus[model.Saturday])

	m = press(t, m, "c")
	if !m.Copy.Active || m.Copy.SourceDay != model.Monday {
		t.Fatalf("unexpected copy state %+v", m.Copy)
	}

	m = press(t, m, "7", "enter") // Saturday, confirm
	if m.Copy.Active {
		t.Fatal("expected copy mode closed")
	}
	saturday := m.Menus[model.Saturday]
	if len(saturday) != saturdayBefore+len(source) {
		t.Fatalf("expected %d exercises on Saturday, got %d", saturdayBefore+len(source), len(saturday))
	}
	if len(m.Menus[model.Monday]) != len(source) {
		t.Fatal("copy must leave the source day unchanged")
	}
}

func TestCopyRequiresTargetSelection(t *testing.T) {
	m := openManagement(t)
	m = press(t, m, "c", "enter")
	if !m.Copy.Active || !m.Status.IsError {
		t.Fatal("expected a notice and copy mode still open")
	}
	m = press(t, m, "esc")
	if m.Copy.Active {
		t.Fatal("expected copy mode cancelled")
	}
}

func TestCopyIgnoresSourceDayToggle(t *testing.T) {
	m := openManagement(t)
	m = press(t, m, "c", "2") // 2 is Monday, the source
	if m.Copy.Targets[model.Monday] {
		t.Fatal("source day must not be selectable as a target")
	}
}

func TestReorderSwapsNeighborsAndFollowsCursor(t *testing.T) {
	m := openManagement(t)
	first := m.Menus[model.Monday][0].Name
	second := m.Menus[model.Monday][1].Name

	m = press(t, m, "J")
	menu := m.Menus[model.Monday]
	if menu[0].Name != second || menu[1].Name != first {
		t.Fatalf("expected swapped order, got %q, %q", menu[0].Name, menu[1].Name)
	}
	if m.MgmtCursor != 1 {
		t.Fatalf("expected cursor to follow to 1, got %d", m.MgmtCursor)
	}

	m = press(t, m, "K")
	menu = m.Menus[model.Monday]
	if menu[0].Name != first {
		t.Fatalf("expected original order restored, got %q first", menu[0].Name)
	}
}

func TestUnitAndDayTogglesOnFocusStops(t *testing.T) {
	m := openManagement(t)
	m = press(t, m, "a")

	m = press(t, m, "tab", "tab", "tab") // name -> reps -> sets -> unit
	if m.Detail.focus != fieldUnit {
		t.Fatalf("expected unit focus, got %d", m.Detail.focus)
	}
	m = press(t, m, " ")
	if m.Detail.Unit != model.UnitSeconds {
		t.Fatalf("expected unit cycled to 秒, got %s", m.Detail.Unit)
	}

	m = press(t, m, "tab") // -> days
	m = press(t, m, "3")
	if !m.Detail.Days[model.Tuesday] {
		t.Fatal("expected Tuesday toggled on")
	}
	m = press(t, m, "3")
	if m.Detail.Days[model.Tuesday] {
		t.Fatal("expected Tuesday toggled back off")
	}
}

func TestTemplatePickerFillsForm(t *testing.T) {
	m := openManagement(t)
	m = press(t, m, "a", "ctrl+t")
	if !m.Detail.TemplateOpen {
		t.Fatal("expected template picker open")
	}

	m = press(t, m, "enter")
	if m.Detail.TemplateOpen {
		t.Fatal("expected template picker closed")
	}
	first := model.Templates()[0]
	if m.Detail.name.Value() != first.Name {
		t.Fatalf("expected form filled with %q, got %q", first.Name, m.Detail.name.Value())
	}
	if !m.Detail.Days[model.Monday] {
		t.Fatal("template pick must keep the day selection")
	}
}
