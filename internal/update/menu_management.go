package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitroutine/trainy/internal/model"
	"github.com/fitroutine/trainy/internal/views"
)

func (m Model) handleManagementKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Copy.Active {
		return m.handleCopyKey(msg)
	}

	day := m.mgmtWeekday()
	menu := m.Menus[day]

	switch msg.String() {
	case "tab", "right", "l":
		m.MgmtDay = (m.MgmtDay + 1) % 7
		m.MgmtCursor = 0
		return m, nil
	case "shift+tab", "left", "h":
		m.MgmtDay = (m.MgmtDay + 6) % 7
		m.MgmtCursor = 0
		return m, nil
	case "down", "j":
		if m.MgmtCursor < len(menu)-1 {
			m.MgmtCursor++
		}
		return m, nil
	case "up", "k":
		if m.MgmtCursor > 0 {
			m.MgmtCursor--
		}
		return m, nil
	case "J":
		return m.reorderSelected(m.MgmtCursor + 1)
	case "K":
		return m.reorderSelected(m.MgmtCursor - 1)
	case "a":
		m.Detail = newDetailForm()
		m.Detail.Days[day] = true
		m.CurrentScreen = ScreenMenuDetail
		return m, m.Detail.name.Focus()
	case "e", "enter":
		if m.MgmtCursor >= len(menu) {
			return m, nil
		}
		m.Detail = detailFormFor(menu[m.MgmtCursor], day, m.MgmtCursor)
		m.CurrentScreen = ScreenMenuDetail
		return m, m.Detail.name.Focus()
	case "d":
		if m.MgmtCursor >= len(menu) {
			return m, nil
		}
		next, err := m.Menus.Delete(day, m.MgmtCursor)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Menus = next
		if m.MgmtCursor > 0 && m.MgmtCursor >= len(m.Menus[day]) {
			m.MgmtCursor--
		}
		m.persistMenus("メニューを削除しました")
		return m, nil
	case "c":
		if len(menu) == 0 {
			m.Status = StatusBar{Text: "コピーするメニューがありません", IsError: true}
			return m, nil
		}
		m.Copy = CopyState{
			Active:    true,
			SourceDay: day,
			Targets:   make(map[model.Weekday]bool),
		}
		return m, nil
	case "esc", "b":
		m.CurrentScreen = ScreenCalendar
		return m, nil
	}
	return m, nil
}

// reorderSelected moves the highlighted exercise to position to within
// the current day and keeps the cursor on it.
func (m Model) reorderSelected(to int) (tea.Model, tea.Cmd) {
	day := m.mgmtWeekday()
	if to < 0 || to >= len(m.Menus[day]) {
		return m, nil
	}
	next, err := m.Menus.Reorder(day, m.MgmtCursor, to)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Menus = next
	m.MgmtCursor = to
	m.persistMenus("並び順を保存しました")
	return m, nil
}

func (m Model) handleCopyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if day, ok := weekdayForDigit(msg.String()); ok {
		if day != m.Copy.SourceDay {
			m.Copy.Targets[day] = !m.Copy.Targets[day]
		}
		return m, nil
	}

	switch msg.String() {
	case "enter":
		targets := selectedWeekdays(m.Copy.Targets)
		if len(targets) == 0 {
			m.Status = StatusBar{Text: "コピー先の曜日を選択してください", IsError: true}
			return m, nil
		}
		next, err := m.Menus.Copy(m.Copy.SourceDay, targets)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Menus = next
		m.Copy = CopyState{}
		m.persistMenus("メニューをコピーしました")
		return m, nil
	case "esc", "b":
		m.Copy = CopyState{}
		return m, nil
	}
	return m, nil
}

// weekdayForDigit maps keys 1..7 to Sunday..Saturday.
func weekdayForDigit(key string) (model.Weekday, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '7' {
		return "", false
	}
	return model.Weekdays()[key[0]-'1'], true
}

// selectedWeekdays returns the toggled days in week order.
func selectedWeekdays(set map[model.Weekday]bool) []model.Weekday {
	out := make([]model.Weekday, 0, len(set))
	for _, day := range model.Weekdays() {
		if set[day] {
			out = append(out, day)
		}
	}
	return out
}

func (m Model) managementPanelData() views.ManagementPanelData {
	day := m.mgmtWeekday()
	menu := m.Menus[day]

	items := make([]views.ExerciseLine, 0, len(menu))
	for _, ex := range menu {
		items = append(items, views.ExerciseLine{Emoji: ex.Emoji, Name: ex.Name, Dose: ex.Dose()})
	}

	counts := make([]int, 0, 7)
	for _, d := range model.Weekdays() {
		counts = append(counts, len(m.Menus[d]))
	}

	data := views.ManagementPanelData{
		Days:       model.Weekdays(),
		DayCounts:  counts,
		ActiveDay:  m.MgmtDay,
		Cursor:     m.MgmtCursor,
		Items:      items,
		CopyActive: m.Copy.Active,
	}
	if m.Copy.Active {
		data.CopySource = m.Copy.SourceDay
		data.CopyTargets = make(map[model.Weekday]bool, len(m.Copy.Targets))
		for d, on := range m.Copy.Targets {
			data.CopyTargets[d] = on
		}
	}
	return data
}
