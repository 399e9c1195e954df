package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitroutine/trainy/internal/model"
	"github.com/fitroutine/trainy/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.SelectedDate = m.SelectedDate.AddDate(0, 0, -1)
		return m, nil
	case "right", "l":
		m.SelectedDate = m.SelectedDate.AddDate(0, 0, 1)
		return m, nil
	case "up", "k":
		m.SelectedDate = m.SelectedDate.AddDate(0, 0, -7)
		return m, nil
	case "down", "j":
		m.SelectedDate = m.SelectedDate.AddDate(0, 0, 7)
		return m, nil
	case "p", "pgup":
		m.SelectedDate = m.SelectedDate.AddDate(0, -1, 0)
		return m, nil
	case "n", "pgdown":
		m.SelectedDate = m.SelectedDate.AddDate(0, 1, 0)
		return m, nil
	case "t":
		m.SelectedDate = m.today()
		return m, nil
	case "e", "m":
		m.MgmtDay = int(m.SelectedDate.Weekday())
		m.MgmtCursor = 0
		m.CurrentScreen = ScreenMenuManagement
		return m, nil
	case "esc", "b":
		m.CurrentScreen = ScreenStart
		return m, nil
	}
	return m, nil
}

func (m Model) calendarPanelData() views.CalendarPanelData {
	sel := m.SelectedDate
	year, month, _ := sel.Date()
	grid := model.MonthGrid(sel)

	completed := make(map[int]bool)
	for day := 1; day <= 31; day++ {
		candidate := timeOnDay(sel, day)
		if candidate.Month() != month {
			break
		}
		if m.Ledger.IsComplete(candidate) {
			completed[day] = true
		}
	}

	today := m.today()
	todayDay := 0
	if today.Year() == year && today.Month() == month {
		todayDay = today.Day()
	}

	day := model.WeekdayOf(sel)
	menu := m.Menus[day]
	items := make([]views.ExerciseLine, 0, len(menu))
	for _, ex := range menu {
		items = append(items, views.ExerciseLine{Emoji: ex.Emoji, Name: ex.Name, Dose: ex.Dose()})
	}

	return views.CalendarPanelData{
		MonthLabel:       views.MonthLabel(year, month),
		WeekdayLabels:    model.Weekdays(),
		Grid:             grid,
		SelectedDay:      sel.Day(),
		TodayDay:         todayDay,
		CompletedDays:    completed,
		SelectedLabel:    model.FormatDate(sel),
		SelectedComplete: m.Ledger.IsComplete(sel),
		SelectedWeekday:  day,
		Items:            items,
	}
}

// timeOnDay returns ref's month with its day replaced.
func timeOnDay(ref time.Time, day int) time.Time {
	year, month, _ := ref.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, ref.Location())
}
