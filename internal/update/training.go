package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitroutine/trainy/internal/model"
	"github.com/fitroutine/trainy/internal/views"
)

func (m Model) handleTrainingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menu := m.todayMenu()

	switch msg.String() {
	case "enter", " ", "right", "l":
		if m.ExerciseIndex < len(menu)-1 {
			m.ExerciseIndex++
			return m, nil
		}
		// Last exercise cleared. MarkComplete is idempotent, so running
		// the menu twice in one day records a single completion.
		m.Ledger = m.Ledger.MarkComplete(m.today())
		m.persistLedger()
		m.CurrentScreen = ScreenComplete
		return m, nil
	case "left", "h", "b":
		if m.ExerciseIndex > 0 {
			m.ExerciseIndex--
			return m, nil
		}
		m.CurrentScreen = ScreenStart
		return m, nil
	case "esc":
		m.ExerciseIndex = 0
		m.CurrentScreen = ScreenStart
		return m, nil
	case "c":
		m.SelectedDate = m.today()
		m.CurrentScreen = ScreenCalendar
		return m, nil
	}

	// Digits jump straight to that exercise.
	if key := msg.String(); len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if idx := int(key[0] - '1'); idx < len(menu) {
			m.ExerciseIndex = idx
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleCompleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ", "esc", "b":
		m.ExerciseIndex = 0
		m.CurrentScreen = ScreenStart
		return m, nil
	case "c":
		m.SelectedDate = m.today()
		m.CurrentScreen = ScreenCalendar
		return m, nil
	}
	return m, nil
}

func (m Model) trainingPanelData() views.TrainingPanelData {
	menu := m.todayMenu()
	data := views.TrainingPanelData{
		Index: m.ExerciseIndex,
		Total: len(menu),
	}
	if len(menu) > 0 {
		data.ProgressView = m.trainingProgress.ViewAs(float64(m.ExerciseIndex) / float64(len(menu)))
	}
	if m.ExerciseIndex < len(menu) {
		ex := menu[m.ExerciseIndex]
		data.Emoji = ex.Emoji
		data.Name = ex.Name
		data.Dose = ex.Dose()
		data.Memo = ex.Memo
	}
	return data
}

func (m Model) completePanelData() views.CompletePanelData {
	return views.CompletePanelData{
		DateLabel: model.FormatDate(m.today()),
		Total:     len(m.todayMenu()),
	}
}
