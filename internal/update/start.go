package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitroutine/trainy/internal/model"
	"github.com/fitroutine/trainy/internal/views"
	"github.com/fitroutine/trainy/internal/weather"
)

func (m Model) handleStartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.LocationEditing {
		return m.handleLocationKey(msg)
	}

	switch msg.String() {
	case "enter", "s":
		if len(m.todayMenu()) == 0 {
			m.Status = StatusBar{Text: "今日のメニューはありません", IsError: true}
			return m, nil
		}
		m.ExerciseIndex = 0
		m.CurrentScreen = ScreenTraining
		return m, nil
	case "c":
		m.SelectedDate = m.today()
		m.CurrentScreen = ScreenCalendar
		return m, nil
	case "l":
		m.LocationEditing = true
		m.locationInput.SetValue(string(m.Location))
		m.locationInput.CursorEnd()
		return m, m.locationInput.Focus()
	case "r":
		return m.startWeatherFetch()
	}
	return m, nil
}

func (m Model) handleLocationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.LocationEditing = false
		m.locationInput.Blur()
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.locationInput.Value())
		if name == "" {
			m.Status = StatusBar{Text: "地域名を入力してください", IsError: true}
			return m, nil
		}
		m.LocationEditing = false
		m.locationInput.Blur()
		m.Location = weather.Location(name)
		m.persistLocation()
		return m.startWeatherFetch()
	}
	var cmd tea.Cmd
	m.locationInput, cmd = m.locationInput.Update(msg)
	return m, cmd
}

func (m Model) startPanelData() views.StartPanelData {
	today := m.today()
	menu := m.todayMenu()
	items := make([]views.ExerciseLine, 0, len(menu))
	for _, ex := range menu {
		items = append(items, views.ExerciseLine{
			Emoji: ex.Emoji,
			Name:  ex.Name,
			Dose:  ex.Dose(),
		})
	}
	return views.StartPanelData{
		DateLabel:       model.FormatDate(today),
		Location:        string(m.Location),
		LocationEditing: m.LocationEditing,
		LocationInput:   m.locationInput.View(),
		Fetching:        m.FetchingWeather,
		SpinnerView:     m.fetchSpinner.View(),
		Weather:         weatherCard(m.Weather, m.WeatherReady),
		Items:           items,
	}
}

func weatherCard(r weather.Report, ready bool) views.WeatherCard {
	if !ready {
		return views.WeatherCard{}
	}
	return views.WeatherCard{
		Ready:     true,
		Icon:      string(r.Icon),
		Text:      r.Text,
		Wind:      string(r.Wind),
		Recommend: r.Recommend,
	}
}
