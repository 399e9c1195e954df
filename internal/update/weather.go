package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitroutine/trainy/internal/weather"
)

// fetchWeatherCmd looks up current conditions for the saved location.
// Errors are reported through WeatherFetchedMsg and replaced with a
// fallback report by the dispatcher, so the screen always has weather.
func (m Model) fetchWeatherCmd() tea.Cmd {
	api := m.weatherAPI
	loc := m.Location
	return func() tea.Msg {
		if api == nil {
			return WeatherFetchedMsg{Err: weather.ErrUnavailable}
		}
		report, err := api.Fetch(context.Background(), loc)
		if err != nil {
			return WeatherFetchedMsg{Err: err}
		}
		return WeatherFetchedMsg{Report: report}
	}
}

// startWeatherFetch flips the spinner on and kicks off a lookup.
func (m Model) startWeatherFetch() (Model, tea.Cmd) {
	m.FetchingWeather = true
	return m, tea.Batch(m.fetchSpinner.Tick, m.fetchWeatherCmd())
}
