package update

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitroutine/trainy/internal/model"
	"github.com/fitroutine/trainy/internal/storage"
	"github.com/fitroutine/trainy/internal/views"
	"github.com/fitroutine/trainy/internal/weather"
)

// Screen identifies which view the app is currently showing.
type Screen string

const (
	ScreenStart          Screen = "start"
	ScreenTraining       Screen = "training"
	ScreenComplete       Screen = "complete"
	ScreenCalendar       Screen = "calendar"
	ScreenMenuManagement Screen = "menuManagement"
	ScreenMenuDetail     Screen = "menuDetail"
)

// StatusBar holds the transient message shown at the bottom of the screen.
type StatusBar struct {
	Text    string
	IsError bool
}

// WeatherFetchedMsg carries the result of an asynchronous weather lookup.
type WeatherFetchedMsg struct {
	Report weather.Report
	Err    error
}

// CopyState tracks the copy-to-other-days flow on the management screen.
type CopyState struct {
	Active    bool
	SourceDay model.Weekday
	Targets   map[model.Weekday]bool
}

// EditTarget records which exercise the detail form is editing. When
// Active is false the form adds a new exercise instead.
type EditTarget struct {
	Active bool
	Day    model.Weekday
	Index  int
}

// Model is the single source of truth for the TUI.
type Model struct {
	CurrentScreen Screen
	Menus         model.WeeklyMenu
	Ledger        model.CompletionLedger

	// Training walk-through position within today's menu.
	ExerciseIndex int

	Weather         weather.Report
	WeatherReady    bool
	FetchingWeather bool
	Location        weather.Location
	LocationEditing bool

	// Calendar cursor. The visible month is derived from SelectedDate.
	SelectedDate time.Time

	// Menu management cursors.
	MgmtDay    int
	MgmtCursor int
	Copy       CopyState
	Detail     DetailForm

	Status      StatusBar
	HelpVisible bool
	Quitting    bool

	Width  int
	Height int

	store      storage.Store
	menus      storage.Keyspace[model.WeeklyMenu]
	dates      storage.Keyspace[[]string]
	location   storage.Keyspace[string]
	weatherAPI *weather.Client
	rng        *rand.Rand
	now        func() time.Time

	locationInput    textinput.Model
	templateList     list.Model
	fetchSpinner     spinner.Model
	trainingProgress progress.Model
	helpModel        help.Model
}

// NewModel builds a model backed by an in-memory store with the default
// weekly menu. Useful for tests and for running without a database.
func NewModel() Model {
	return NewModelWithDeps(storage.NewMemoryStore(), nil, "")
}

// NewModelWithDeps loads persisted state from store and wires the
// weather client. Load failures fall back to defaults so a corrupt or
// empty database never prevents startup.
func NewModelWithDeps(store storage.Store, api *weather.Client, loc weather.Location) Model {
	ctx := context.Background()

	menus := storage.NewKeyspace[model.WeeklyMenu](store, storage.KeyWeeklyMenus)
	dates := storage.NewKeyspace[[]string](store, storage.KeyCompletionDates)
	location := storage.NewKeyspace[string](store, storage.KeySavedLocation)

	weekly, menusErr := menus.LoadOr(ctx, model.DefaultWeeklyMenu())
	weekly = weekly.Clone()

	keys, datesErr := dates.LoadOr(ctx, nil)
	ledger := model.NewCompletionLedger(keys)

	if loc.IsEmpty() {
		saved, _ := location.LoadOr(ctx, string(weather.DefaultLocation))
		loc = weather.Location(saved)
	}
	if loc.IsEmpty() {
		loc = weather.DefaultLocation
	}

	li := textinput.New()
	li.Placeholder = "例: 大阪"
	li.CharLimit = 40
	li.Width = 24

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		CurrentScreen:    ScreenStart,
		Menus:            weekly,
		Ledger:           ledger,
		Location:         loc,
		Detail:           newDetailForm(),
		FetchingWeather:  true,
		store:            store,
		menus:            menus,
		dates:            dates,
		location:         location,
		weatherAPI:       api,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		now:              time.Now,
		locationInput:    li,
		templateList:     newTemplateList(),
		fetchSpinner:     sp,
		trainingProgress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage()),
		helpModel:        help.New(),
	}
	m.SelectedDate = m.today()
	if err := errors.Join(menusErr, datesErr); err != nil {
		m.Status = StatusBar{Text: "保存データの読み込みに失敗しました: " + err.Error(), IsError: true}
	}
	return m
}

// Init starts the initial weather fetch. The model is constructed with
// FetchingWeather already set, so the start panel shows the spinner
// from the first frame.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchSpinner.Tick, m.fetchWeatherCmd())
}

// Update is the single message dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.templateList.SetSize(msg.Width-8, templateListHeight(msg.Height))
		return m, nil

	case WeatherFetchedMsg:
		m.FetchingWeather = false
		m.WeatherReady = true
		if msg.Err != nil {
			m.Weather = weather.RandomFallback(m.rng)
			return m, nil
		}
		m.Weather = msg.Report
		return m, nil

	case spinner.TickMsg:
		if !m.FetchingWeather {
			return m, nil
		}
		var cmd tea.Cmd
		m.fetchSpinner, cmd = m.fetchSpinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.typing() {
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "?":
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
	} else if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	m.Status = StatusBar{}

	switch m.CurrentScreen {
	case ScreenStart:
		return m.handleStartKey(msg)
	case ScreenTraining:
		return m.handleTrainingKey(msg)
	case ScreenComplete:
		return m.handleCompleteKey(msg)
	case ScreenCalendar:
		return m.handleCalendarKey(msg)
	case ScreenMenuManagement:
		return m.handleManagementKey(msg)
	case ScreenMenuDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

// typing reports whether a text field currently owns the keyboard, in
// which case plain letters must not trigger shortcuts.
func (m Model) typing() bool {
	if m.LocationEditing {
		return true
	}
	if m.CurrentScreen == ScreenMenuDetail && !m.Detail.TemplateOpen {
		return m.Detail.focusedTextField()
	}
	return false
}

func (m Model) today() time.Time {
	return m.now()
}

// todayMenu is the exercise list scheduled for the current weekday.
func (m Model) todayMenu() []model.Exercise {
	return m.Menus[model.WeekdayOf(m.today())]
}

// mgmtWeekday maps the management day cursor to its weekday.
func (m Model) mgmtWeekday() model.Weekday {
	return model.Weekdays()[m.MgmtDay]
}

// View renders the current screen.
func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	data := views.AppData{
		StatusText:  m.Status.Text,
		StatusError: m.Status.IsError,
		Help:        m.helpView(),
		Width:       m.Width,
	}
	switch m.CurrentScreen {
	case ScreenStart:
		data.Body = views.RenderStartPanel(m.startPanelData())
	case ScreenTraining:
		data.Body = views.RenderTrainingPanel(m.trainingPanelData())
	case ScreenComplete:
		data.Body = views.RenderCompletePanel(m.completePanelData())
	case ScreenCalendar:
		data.Body = views.RenderCalendarPanel(m.calendarPanelData())
	case ScreenMenuManagement:
		data.Body = views.RenderManagementPanel(m.managementPanelData())
	case ScreenMenuDetail:
		if m.Detail.TemplateOpen {
			data.Body = m.templateList.View()
		} else {
			data.Body = views.RenderDetailPanel(m.detailPanelData())
		}
	}
	return views.RenderApp(data)
}
