package update

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitroutine/trainy/internal/model"
	"github.com/fitroutine/trainy/internal/views"
)

// detailField enumerates the focus stops on the exercise form. Text
// fields receive typed characters; the unit and days stops interpret
// keys as toggles instead.
type detailField int

const (
	fieldName detailField = iota
	fieldReps
	fieldSets
	fieldUnit
	fieldDays
	fieldMemo
	fieldCount
)

// DetailForm is the add/edit exercise form state.
type DetailForm struct {
	Editing      EditTarget
	Days         map[model.Weekday]bool
	Unit         model.Unit
	TemplateOpen bool

	focus detailField
	// Carried through an edit or template pick, not editable in the form.
	emoji    string
	category string
	image    string

	name textinput.Model
	reps textinput.Model
	sets textinput.Model
	memo textinput.Model
}

func newDetailForm() DetailForm {
	name := textinput.New()
	name.Placeholder = "メニュー名"
	name.CharLimit = 60
	name.Width = 28

	reps := numericInput("回数")
	sets := numericInput("セット数")

	memo := textinput.New()
	memo.Placeholder = "メモ (任意)"
	memo.CharLimit = 200
	memo.Width = 40

	return DetailForm{
		Days:     make(map[model.Weekday]bool),
		Unit:     model.UnitReps,
		emoji:    "💪",
		category: "カスタム",
		name:     name,
		reps:     reps,
		sets:     sets,
		memo:     memo,
	}
}

func numericInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 4
	in.Width = 6
	return in
}

// detailFormFor prefills the form from an existing exercise for editing.
func detailFormFor(ex model.Exercise, day model.Weekday, index int) DetailForm {
	f := newDetailForm()
	f.Editing = EditTarget{Active: true, Day: day, Index: index}
	f.Days[day] = true
	f.Unit = ex.Unit
	f.emoji = ex.Emoji
	f.category = ex.Category
	f.image = ex.Image
	f.name.SetValue(ex.Name)
	f.reps.SetValue(strconv.Itoa(ex.Reps))
	f.sets.SetValue(strconv.Itoa(ex.Sets))
	f.memo.SetValue(ex.Memo)
	return f
}

// applyTemplate copies a template's values into the form, keeping the
// day selection and edit target untouched.
func (f *DetailForm) applyTemplate(ex model.Exercise) {
	f.Unit = ex.Unit
	f.emoji = ex.Emoji
	f.category = ex.Category
	f.image = ex.Image
	f.name.SetValue(ex.Name)
	f.reps.SetValue(strconv.Itoa(ex.Reps))
	f.sets.SetValue(strconv.Itoa(ex.Sets))
	f.memo.SetValue(ex.Memo)
}

func (f DetailForm) focusedTextField() bool {
	switch f.focus {
	case fieldName, fieldReps, fieldSets, fieldMemo:
		return true
	default:
		return false
	}
}

func (f *DetailForm) activeInput() *textinput.Model {
	switch f.focus {
	case fieldName:
		return &f.name
	case fieldReps:
		return &f.reps
	case fieldSets:
		return &f.sets
	case fieldMemo:
		return &f.memo
	default:
		return nil
	}
}

func (f *DetailForm) setFocus(next detailField) tea.Cmd {
	if in := f.activeInput(); in != nil {
		in.Blur()
	}
	f.focus = next
	if in := f.activeInput(); in != nil {
		return in.Focus()
	}
	return nil
}

func (f *DetailForm) cycleFocus(delta int) tea.Cmd {
	next := (int(f.focus) + delta + int(fieldCount)) % int(fieldCount)
	return f.setFocus(detailField(next))
}

func (f *DetailForm) cycleUnit() {
	switch f.Unit {
	case model.UnitReps:
		f.Unit = model.UnitSeconds
	case model.UnitSeconds:
		f.Unit = model.UnitMinutes
	default:
		f.Unit = model.UnitReps
	}
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Detail.TemplateOpen {
		return m.handleTemplateKey(msg)
	}

	switch msg.String() {
	case "esc":
		m.CurrentScreen = ScreenMenuManagement
		return m, nil
	case "tab", "down":
		return m, m.Detail.cycleFocus(1)
	case "shift+tab", "up":
		return m, m.Detail.cycleFocus(-1)
	case "ctrl+t":
		m.Detail.TemplateOpen = true
		return m, nil
	case "enter":
		return m.saveDetail()
	}

	switch m.Detail.focus {
	case fieldUnit:
		if s := msg.String(); s == " " || s == "u" || s == "l" || s == "h" {
			m.Detail.cycleUnit()
		}
		return m, nil
	case fieldDays:
		if day, ok := weekdayForDigit(msg.String()); ok {
			m.Detail.Days[day] = !m.Detail.Days[day]
		}
		return m, nil
	}

	in := m.Detail.activeInput()
	if in == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m Model) handleTemplateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Detail.TemplateOpen = false
		return m, nil
	case "enter":
		if item, ok := m.templateList.SelectedItem().(templateItem); ok {
			m.Detail.applyTemplate(item.Exercise)
		}
		m.Detail.TemplateOpen = false
		return m, nil
	}
	var cmd tea.Cmd
	m.templateList, cmd = m.templateList.Update(msg)
	return m, cmd
}

// saveDetail validates the form and writes it through the weekly menu.
// An edit removes the exercise from its original day and appends the
// updated record to every selected day; an add appends to each one.
func (m Model) saveDetail() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.Detail.name.Value())
	if name == "" {
		m.Status = StatusBar{Text: "メニュー名を入力してください", IsError: true}
		return m, nil
	}
	days := selectedWeekdays(m.Detail.Days)
	if len(days) == 0 {
		m.Status = StatusBar{Text: "曜日を選択してください", IsError: true}
		return m, nil
	}

	ex := model.Exercise{
		Name:     name,
		Emoji:    m.Detail.emoji,
		Reps:     parseCount(m.Detail.reps.Value()),
		Sets:     parseCount(m.Detail.sets.Value()),
		Unit:     m.Detail.Unit,
		Category: m.Detail.category,
		Image:    m.Detail.image,
		Memo:     strings.TrimSpace(m.Detail.memo.Value()),
	}
	if err := ex.Validate(); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var (
		next model.WeeklyMenu
		err  error
	)
	if m.Detail.Editing.Active {
		next, err = m.Menus.MoveAcrossDays(m.Detail.Editing.Day, m.Detail.Editing.Index, ex, days)
	} else {
		next = m.Menus
		for _, day := range days {
			next, err = next.Add(day, ex)
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	m.Menus = next
	m.CurrentScreen = ScreenMenuManagement
	m.persistMenus("メニューを保存しました")
	return m, nil
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (m Model) detailPanelData() views.DetailPanelData {
	days := make(map[model.Weekday]bool, len(m.Detail.Days))
	for d, on := range m.Detail.Days {
		days[d] = on
	}
	return views.DetailPanelData{
		Editing:   m.Detail.Editing.Active,
		NameView:  m.Detail.name.View(),
		RepsView:  m.Detail.reps.View(),
		SetsView:  m.Detail.sets.View(),
		MemoView:  m.Detail.memo.View(),
		Unit:      m.Detail.Unit,
		UnitFocus: m.Detail.focus == fieldUnit,
		DaysFocus: m.Detail.focus == fieldDays,
		Days:      days,
		AllDays:   model.Weekdays(),
	}
}

// templateItem adapts an exercise template to the list component.
type templateItem struct {
	model.Exercise
}

func (t templateItem) Title() string       { return t.Emoji + " " + t.Name }
func (t templateItem) Description() string { return t.Category + " / " + t.Dose() }
func (t templateItem) FilterValue() string { return t.Name }

func newTemplateList() list.Model {
	templates := model.Templates()
	items := make([]list.Item, 0, len(templates))
	for _, ex := range templates {
		items = append(items, templateItem{Exercise: ex})
	}
	l := list.New(items, list.NewDefaultDelegate(), 60, 20)
	l.Title = "テンプレートから選ぶ"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return l
}

func templateListHeight(total int) int {
	h := total - 6
	if h < 8 {
		h = 8
	}
	return h
}
