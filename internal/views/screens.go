package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fitroutine/trainy/internal/model"
)

// ExerciseLine is one row in a menu listing.
type ExerciseLine struct {
	Emoji string
	Name  string
	Dose  string
}

func (l ExerciseLine) String() string {
	return fmt.Sprintf("%s %s  %s", l.Emoji, l.Name, subtleStyle.Render(l.Dose))
}

// WeatherCard is the display form of a weather report.
type WeatherCard struct {
	Ready     bool
	Icon      string
	Text      string
	Wind      string
	Recommend string
}

var weatherGlyphs = map[string]string{
	"sun":   "☀️",
	"cloud": "☁️",
	"rain":  "🌧️",
	"wind":  "💨",
}

func renderWeatherCard(w WeatherCard) string {
	glyph, ok := weatherGlyphs[w.Icon]
	if !ok {
		glyph = w.Icon
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("今日の天気") + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", glyph, w.Text))
	b.WriteString(fmt.Sprintf("風: %s\n", w.Wind))
	b.WriteString(w.Recommend)
	return cardStyle.Render(b.String())
}

// StartPanelData feeds the home screen.
type StartPanelData struct {
	DateLabel       string
	Location        string
	LocationEditing bool
	LocationInput   string
	Fetching        bool
	SpinnerView     string
	Weather         WeatherCard
	Items           []ExerciseLine
}

func RenderStartPanel(data StartPanelData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🏋️ トレーニング") + "  " + subtleStyle.Render(data.DateLabel) + "\n\n")

	switch {
	case data.Fetching:
		b.WriteString(data.SpinnerView + " 天気を取得中...\n")
	case data.Weather.Ready:
		b.WriteString(renderWeatherCard(data.Weather) + "\n")
	}

	if data.LocationEditing {
		b.WriteString("地域: " + data.LocationInput + "\n")
	} else {
		b.WriteString(subtleStyle.Render("地域: "+data.Location) + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("今日のメニュー") + "\n")
	if len(data.Items) == 0 {
		b.WriteString(subtleStyle.Render("今日はお休みです") + "\n")
	} else {
		for _, item := range data.Items {
			b.WriteString("  " + item.String() + "\n")
		}
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// TrainingPanelData feeds the exercise walk-through screen. ProgressView
// is the pre-rendered progress component for the cleared/total ratio.
type TrainingPanelData struct {
	Index        int
	Total        int
	Emoji        string
	Name         string
	Dose         string
	Memo         string
	ProgressView string
}

func RenderTrainingPanel(data TrainingPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", titleStyle.Render("トレーニング中"),
		subtleStyle.Render(fmt.Sprintf("%d / %d", data.Index+1, data.Total))))
	b.WriteString(data.ProgressView + "\n\n")

	card := fmt.Sprintf("%s %s\n%s", data.Emoji, titleStyle.Render(data.Name), data.Dose)
	b.WriteString(cardStyle.Render(card) + "\n")

	if memo := RenderMarkdown(data.Memo); memo != "" {
		b.WriteString("\n" + memo + "\n")
	}
	b.WriteString("\n" + subtleStyle.Render("enter: クリア / b: 前へ / esc: 中断"))
	return panelStyle.Render(b.String())
}

// CompletePanelData feeds the congratulations screen.
type CompletePanelData struct {
	DateLabel string
	Total     int
}

func RenderCompletePanel(data CompletePanelData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🎉 トレーニング完了！") + "\n\n")
	b.WriteString(fmt.Sprintf("%s のメニュー %d 件をすべてクリアしました\n", data.DateLabel, data.Total))
	b.WriteString("\n" + subtleStyle.Render("enter: スタートへ / c: カレンダー"))
	return panelStyle.Render(b.String())
}

// MonthLabel formats a calendar heading, e.g. 2026年9月.
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%d年%d月", year, int(month))
}

// CalendarPanelData feeds the completion calendar screen.
type CalendarPanelData struct {
	MonthLabel       string
	WeekdayLabels    []model.Weekday
	Grid             []int
	SelectedDay      int
	TodayDay         int
	CompletedDays    map[int]bool
	SelectedLabel    string
	SelectedComplete bool
	SelectedWeekday  model.Weekday
	Items            []ExerciseLine
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📅 "+data.MonthLabel) + "\n\n")

	for _, label := range data.WeekdayLabels {
		b.WriteString(fmt.Sprintf(" %s ", label))
	}
	b.WriteString("\n")

	for i, day := range data.Grid {
		b.WriteString(renderDayCell(day, data))
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	if len(data.Grid)%7 != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n" + titleStyle.Render(data.SelectedLabel))
	if data.SelectedComplete {
		b.WriteString(" " + completeStyle.Render("✔ 完了"))
	}
	b.WriteString("\n" + subtleStyle.Render(string(data.SelectedWeekday)+"曜日のメニュー") + "\n")
	if len(data.Items) == 0 {
		b.WriteString(subtleStyle.Render("  お休み") + "\n")
	} else {
		for _, item := range data.Items {
			b.WriteString("  " + item.String() + "\n")
		}
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderDayCell(day int, data CalendarPanelData) string {
	if day == 0 {
		return "    "
	}
	cell := fmt.Sprintf("%2d", day)
	if data.CompletedDays[day] {
		cell += "●"
	} else {
		cell += " "
	}

	style := lipgloss.NewStyle()
	if data.CompletedDays[day] {
		style = completeStyle
	}
	if day == data.TodayDay {
		style = todayStyle
	}
	if day == data.SelectedDay {
		style = selectedStyle.Underline(day == data.TodayDay)
	}
	return " " + style.Render(cell)
}

// ManagementPanelData feeds the weekly menu editor.
type ManagementPanelData struct {
	Days        []model.Weekday
	DayCounts   []int
	ActiveDay   int
	Cursor      int
	Items       []ExerciseLine
	CopyActive  bool
	CopySource  model.Weekday
	CopyTargets map[model.Weekday]bool
}

func RenderManagementPanel(data ManagementPanelData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📋 メニュー管理") + "\n\n")

	for i, day := range data.Days {
		tab := fmt.Sprintf("%s(%d)", day, data.DayCounts[i])
		if i == data.ActiveDay {
			tab = selectedStyle.Render(tab)
		} else {
			tab = subtleStyle.Render(tab)
		}
		b.WriteString(tab + " ")
	}
	b.WriteString("\n\n")

	if len(data.Items) == 0 {
		b.WriteString(subtleStyle.Render("  メニューがありません") + "\n")
	}
	for i, item := range data.Items {
		marker := "  "
		line := item.String()
		if i == data.Cursor && !data.CopyActive {
			marker = selectedStyle.Render("> ")
			line = selectedStyle.Render(item.String())
		}
		b.WriteString(marker + line + "\n")
	}

	if data.CopyActive {
		b.WriteString("\n" + renderCopyPrompt(data))
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderCopyPrompt(data ManagementPanelData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(string(data.CopySource)+"曜日のメニューをコピー") + "\n")
	for i, day := range data.Days {
		label := fmt.Sprintf("%d:%s", i+1, day)
		switch {
		case day == data.CopySource:
			label = subtleStyle.Render(label)
		case data.CopyTargets[day]:
			label = selectedStyle.Render("[" + label + "]")
		}
		b.WriteString(label + " ")
	}
	b.WriteString("\n" + subtleStyle.Render("enter: コピー実行 / esc: キャンセル"))
	return b.String()
}

// DetailPanelData feeds the add/edit exercise form.
type DetailPanelData struct {
	Editing   bool
	NameView  string
	RepsView  string
	SetsView  string
	MemoView  string
	Unit      model.Unit
	UnitFocus bool
	DaysFocus bool
	Days      map[model.Weekday]bool
	AllDays   []model.Weekday
}

func RenderDetailPanel(data DetailPanelData) string {
	title := "メニューを追加"
	if data.Editing {
		title = "メニューを編集"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString("名前:     " + data.NameView + "\n")
	b.WriteString("回数:     " + data.RepsView + "\n")
	b.WriteString("セット数: " + data.SetsView + "\n")

	unit := "単位:     " + string(data.Unit)
	if data.UnitFocus {
		unit = focusStyle.Render(unit + "  (space で切替)")
	}
	b.WriteString(unit + "\n")

	days := "曜日:     "
	for i, day := range data.AllDays {
		label := fmt.Sprintf("%d:%s", i+1, day)
		if data.Days[day] {
			label = selectedStyle.Render("[" + label + "]")
		}
		days += label + " "
	}
	if data.DaysFocus {
		days = focusStyle.Render(days)
	}
	b.WriteString(days + "\n")

	b.WriteString("メモ:     " + data.MemoView + "\n")
	b.WriteString("\n" + subtleStyle.Render("tab: 移動 / ctrl+t: テンプレート / enter: 保存 / esc: 戻る"))
	return panelStyle.Render(b.String())
}
