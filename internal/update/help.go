package update

import "github.com/charmbracelet/bubbles/key"

// screenKeys is the help line for each screen. Only the short form is
// shown; ? toggles it on and off.
type screenKeys []key.Binding

func (k screenKeys) ShortHelp() []key.Binding  { return k }
func (k screenKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func binding(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}

var (
	startKeys = screenKeys{
		binding("enter", "トレーニング開始"),
		binding("c", "カレンダー"),
		binding("l", "地域を変更"),
		binding("r", "天気を更新"),
		binding("q", "終了"),
	}
	trainingKeys = screenKeys{
		binding("enter", "クリア"),
		binding("b", "前へ"),
		binding("1-9", "種目へジャンプ"),
		binding("c", "カレンダー"),
		binding("esc", "中断"),
	}
	completeKeys = screenKeys{
		binding("enter", "スタートへ"),
		binding("c", "カレンダー"),
	}
	calendarKeys = screenKeys{
		binding("h/j/k/l", "日付移動"),
		binding("p/n", "前月/翌月"),
		binding("t", "今日"),
		binding("e", "メニュー編集"),
		binding("b", "戻る"),
	}
	managementKeys = screenKeys{
		binding("h/l", "曜日切替"),
		binding("j/k", "選択"),
		binding("J/K", "並び替え"),
		binding("a", "追加"),
		binding("e", "編集"),
		binding("d", "削除"),
		binding("c", "コピー"),
		binding("b", "戻る"),
	}
	copyKeys = screenKeys{
		binding("1-7", "曜日を選択"),
		binding("enter", "コピー実行"),
		binding("esc", "キャンセル"),
	}
	detailKeys = screenKeys{
		binding("tab", "次の項目"),
		binding("ctrl+t", "テンプレート"),
		binding("enter", "保存"),
		binding("esc", "キャンセル"),
	}
	templateKeys = screenKeys{
		binding("enter", "選択"),
		binding("esc", "閉じる"),
	}
)

func (m Model) helpView() string {
	if !m.HelpVisible {
		return ""
	}
	return m.helpModel.View(m.activeKeys())
}

func (m Model) activeKeys() screenKeys {
	switch m.CurrentScreen {
	case ScreenTraining:
		return trainingKeys
	case ScreenComplete:
		return completeKeys
	case ScreenCalendar:
		return calendarKeys
	case ScreenMenuManagement:
		if m.Copy.Active {
			return copyKeys
		}
		return managementKeys
	case ScreenMenuDetail:
		if m.Detail.TemplateOpen {
			return templateKeys
		}
		return detailKeys
	default:
		return startKeys
	}
}
