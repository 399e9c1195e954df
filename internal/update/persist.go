package update

import "context"

// persistMenus writes the weekly menu through its keyspace. Storage
// failures degrade to a status-bar error; the in-memory state already
// reflects the change.
func (m *Model) persistMenus(okText string) {
	if err := m.menus.Save(context.Background(), m.Menus); err != nil {
		m.Status = StatusBar{Text: "保存に失敗しました: " + err.Error(), IsError: true}
		return
	}
	m.Status = StatusBar{Text: okText}
}

func (m *Model) persistLedger() {
	if err := m.dates.Save(context.Background(), m.Ledger.Keys()); err != nil {
		m.Status = StatusBar{Text: "記録の保存に失敗しました: " + err.Error(), IsError: true}
	}
}

func (m *Model) persistLocation() {
	if err := m.location.Save(context.Background(), string(m.Location)); err != nil {
		m.Status = StatusBar{Text: "地域の保存に失敗しました: " + err.Error(), IsError: true}
	}
}
