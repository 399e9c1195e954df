package model

import "time"

const dayKeyLayout = "2006-01-02"

// CompletionLedger records the calendar days on which the full daily routine
// was finished. Entries are day-granular; adding the same day twice is a
// no-op. Older payloads may carry other serializations of the same day, so
// membership compares by calendar day rather than by raw key.
type CompletionLedger struct {
	days []time.Time
}

// NewCompletionLedger builds a ledger from day-key strings, skipping
// anything unparseable. Accepts both the native YYYY-MM-DD form and the
// long form produced by earlier exports (e.g. "Sat Jan 25 2026").
func NewCompletionLedger(keys []string) CompletionLedger {
	l := CompletionLedger{}
	for _, k := range keys {
		if t, ok := parseDayKey(k); ok {
			l = l.MarkComplete(t)
		}
	}
	return l
}

func parseDayKey(key string) (time.Time, bool) {
	if t, err := time.Parse(dayKeyLayout, key); err == nil {
		return t, true
	}
	if t, err := time.Parse("Mon Jan 2 2006", key); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// MarkComplete adds the date's day to the ledger. Idempotent per calendar day.
func (l CompletionLedger) MarkComplete(date time.Time) CompletionLedger {
	if l.IsComplete(date) {
		return l
	}
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := make([]time.Time, len(l.days), len(l.days)+1)
	copy(days, l.days)
	return CompletionLedger{days: append(days, day)}
}

// IsComplete reports whether some entry falls on the same calendar day.
func (l CompletionLedger) IsComplete(date time.Time) bool {
	for _, d := range l.days {
		if SameDay(d, date) {
			return true
		}
	}
	return false
}

func (l CompletionLedger) Len() int {
	return len(l.days)
}

// Keys serializes the ledger as sorted-insertion day-key strings.
func (l CompletionLedger) Keys() []string {
	out := make([]string, 0, len(l.days))
	for _, d := range l.days {
		out = append(out, d.Format(dayKeyLayout))
	}
	return out
}
