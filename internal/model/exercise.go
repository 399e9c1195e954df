package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidUnit    = errors.New("model: invalid exercise unit")
	ErrInvalidWeekday = errors.New("model: invalid weekday")
)

type Unit string

const (
	UnitSeconds Unit = "秒"
	UnitReps    Unit = "回"
	UnitMinutes Unit = "分"
)

func (u Unit) IsValid() bool {
	switch u {
	case UnitSeconds, UnitReps, UnitMinutes:
		return true
	default:
		return false
	}
}

// Exercise is one entry in a day's menu. Values are immutable once built;
// an edit replaces the whole record.
type Exercise struct {
	Name     string `json:"name"`
	Emoji    string `json:"emoji"`
	Reps     int    `json:"reps"`
	Sets     int    `json:"sets"`
	Unit     Unit   `json:"unit"`
	Category string `json:"category,omitempty"`
	Image    string `json:"image,omitempty"`
	Memo     string `json:"memo,omitempty"`
}

func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("model: exercise name is required")
	}
	if e.Reps < 0 {
		return fmt.Errorf("model: exercise reps must not be negative, got %d", e.Reps)
	}
	if e.Sets < 0 {
		return fmt.Errorf("model: exercise sets must not be negative, got %d", e.Sets)
	}
	if !e.Unit.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidUnit, e.Unit)
	}
	return nil
}

// Dose renders the reps/sets line shown on exercise cards, e.g. 30秒 × 3セット.
func (e Exercise) Dose() string {
	return fmt.Sprintf("%d%s × %dセット", e.Reps, e.Unit, e.Sets)
}
