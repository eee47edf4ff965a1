package timer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/studytimer/internal/config"
)

// ErrUnknownMode is returned by ParseMode for names other than study or workout.
var ErrUnknownMode = errors.New("unknown timer mode")

// Mode selects the default duration of a countdown.
type Mode string

const (
	ModeStudy   Mode = "study"
	ModeWorkout Mode = "workout"
)

// Modes lists the modes in display order.
var Modes = []Mode{ModeStudy, ModeWorkout}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeStudy || m == ModeWorkout
}

// DefaultMinutes is the countdown length a fresh state of mode m starts with.
func (m Mode) DefaultMinutes() int {
	if m == ModeWorkout {
		return config.WorkoutMinutes
	}
	return config.StudyMinutes
}

// Label is the capitalised name shown in mode chips.
func (m Mode) Label() string {
	switch m {
	case ModeStudy:
		return "Study"
	case ModeWorkout:
		return "Workout"
	}
	return string(m)
}

// Next cycles study -> workout -> study.
func (m Mode) Next() Mode {
	if m == ModeStudy {
		return ModeWorkout
	}
	return ModeStudy
}

// ParseMode maps a case-insensitive name to a Mode.
func ParseMode(name string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
	return m, nil
}
