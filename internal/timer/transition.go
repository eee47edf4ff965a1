package timer

import (
	"github.com/akyairhashvil/studytimer/internal/config"
	"github.com/akyairhashvil/studytimer/internal/util"
)

// Transition returns the state that follows s after applying a. Unknown
// actions leave s unchanged.
func Transition(s State, a Action) State {
	switch a.Type {
	case ActionStart:
		if s.RemainingSeconds == 0 {
			s.RemainingSeconds = s.DurationSeconds
		}
		// A zero-length duration has nothing to count down.
		s.Running = s.RemainingSeconds > 0
		return s

	case ActionPause:
		s.Running = false
		return s

	case ActionReset:
		s.RemainingSeconds = s.DurationSeconds
		s.Running = false
		return s

	case ActionSetDuration:
		minutes := util.Clamp(a.Minutes, config.MinMinutes, config.MaxMinutes)
		s.DurationSeconds = minutes * 60
		s.RemainingSeconds = s.DurationSeconds
		s.Running = false
		return s

	case ActionSwitchMode:
		if !a.Mode.Valid() {
			return s
		}
		return Initial(a.Mode)

	case ActionTick:
		if !s.Running {
			return s
		}
		s.RemainingSeconds = max(0, s.RemainingSeconds-1)
		if s.RemainingSeconds == 0 {
			s.Running = false
		}
		return s
	}
	return s
}

// Apply folds actions over s in order.
func Apply(s State, actions ...Action) State {
	for _, a := range actions {
		s = Transition(s, a)
	}
	return s
}
