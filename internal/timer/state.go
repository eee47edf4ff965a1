package timer

// State is the full countdown state. It is a value: Transition returns a new
// State and never modifies the one it was given.
type State struct {
	Mode             Mode
	DurationSeconds  int
	RemainingSeconds int
	Running          bool
}

// Initial returns the fresh, paused state for mode with its default duration.
func Initial(mode Mode) State {
	duration := mode.DefaultMinutes() * 60
	return State{
		Mode:             mode,
		DurationSeconds:  duration,
		RemainingSeconds: duration,
		Running:          false,
	}
}

// Done reports whether the countdown has reached zero.
func (s State) Done() bool {
	return s.RemainingSeconds == 0
}

// Elapsed is the number of seconds already counted down.
func (s State) Elapsed() int {
	return s.DurationSeconds - s.RemainingSeconds
}

// Progress is the completed fraction in [0, 1].
func (s State) Progress() float64 {
	if s.DurationSeconds <= 0 {
		return 0
	}
	return float64(s.Elapsed()) / float64(s.DurationSeconds)
}

// Valid checks the state invariants: remaining within [0, duration] and
// never running at zero.
func (s State) Valid() bool {
	if s.RemainingSeconds < 0 || s.RemainingSeconds > s.DurationSeconds {
		return false
	}
	return !(s.RemainingSeconds == 0 && s.Running)
}

// Completed reports whether the step prev -> next is the one that finished
// the countdown.
func Completed(prev, next State) bool {
	return prev.RemainingSeconds > 0 && next.RemainingSeconds == 0 && prev.Mode == next.Mode && prev.DurationSeconds == next.DurationSeconds
}
