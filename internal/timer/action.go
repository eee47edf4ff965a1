package timer

import "fmt"

// ActionType discriminates Action values.
type ActionType int

const (
	ActionStart ActionType = iota + 1
	ActionPause
	ActionReset
	ActionTick
	ActionSetDuration
	ActionSwitchMode
)

func (t ActionType) String() string {
	switch t {
	case ActionStart:
		return "START"
	case ActionPause:
		return "PAUSE"
	case ActionReset:
		return "RESET"
	case ActionTick:
		return "TICK"
	case ActionSetDuration:
		return "SET_DURATION"
	case ActionSwitchMode:
		return "SWITCH_MODE"
	}
	return fmt.Sprintf("ActionType(%d)", int(t))
}

// Action is a single input to Transition. Minutes is read only by
// ActionSetDuration and Mode only by ActionSwitchMode.
type Action struct {
	Type    ActionType
	Minutes int
	Mode    Mode
}

func (a Action) String() string {
	switch a.Type {
	case ActionSetDuration:
		return fmt.Sprintf("%s(%d)", a.Type, a.Minutes)
	case ActionSwitchMode:
		return fmt.Sprintf("%s(%s)", a.Type, a.Mode)
	}
	return a.Type.String()
}

func Start() Action { return Action{Type: ActionStart} }
func Pause() Action { return Action{Type: ActionPause} }
func Reset() Action { return Action{Type: ActionReset} }
func Tick() Action  { return Action{Type: ActionTick} }

// SetDuration changes the configured length to minutes and pauses.
func SetDuration(minutes int) Action {
	return Action{Type: ActionSetDuration, Minutes: minutes}
}

// SwitchMode discards the current state in favour of mode's defaults.
func SwitchMode(mode Mode) Action {
	return Action{Type: ActionSwitchMode, Mode: mode}
}
