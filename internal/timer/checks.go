package timer

import "regexp"

// CheckResult is one named self-check outcome.
type CheckResult struct {
	Name   string
	Passed bool
}

var mmssPattern = regexp.MustCompile(`^\d\d:\d\d$`)

// RunChecks exercises the parser, formatter and state machine against fixed
// inputs. The order of the results is stable.
func RunChecks() []CheckResult {
	var checks []CheckResult
	add := func(name string, passed bool) {
		checks = append(checks, CheckResult{Name: name, Passed: passed})
	}

	add("ParseMinutes clamps to 1..180",
		ParseMinutes("999") == 180 && ParseMinutes("0") == 1)
	add("ParseMinutes defaults on bad input",
		ParseMinutes("nope") == 25 && ParseMinutes("") == 25)
	add("ParseMinutes tolerates whitespace",
		ParseMinutes("  15 ") == 15)

	add("FormatSeconds pads minutes/seconds",
		FormatSeconds(5) == "00:05" && FormatSeconds(65) == "01:05")
	add("FormatSeconds keeps MM:SS width",
		FormatSeconds(0) == "00:00" && FormatSeconds(600) == "10:00" && mmssPattern.MatchString(FormatSeconds(5999)))

	s0 := Initial(ModeStudy)
	s0.RemainingSeconds = 2
	s1 := Transition(s0, Start())
	s2 := Transition(s1, Tick())
	s3 := Transition(s2, Tick())
	s4 := Transition(s3, Tick())

	add("TICK never goes below 0", s3.RemainingSeconds >= 0 && s4.RemainingSeconds >= 0)
	add("Auto-pause at 0", s3.RemainingSeconds == 0 && !s3.Running)

	restarted := Transition(s3, Start())
	add("START at 0 restarts from full duration",
		restarted.RemainingSeconds == restarted.DurationSeconds && restarted.Running)

	set := Transition(s2, SetDuration(5))
	add("SET_DURATION refills and pauses",
		set.DurationSeconds == 300 && set.RemainingSeconds == 300 && !set.Running)

	paused := Transition(s1, Pause())
	reset := Transition(s2, Reset())
	add("PAUSE and RESET are idempotent",
		Transition(paused, Pause()) == paused && Transition(reset, Reset()) == reset)

	return checks
}

// Failed counts the failing results.
func Failed(results []CheckResult) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
