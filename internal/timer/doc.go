// Package timer implements the countdown core: a pure state transition
// function over State, plus the minutes parser and MM:SS formatter the
// drivers use to read input and render output.
//
// Nothing in this package blocks, allocates shared state or returns errors.
// Drivers own the current State, feed each result back into Transition and
// emit Tick once per elapsed second while the state is running.
package timer
