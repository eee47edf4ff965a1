package config

// Layout constants.
const (
	// CardWidth is the preferred width of the timer card.
	CardWidth = 44

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 50

	// MinProgressWidth is the narrowest progress bar drawn.
	MinProgressWidth = 10
)

// Input constraints.
const (
	// MinutesCharLimit caps the minutes text input.
	MinutesCharLimit = 6

	// MinutesInputWidth is the rendered width of the minutes input.
	MinutesInputWidth = 8
)

// TruncationSuffix appended to truncated strings.
const TruncationSuffix = "…"
