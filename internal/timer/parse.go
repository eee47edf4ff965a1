package timer

import (
	"math"
	"strconv"
	"strings"

	"github.com/akyairhashvil/studytimer/internal/config"
)

// ParseMinutes reads a duration entry in minutes. Unparseable or non-finite
// input yields config.DefaultMinutes; numbers are truncated toward zero and
// clamped into [config.MinMinutes, config.MaxMinutes].
func ParseMinutes(input string) int {
	n, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return config.DefaultMinutes
	}
	n = math.Trunc(n)
	if n < config.MinMinutes {
		return config.MinMinutes
	}
	if n > config.MaxMinutes {
		return config.MaxMinutes
	}
	return int(n)
}
