package timer

import "fmt"

// FormatSeconds renders total seconds as zero-padded "MM:SS".
func FormatSeconds(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
