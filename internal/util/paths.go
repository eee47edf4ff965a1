package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir holds the history database and the TUI log.
func DataDir(app string) string {
	return xdgDir("XDG_DATA_HOME", app, ".local", "share")
}

// ConfigDir holds settings.yaml.
func ConfigDir(app string) string {
	return xdgDir("XDG_CONFIG_HOME", app, ".config")
}

// ReportsDir is where exported session reports land.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), app+"-reports")
}

func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := parseUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

func xdgDir(env, app string, fallback ...string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return filepath.Join(expandHome(base), app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, app)...)
}

// parseUserDir reads one KEY="value" entry from a user-dirs.dirs file.
func parseUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		if value, ok := strings.CutPrefix(line, key+"="); ok {
			return strings.Trim(value, "\"")
		}
	}
	return ""
}

func expandHome(path string) string {
	var rest string
	switch {
	case strings.HasPrefix(path, "$HOME"):
		rest = strings.TrimPrefix(path, "$HOME")
	case path == "~" || strings.HasPrefix(path, "~/"):
		rest = strings.TrimPrefix(path, "~")
	default:
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return home + rest
}
