package config

import "time"

// Countdown defaults, in minutes.
const (
	StudyMinutes   = 25
	WorkoutMinutes = 10

	// DefaultMinutes is used when a duration entry cannot be parsed.
	DefaultMinutes = 25

	MinMinutes = 1
	MaxMinutes = 180
)

// TickInterval is the period between countdown decrements.
const TickInterval = time.Second

// Database/application settings.
const (
	AppName          = "studytimer"
	DBFileName       = "studytimer.db"
	LogFileName      = "studytimer.log"
	SettingsFileName = "settings.yaml"
)

// Setting keys stored in the settings table.
const (
	SettingLastMode = "last_mode"
	SettingTheme    = "theme"
)
