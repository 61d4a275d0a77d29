package config

import "time"

const (
	// Tilt transform
	Gravity   = 9.81  // Reference acceleration (m/s²) for a full-scale tilt
	MaxOffset = 100.0 // Maximum bubble displacement per axis (scene units)

	// Scene geometry (scene units, 1 unit ~ 1dp on the original display)
	BubbleRadius   = 20.0
	LevelThreshold = 5.0  // Half-width of the level zone square
	StripeHeight   = 10.0 // Height of one background stripe
	AspectRatio    = 0.5  // Terminal char aspect correction (chars are ~2:1 tall)
	TargetFPS      = 30   // Target frames per second

	// Sources
	MockInterval  = time.Second / 30 // Mock accelerometer sample period
	SerialBaud    = 115200           // Default baud for serial accelerometers
	BLEScanWindow = 15 * time.Second // Give up on finding the BLE peripheral after this

	// App
	AppName    = "LEVELKIT"
	AppVersion = "1.0"
)

const (
	// Level screen
	StaleAfter    = 2 * time.Second // Flag the reading as stale after this long without samples
	StaleInterval = time.Second     // How often to run the staleness check

	// Converter screen
	ToastDuration = 2 * time.Second
)
