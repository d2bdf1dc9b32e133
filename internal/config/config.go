package config

const (
	WindowWidth  = 1024
	WindowHeight = 512

	TerminalFPS = 30

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Cue level bar
	LevelBarWidth  = 160
	LevelBarHeight = 10

	// Samples kept for the cue level meter
	LevelRingSize = 4096

	// Concentric fills used to fake a radial gradient
	GradientSteps = 12
)
