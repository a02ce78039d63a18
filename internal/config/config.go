package config

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Toolbar buttons
	ButtonWidth   = 120
	ButtonHeight  = 40
	ButtonX       = 20
	ButtonY       = 20
	ButtonSpacing = 12

	// Play area below the toolbar
	ContainerMargin = 20
	ContainerTop    = ButtonY + ButtonHeight + 20

	// Chain parameters
	SegmentCount  = 30
	SegmentLength = 15

	// Background particles
	ParticleCount    = 50
	ParticleCycleSec = 15

	FramesPerSecond = 60
)
