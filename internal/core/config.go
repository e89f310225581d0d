package core

// RuntimeConfig is what the platform tells the presentation about the host.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Frame callbacks per second (default 60)
}

// DefaultRuntimeConfig returns a RuntimeConfig for an 80x24 terminal at 60fps.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
