package core

// RuntimeConfig carries the per-run parameters chosen by the platform layer,
// as opposed to the game tuning loaded from YAML.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal frontend only)
	ScreenH  int   // Terminal height in characters (terminal frontend only)
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means seed from the clock
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
