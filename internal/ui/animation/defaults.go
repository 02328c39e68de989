package animation

import "time"

// DefaultConfig returns a 30 fps animation that spans one countdown tick.
func DefaultConfig() Config {
	return Config{
		FrameInterval: 33 * time.Millisecond,
		Duration:      time.Second,
	}
}
