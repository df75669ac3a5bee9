package common

const (
	ArenaWidth  = 1000
	ArenaHeight = 800

	// TPS is the fixed simulation rate.
	TPS = 60

	// MaxPool bounds both the life and ammo pools.
	MaxPool = 200
)

// FramesToMillis converts a frame count at TPS into elapsed milliseconds.
func FramesToMillis(frames int) float64 {
	return float64(frames) * 1000 / TPS
}

// MillisToFrames rounds a millisecond duration up to whole frames.
func MillisToFrames(ms int) int {
	if ms <= 0 {
		return 0
	}
	return (ms*TPS + 999) / 1000
}
