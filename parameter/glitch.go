package parameter

import "time"

// Glitch mode perturbation tuning shared by every minigame
const (
	// GlitchChance is the per-frame probability that a perturbation fires
	GlitchChance = 0.012

	// GlitchDuration is how long one perturbation stays active
	GlitchDuration = 700 * time.Millisecond

	// GlitchImpulse is the magnitude of a random impulse in cells/s
	GlitchImpulse = 6.0
)

// FrameReference is the tick length GlitchChance is expressed against
const FrameReference = 16 * time.Millisecond
