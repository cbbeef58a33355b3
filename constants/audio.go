package constants

import "time"

// Audio engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue timing
const (
	WinToneDuration   = 120 * time.Millisecond
	LoseToneDuration  = 250 * time.Millisecond
	TickToneDuration  = 30 * time.Millisecond
	CueEnvelopeAttack = 5 * time.Millisecond
)

// Cue pitches in Hz
const (
	WinToneLow  = 660.0
	WinToneHigh = 990.0
	LoseTone    = 110.0
	TickTone    = 1320.0
)
