// Package audio plays the short feedback cues of a run through the system speaker.
// Every operation degrades to a no-op when no audio device could be opened.
package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/party-arcade/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager mixes cues into a single speaker stream
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	played      [cueCount]int
}

// NewSoundManager creates a manager with master volume in 0..1
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
	}
}

// Initialize opens the speaker; calling it twice is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences later cues without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports the mute toggle
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Played returns how many unmuted requests for c were made
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if c < 0 || c >= cueCount {
		return 0
	}
	return sm.played[c]
}

func (sm *SoundManager) PlayWin()  { sm.play(CueWin) }
func (sm *SoundManager) PlayLose() { sm.play(CueLose) }
func (sm *SoundManager) PlayTick() { sm.play(CueTick) }

func (sm *SoundManager) play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted {
		return
	}
	sm.played[c]++
	if !sm.initialized {
		return
	}

	s := newTone(c, sampleRate)
	if s == nil {
		log.Printf("audio: no tone for cue %s", c)
		return
	}
	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.volume))
	speaker.Unlock()
}
