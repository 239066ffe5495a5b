package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive plays of the same sound
	MinSoundGap = 40 * time.Millisecond

	// AudioMasterVolume is the beep volume exponent applied to the mix (0 = unity)
	AudioMasterVolume = -1.0
)

// Sound envelopes
const (
	ShortSoundDuration  = 80 * time.Millisecond
	MediumSoundDuration = 250 * time.Millisecond
	LongSoundDuration   = 600 * time.Millisecond

	SoundAttack  = 5 * time.Millisecond
	SoundRelease = 40 * time.Millisecond
)
