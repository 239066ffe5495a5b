package audio

import (
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vape/parameter"
)

// StartSpeaker opens the audio device and plays p's output on it
// Fails on hosts without a device; the game then runs silent
func StartSpeaker(p *Player) error {
	if err := speaker.Init(SampleRate, SampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	speaker.Play(p.Streamer())
	return nil
}

// CloseSpeaker stops playback and releases the device
func CloseSpeaker() {
	speaker.Clear()
	speaker.Close()
}

// speakerLock runs fn while the speaker is not pulling samples
func speakerLock(fn func()) {
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}
