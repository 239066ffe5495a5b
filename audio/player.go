package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/parameter"
)

// SampleRate is the format of every generated stream
const SampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player synthesizes game sounds into a beep mixer
// One-shots are added to the mixer and drop out when drained; looping sounds keep a
// Ctrl so Stop can silence them. The caller hands Streamer to the speaker.
type Player struct {
	mu     sync.Mutex
	sounds *bank
	mixer  *beep.Mixer
	volume *effects.Volume
	loops  [core.SoundTypeCount]*beep.Ctrl
	last   [core.SoundTypeCount]time.Time
	now    func() time.Time
	muted  bool
}

// NewPlayer creates a player with every sound pre-generated
func NewPlayer() *Player {
	mixer := &beep.Mixer{}
	return &Player{
		sounds: newBank(),
		mixer:  mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   parameter.AudioMasterVolume,
		},
		now: time.Now,
	}
}

// Streamer is the master output, for speaker.Play
func (p *Player) Streamer() beep.Streamer {
	return p.volume
}

// Play starts s; looping sounds already playing are left alone
// Returns false when muted, rate limited or unknown
func (p *Player) Play(s core.SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return false
	}
	buf := p.sounds.get(s)
	if len(buf) == 0 {
		return false
	}

	if s.Looping() {
		if ctrl := p.loops[s]; ctrl != nil && !ctrl.Paused {
			return true
		}
		ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, newBufferStreamer(buf))}
		p.loops[s] = ctrl
		p.add(ctrl)
		return true
	}

	now := p.now()
	if now.Sub(p.last[s]) < parameter.MinSoundGap {
		return false
	}
	p.last[s] = now
	p.add(newBufferStreamer(buf))
	return true
}

// Stop silences a looping sound; one-shots run out on their own
func (p *Player) Stop(s core.SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s < 0 || s >= core.SoundTypeCount {
		return
	}
	p.stopLocked(s)
}

func (p *Player) stopLocked(s core.SoundType) {
	if ctrl := p.loops[s]; ctrl != nil {
		// A nil streamer makes the mixer drop the Ctrl on its next pull
		speakerLock(func() {
			ctrl.Paused = true
			ctrl.Streamer = nil
		})
		p.loops[s] = nil
	}
}

// SetMuted toggles output; muting stops every loop
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if !muted {
		return
	}
	for s := range p.loops {
		p.stopLocked(core.SoundType(s))
	}
	speakerLock(p.mixer.Clear)
}

// Muted reports whether output is muted
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Playing returns the number of live streams in the mixer
func (p *Player) Playing() int {
	var n int
	speakerLock(func() { n = p.mixer.Len() })
	return n
}

func (p *Player) add(s beep.Streamer) {
	speakerLock(func() { p.mixer.Add(s) })
}

// bufferStreamer plays a mono buffer on both channels
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func newBufferStreamer(buf floatBuffer) *bufferStreamer {
	return &bufferStreamer{buf: buf}
}

func (b *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	for i := range samples {
		if b.pos >= len(b.buf) {
			return i, true
		}
		v := b.buf[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *bufferStreamer) Err() error { return nil }

// Len and Position make the buffer seekable so beep.Loop can rewind it
func (b *bufferStreamer) Len() int      { return len(b.buf) }
func (b *bufferStreamer) Position() int { return b.pos }

func (b *bufferStreamer) Seek(p int) error {
	b.pos = max(min(p, len(b.buf)), 0)
	return nil
}
