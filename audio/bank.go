package audio

import "github.com/lixenwraith/vape/core"

// bank holds every synthesized sound, built once at construction and read-only after
type bank [core.SoundTypeCount]floatBuffer

func newBank() *bank {
	var b bank
	for st := range b {
		b[st] = generateSound(core.SoundType(st))
	}
	return &b
}

// get returns the samples for st, nil when st is out of range
func (b *bank) get(st core.SoundType) floatBuffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}
	return b[st]
}
