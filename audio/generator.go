package audio

import (
	"math"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// noise is the generator's private source so buffers are reproducible
var noise = vmath.NewFastRand(0x5eed)

// oscillator generates raw waveform samples, sweeping linearly from freq to freqEnd
func oscillator(waveType int, freq, freqEnd float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = noise.Float64()*2 - 1
		}

		f := freq + (freqEnd-freq)*float64(i)/float64(samples)
		phase += f / float64(parameter.AudioSampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(parameter.AudioSampleRate))
	releaseSamples := int(releaseSec * float64(parameter.AudioSampleRate))

	releaseStart := max(total-releaseSamples, attackSamples)

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

func durationToSamples(d float64) int {
	return int(d * float64(parameter.AudioSampleRate))
}

// tone is one enveloped oscillator run
func tone(wave int, freq, freqEnd, seconds float64) floatBuffer {
	buf := oscillator(wave, freq, freqEnd, durationToSamples(seconds))
	applyEnvelope(buf, parameter.SoundAttack.Seconds(), parameter.SoundRelease.Seconds())
	return buf
}

// --- Sound Generators (unity gain) ---

func generateSound(st core.SoundType) floatBuffer {
	short := parameter.ShortSoundDuration.Seconds()
	medium := parameter.MediumSoundDuration.Seconds()
	long := parameter.LongSoundDuration.Seconds()

	switch st {
	case core.SoundShoot:
		return tone(waveSquare, 1200, 600, short)
	case core.SoundEnemyShoot:
		return tone(waveSaw, 500, 300, short)
	case core.SoundExplosion:
		buf := tone(waveNoise, 0, 0, medium)
		return mixFloatBuffers(buf, tone(waveSine, 90, 40, medium), 0.6)
	case core.SoundBossHit:
		return tone(waveSquare, 180, 140, short)
	case core.SoundPickup:
		// B5 then E6
		return concatFloatBuffers(tone(waveSquare, 987.77, 987.77, short), tone(waveSquare, 1318.51, 1318.51, medium))
	case core.SoundVampCharged:
		fund := tone(waveSine, 880, 880, long)
		return mixFloatBuffers(fund, tone(waveSine, 1760, 1760, medium), 0.4)
	case core.SoundVampStart:
		return tone(waveSaw, 200, 800, medium)
	case core.SoundVampEnd:
		return tone(waveSaw, 800, 200, medium)
	case core.SoundLaser:
		// Seamless loop: whole cycles at 220Hz, no envelope
		return oscillator(waveSaw, 220, 220, durationToSamples(medium))
	case core.SoundPlayerDeath:
		buf := tone(waveNoise, 0, 0, long)
		return mixFloatBuffers(buf, tone(waveSaw, 400, 60, long), 0.8)
	default:
		return nil
	}
}
