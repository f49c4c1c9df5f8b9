package sound

import (
	"PingPong/core"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const hitDuration = 60 * time.Millisecond
const bounceDuration = 80 * time.Millisecond
const restartNoteDuration = 120 * time.Millisecond
const attack = 5 * time.Millisecond
const release = 30 * time.Millisecond

// Synth 依音效代號合成一段聲音，不認得的代號回傳 nil
func Synth(cue core.Cue, sr beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer

	switch cue {
	case core.CueHit:
		s = note(sr, generators.SquareTone, 660, hitDuration)
	case core.CueBounce:
		s = note(sr, generators.SineTone, 440, bounceDuration)
	case core.CueRestart:
		s = beep.Seq(
			note(sr, generators.SineTone, 523.25, restartNoteDuration),
			note(sr, generators.SineTone, 783.99, restartNoteDuration),
		)
	default:
		return nil
	}

	return withVolume(s, volume)
}

type toneFunc func(sr beep.SampleRate, freq float64) (beep.Streamer, error)

func note(sr beep.SampleRate, tone toneFunc, freq float64, d time.Duration) beep.Streamer {
	osc, err := tone(sr, freq)
	if err != nil {
		// 頻率超過 Nyquist，改成同長度的靜音
		return generators.Silence(sr.N(d))
	}
	return newFade(beep.Take(sr.N(d), osc), sr.N(d), sr.N(attack), sr.N(release))
}

// log2(0) 是 -Inf，音量 0 直接靜音
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// fade 線性淡入淡出，避免聲音開頭結尾出現爆音
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newFade(s beep.Streamer, total, attack, release int) *fade {
	return &fade{streamer: s, total: total, attack: attack, release: release}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.attack > 0 && f.pos < f.attack {
			gain = float64(f.pos) / float64(f.attack)
		}
		if remaining := f.total - f.pos; f.release > 0 && remaining < f.release {
			gain = math.Max(float64(remaining)/float64(f.release), 0)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.streamer.Err()
}
