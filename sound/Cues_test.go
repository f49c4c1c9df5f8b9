package sound

import (
	"PingPong/core"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

// drain 把 streamer 讀完，回傳樣本數與最大振幅
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = math.Max(peak, math.Abs(sample[0]))
		}
		total += n
		if !ok {
			require.NoError(t, s.Err())
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestSynthLengths(t *testing.T) {
	tests := []struct {
		cue  core.Cue
		want int
	}{
		{core.CueHit, testRate.N(60 * time.Millisecond)},
		{core.CueBounce, testRate.N(80 * time.Millisecond)},
		{core.CueRestart, 2 * testRate.N(120*time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(string(tt.cue), func(t *testing.T) {
			s := Synth(tt.cue, testRate, 1)
			require.NotNil(t, s)

			n, peak := drain(t, s)

			assert.Equal(t, tt.want, n)
			assert.Greater(t, peak, 0.1)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestSynthUnknownCue(t *testing.T) {
	assert.Nil(t, Synth(core.Cue("whistle"), testRate, 1))
}

func TestSynthZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, Synth(core.CueHit, testRate, 0))

	assert.Equal(t, 0.0, peak)
}

func TestFadeStartsAndEndsQuiet(t *testing.T) {
	s := Synth(core.CueBounce, testRate, 1)
	buf := make([][2]float64, testRate.N(bounceDuration))

	n, _ := s.Stream(buf)

	require.Equal(t, len(buf), n)
	assert.Equal(t, 0.0, buf[0][0])
	assert.InDelta(t, 0.0, buf[n-1][0], 0.01)
}

func TestOpenDisabledIsSilent(t *testing.T) {
	audio, closeFn, err := Open(false, 44100, 1)

	require.NoError(t, err)
	assert.Equal(t, core.Silent{}, audio)
	assert.NotPanics(t, closeFn)
	assert.NotPanics(t, func() { audio.Play(core.CueHit) })
}
