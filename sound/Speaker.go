package sound

import (
	"PingPong/core"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker 用 beep speaker 播放合成的音效，Play 不會卡住遊戲迴圈
type Speaker struct {
	rate   beep.SampleRate
	volume float64
}

func NewSpeaker(sampleRate int, volume float64) (*Speaker, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{rate: sr, volume: volume}, nil
}

func (s *Speaker) Play(cue core.Cue) {
	streamer := Synth(cue, s.rate, s.volume)
	if streamer == nil {
		return
	}
	speaker.Play(streamer)
}

func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}

// Open 設定關閉音效或裝置無法使用時回傳 core.Silent
func Open(enabled bool, sampleRate int, volume float64) (core.Audio, func(), error) {
	if !enabled {
		return core.Silent{}, func() {}, nil
	}
	s, err := NewSpeaker(sampleRate, volume)
	if err != nil {
		return core.Silent{}, func() {}, err
	}
	return s, s.Close, nil
}
