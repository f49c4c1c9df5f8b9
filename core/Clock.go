package core

import "time"

// SystemClock Ticks 從建立時開始計算毫秒
type SystemClock struct {
	start    time.Time
	lastTick time.Time
}

func NewSystemClock() *SystemClock {
	now := time.Now()
	return &SystemClock{start: now, lastTick: now}
}

func (c *SystemClock) Ticks() int64 {
	return time.Since(c.start).Milliseconds()
}

// Tick 睡到這一幀的時間用完為止，落後時不補幀
func (c *SystemClock) Tick(fps int) {
	if fps > 0 {
		frame := time.Second / time.Duration(fps)
		if wait := frame - time.Since(c.lastTick); wait > 0 {
			time.Sleep(wait)
		}
	}
	c.lastTick = time.Now()
}
