package terminal

import (
	"PingPong/core"
	"sync"
	"time"

	"github.com/gdamore/tcell"
)

// Keyboard 終端機收不到放開按鍵的事件，按鍵在 hold 時間內有重複事件就視為按住
type Keyboard struct {
	mu      sync.Mutex
	pressed map[core.Key]time.Time
	quit    bool
	hold    time.Duration
	now     func() time.Time
}

func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		pressed: make(map[core.Key]time.Time),
		hold:    hold,
		now:     time.Now,
	}
}

// Listen 建立一個goroutine去監聽鍵盤的事件，畫面 Fini 之後結束
func (k *Keyboard) Listen(screen tcell.Screen) {
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			k.handle(ev)
		}
	}()
}

func (k *Keyboard) handle(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	switch key.Key() {
	case tcell.KeyUp:
		k.press(core.KeyUp, core.KeyDown)
	case tcell.KeyDown:
		k.press(core.KeyDown, core.KeyUp)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w', 'W':
			k.press(core.KeyUp, core.KeyDown)
		case 's', 'S':
			k.press(core.KeyDown, core.KeyUp)
		case 'q', 'Q':
			k.quit = true
		}
	}
}

// press 終端機只會重複最後按下的鍵，所以換方向時清掉另一個方向
func (k *Keyboard) press(key, opposite core.Key) {
	k.pressed[key] = k.now()
	delete(k.pressed, opposite)
}

func (k *Keyboard) Held(key core.Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	at, ok := k.pressed[key]
	if !ok {
		return false
	}
	if k.now().Sub(at) >= k.hold {
		delete(k.pressed, key)
		return false
	}
	return true
}

func (k *Keyboard) Quit() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.quit
}

func (k *Keyboard) RequestQuit() {
	k.mu.Lock()
	k.quit = true
	k.mu.Unlock()
}
