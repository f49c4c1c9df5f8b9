package window

import (
	"PingPong/core"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

const Title = "Ping Pong"

var keyBindings = map[core.Key][]ebiten.Key{
	core.KeyUp:   {ebiten.KeyArrowUp, ebiten.KeyW},
	core.KeyDown: {ebiten.KeyArrowDown, ebiten.KeyS},
}

// Window 用 ebiten 開一個 960x540 的視窗，每個 ebiten tick 執行一次 Game.Step
type Window struct {
	Canvas
	scale   float64
	fps     int
	step    func() bool
	pressed func(ebiten.Key) bool
}

func New(scale float64, fps int) *Window {
	return &Window{scale: scale, fps: fps, pressed: ebiten.IsKeyPressed}
}

func (w *Window) Held(k core.Key) bool {
	for _, key := range keyBindings[k] {
		if w.pressed(key) {
			return true
		}
	}
	return false
}

// Quit 關閉視窗時 ebiten.RunGame 會自己結束，這裡只處理 Esc
func (w *Window) Quit() bool {
	return w.pressed(ebiten.KeyEscape)
}

// Update ebiten 依照 TPS 呼叫，所以不用 Clock.Tick 控制速度
func (w *Window) Update() error {
	if !w.step() {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.draw(screen)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ArenaWidth, core.ArenaHeight
}

func (w *Window) Run(game *core.Game) error {
	ebiten.SetWindowSize(int(core.ArenaWidth*w.scale), int(core.ArenaHeight*w.scale))
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(w.fps)

	w.step = game.Step
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
