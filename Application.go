package main

import (
	"PingPong/config"
	"PingPong/core"
	"PingPong/logger"
	"PingPong/sound"
	"PingPong/terminal"
	"PingPong/window"
	"fmt"
	"os"
	"time"
)

func main() {
	os.Exit(start())
}

func start() int {
	if err := logger.Log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.ConfigFailedMsg, err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	//音效失敗不影響遊戲
	audio, closeAudio, err := sound.Open(cfg.SoundEnabled, cfg.SampleRate, cfg.SoundVolume)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.AudioUnavailableMsg, err))
	}
	defer closeAudio()

	env := &core.Env{
		Width:  core.ArenaWidth,
		Height: core.ArenaHeight,
		Audio:  audio,
		Clock:  core.NewSystemClock(),
	}

	switch cfg.Backend {
	case config.BackendWindow:
		return startWindow(cfg, env)
	default:
		return startTerminal(cfg, env)
	}
}

func startTerminal(cfg config.Config, env *core.Env) int {
	screen, err := terminal.Open()
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.BackendFailedMsg, err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer screen.Close()
	logger.Log.SetEcho(false)

	keyboard := terminal.NewKeyboard(time.Duration(cfg.KeyHoldMs) * time.Millisecond)
	keyboard.Listen(screen.Tcell())

	env.Renderer = screen
	env.Input = keyboard

	game := core.NewGame(env)
	game.FPS = cfg.FPS
	game.Backend = cfg.Backend
	game.Run()
	return 0
}

func startWindow(cfg config.Config, env *core.Env) int {
	w := window.New(cfg.WindowScale, cfg.FPS)
	env.Renderer = w
	env.Input = w

	game := core.NewGame(env)
	game.FPS = cfg.FPS
	game.Backend = cfg.Backend

	game.Begin()
	defer game.End()
	if err := w.Run(game); err != nil {
		logger.Log.Error(fmt.Sprintf(logger.BackendFailedMsg, err))
		return 1
	}
	return 0
}
