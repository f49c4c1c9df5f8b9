package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const BackendTerminal = "terminal"
const BackendWindow = "window"

type Config struct {
	Env          string
	Backend      string
	FPS          int
	SoundEnabled bool
	SoundVolume  float64
	SampleRate   int
	KeyHoldMs    int
	WindowScale  float64
}

func Default() Config {
	return Config{
		Env:          "local",
		Backend:      BackendTerminal,
		FPS:          60,
		SoundEnabled: true,
		SoundVolume:  0.5,
		SampleRate:   44100,
		KeyHoldMs:    160,
		WindowScale:  1,
	}
}

// Load 依照 PONG_ENV 讀取 properties/<env>.properties，環境變數 PONG_* 會覆蓋檔案設定
func Load() (Config, error) {
	env := os.Getenv("PONG_ENV")
	if env == "" {
		env = "local"
	}
	return ReadProperties("./", env)
}

func ReadProperties(dir, env string) (Config, error) {
	c := Default()
	c.Env = env

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	v.SetConfigType("properties")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("PONG")
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read properties %s: %w", env, err)
		}
	}

	if v.IsSet("BACKEND") {
		c.Backend = strings.ToLower(cast.ToString(v.Get("BACKEND")))
	}
	if v.IsSet("FPS") {
		c.FPS = cast.ToInt(v.Get("FPS"))
	}
	if v.IsSet("SOUND_ENABLED") {
		c.SoundEnabled = cast.ToBool(v.Get("SOUND_ENABLED"))
	}
	if v.IsSet("SOUND_VOLUME") {
		c.SoundVolume = cast.ToFloat64(v.Get("SOUND_VOLUME"))
	}
	if v.IsSet("SAMPLE_RATE") {
		c.SampleRate = cast.ToInt(v.Get("SAMPLE_RATE"))
	}
	if v.IsSet("KEY_HOLD_MS") {
		c.KeyHoldMs = cast.ToInt(v.Get("KEY_HOLD_MS"))
	}
	if v.IsSet("WINDOW_SCALE") {
		c.WindowScale = cast.ToFloat64(v.Get("WINDOW_SCALE"))
	}

	return c, c.validate()
}

func (c Config) validate() error {
	switch c.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.WindowScale <= 0 {
		return fmt.Errorf("window scale must be positive, got %v", c.WindowScale)
	}
	return nil
}
