package logger

import (
	"errors"
	"fmt"
	"io"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = New()

type Logger struct {
	base    *logrus.Logger
	entry   *logrus.Entry
	echo    bool
	Session string
}

// Settings logger.properties 裡的設定
type Settings struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Level      string
	Echo       bool
}

func DefaultSettings() Settings {
	return Settings{
		Filename:   "pong.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   false,
		Level:      "Info",
	}
}

func New() *Logger {
	base := logrus.New()
	session := uuid.NewString()
	return &Logger{
		base:    base,
		entry:   base.WithField("session", session),
		Session: session,
	}
}

func readLoggerProperties(v *viper.Viper) (Settings, bool, error) {
	s := DefaultSettings()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return s, false, nil
		}
		return s, false, fmt.Errorf("read logger properties: %w", err)
	}

	if v.IsSet("logFilename") {
		s.Filename = cast.ToString(v.Get("logFilename"))
	}
	if v.IsSet("maxSize") {
		s.MaxSize = cast.ToInt(v.Get("maxSize"))
	}
	if v.IsSet("maxBackups") {
		s.MaxBackups = cast.ToInt(v.Get("maxBackups"))
	}
	if v.IsSet("maxAge") {
		s.MaxAge = cast.ToInt(v.Get("maxAge"))
	}
	if v.IsSet("compress") {
		s.Compress = cast.ToBool(v.Get("compress"))
	}
	if v.IsSet("level") {
		s.Level = cast.ToString(v.Get("level"))
	}
	if v.IsSet("echo") {
		s.Echo = cast.ToBool(v.Get("echo"))
	}
	return s, true, nil
}

// Init 讀取執行目錄下的 logger.properties，沒有檔案就用預設值
func (l *Logger) Init() error {
	return l.InitFrom("./")
}

func (l *Logger) InitFrom(dir string) error {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	s, found, err := readLoggerProperties(v)
	if err != nil {
		return err
	}
	l.Apply(s)

	// 設定檔修改時重新套用 log level
	if found {
		v.OnConfigChange(func(e fsnotify.Event) {
			if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				return
			}
			level := cast.ToString(v.Get("level"))
			l.base.SetLevel(parseLevel(level))
			l.entry.Infof(LevelReloadMsg, level)
		})
		v.WatchConfig()
	}
	return nil
}

func (l *Logger) Apply(s Settings) {
	l.base.SetFormatter(&logrus.JSONFormatter{})
	l.base.SetOutput(&lumberjack.Logger{
		Filename:   s.Filename,
		MaxSize:    s.MaxSize,
		MaxBackups: s.MaxBackups,
		MaxAge:     s.MaxAge,
		Compress:   s.Compress,
	})
	l.base.SetLevel(parseLevel(s.Level))
	l.echo = s.Echo
}

func (l *Logger) SetOutput(w io.Writer) {
	l.base.SetFormatter(&logrus.JSONFormatter{})
	l.base.SetOutput(w)
}

// SetEcho 終端機畫面與 stdout 共用，echo 會把畫面弄亂
func (l *Logger) SetEcho(echo bool) {
	l.echo = echo
}

func (l *Logger) SetLevel(level string) {
	l.base.SetLevel(parseLevel(level))
}

func parseLevel(level string) logrus.Level {
	switch cast.ToString(level) {

	case "Trace":
		return logrus.TraceLevel

	case "Debug":
		return logrus.DebugLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
	l.print("Info:", message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
	l.print("Error:", message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
	if l.base.IsLevelEnabled(logrus.DebugLevel) {
		l.print("Debug:", message)
	}
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
	l.print("Warn:", message)
}

func (l *Logger) Fatal(message string) {
	l.print("Fatal:", message)
	l.entry.Fatal(message)
}

func (l *Logger) print(prefix, message string) {
	if l.echo {
		fmt.Println(prefix, message)
	}
}
