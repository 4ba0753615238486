package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps stderr quiet unless something went wrong.
const DefaultLevel = zapcore.WarnLevel

var (
	cfg = zap.Config{
		Level:       zap.NewAtomicLevelAt(DefaultLevel),
		Development: false,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		// stdout carries the formula output
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	leveler = &levelSetter{
		levelers: make(map[string]zap.AtomicLevel),
	}
)

type Leveler interface {
	SetLevel(name string, level zapcore.Level)
	GetLevel(name string) zapcore.Level
	SetAll(level zapcore.Level)
}

type levelSetter struct {
	levelers map[string]zap.AtomicLevel
	mu       sync.RWMutex
}

var _ Leveler = (*levelSetter)(nil)

func GetLeveler() Leveler {
	return leveler
}

func (lw *levelSetter) SetLevel(name string, level zapcore.Level) {
	_ = lw.setLevel(name, level)
}

func (lw *levelSetter) GetLevel(name string) zapcore.Level {
	lw.mu.RLock()
	defer lw.mu.RUnlock()

	if l, ok := lw.levelers[name]; ok {
		return l.Level()
	}

	return DefaultLevel
}

// SetAll applies level to every logger created so far.
func (lw *levelSetter) SetAll(level zapcore.Level) {
	lw.mu.RLock()
	defer lw.mu.RUnlock()

	for _, l := range lw.levelers {
		l.SetLevel(level)
	}
}

func (lw *levelSetter) setLevel(name string, level zapcore.Level) zap.AtomicLevel {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if _, ok := lw.levelers[name]; !ok {
		lw.levelers[name] = zap.NewAtomicLevelAt(level)
	}

	lw.levelers[name].SetLevel(level)

	return lw.levelers[name]
}

// ParseLevel returns DefaultLevel and false when text is not a zap level name.
func ParseLevel(text string) (zapcore.Level, bool) {
	level, err := zapcore.ParseLevel(text)
	if err != nil {
		return DefaultLevel, false
	}
	return level, true
}

func New(name string) *zap.SugaredLogger {
	c := cfg
	c.Level = leveler.setLevel(name, DefaultLevel)
	return zap.Must(c.Build(zap.AddStacktrace(zapcore.PanicLevel))).Named(name).Sugar()
}
