package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// newBufferLogger writes JSON entries to an in-memory buffer for
// verification.
func newBufferLogger(t *testing.T) (Logger, *zaptest.Buffer) {
	t.Helper()
	buf := &zaptest.Buffer{}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), buf, zapcore.DebugLevel)
	return &zapLogger{z: zap.New(core)}, buf
}

func TestNewLogger_JSONFormat(t *testing.T) {
	l, err := NewLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	l, err := NewLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestNewLogger_InvalidOutputPath(t *testing.T) {
	_, err := NewLogger(LogConfig{OutputPaths: []string{"scheme://nope"}})
	assert.Error(t, err)
}

func TestZapLogger_Levels(t *testing.T) {
	l, buf := newBufferLogger(t)
	l.Debug("debug msg")
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg")

	out := buf.String()
	assert.Contains(t, out, "debug msg")
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestZapLogger_With_AddsFields(t *testing.T) {
	l, buf := newBufferLogger(t)
	l.With(String("foo", "bar"), Int("n", 3)).Info("msg")
	assert.Contains(t, buf.String(), `"foo":"bar"`)
	assert.Contains(t, buf.String(), `"n":3`)
}

func TestZapLogger_Named(t *testing.T) {
	l, buf := newBufferLogger(t)
	l.Named("pug").Info("msg")
	assert.Contains(t, buf.String(), `"pug"`)
}

func TestZapLogger_SetLevel(t *testing.T) {
	buf := &zaptest.Buffer{}
	encCfg := zap.NewProductionEncoderConfig()
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), buf, lvl)
	l := &zapLogger{z: zap.New(core), lvl: &lvl}

	l.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	l.SetLevel("debug")
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")

	// child loggers share the parent's level
	l.SetLevel("error")
	l.Named("child").Info("suppressed")
	assert.NotContains(t, buf.String(), "suppressed")
}

func TestZapLogger_SetLevel_FixedCoreIsNoOp(t *testing.T) {
	l, buf := newBufferLogger(t)
	l.SetLevel("error")
	l.Debug("still emitted")
	assert.Contains(t, buf.String(), "still emitted")
}

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "d", Value: time.Second}, Duration("d", time.Second))
	assert.Equal(t, Field{Key: "b", Value: true}, Bool("b", true))
	assert.Equal(t, Field{Key: "f", Value: 1.5}, Float64("f", 1.5))
	assert.Equal(t, Field{Key: "error", Value: "boom"}, Err(errors.New("boom")))
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, Err(nil))
}

func TestNopLogger_AllMethodsNoOp(t *testing.T) {
	l := NewNopLogger()
	l.Debug("msg")
	l.Info("msg")
	l.Warn("msg")
	l.Error("msg")
	l.SetLevel("debug")
	assert.Equal(t, l, l.With(String("k", "v")))
	assert.Equal(t, l, l.Named("x"))
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	l := NewNopLogger()
	SetDefault(l)
	assert.Equal(t, l, Default())

	// nil is ignored
	SetDefault(nil)
	assert.Equal(t, l, Default())
}
