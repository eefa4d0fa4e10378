package logger_test

import (
	"strings"
	"testing"

	"nes-core/logger"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}
	assert.False(t, logger.Write(w))
	assert.Equal(t, "", w.String())

	logger.Log("test", "this is a test")
	logger.Write(w)
	assert.Equal(t, "test: this is a test\n", w.String())

	w.Reset()
	logger.Logf("test2", "this is test %d", 2)
	logger.Write(w)
	assert.Equal(t, "test: this is a test\ntest2: this is test 2\n", w.String())

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	assert.Equal(t, "test: this is a test\ntest2: this is test 2\n", w.String())

	w.Reset()
	logger.Tail(w, 1)
	assert.Equal(t, "test2: this is test 2\n", w.String())

	w.Reset()
	logger.Tail(w, 0)
	assert.Equal(t, "", w.String())
}

func TestLoggerRepeat(t *testing.T) {
	logger.Clear()

	logger.Log("apu", "dropped samples")
	logger.Log("apu", "dropped samples")
	logger.Log("apu", "dropped samples\n")

	w := &strings.Builder{}
	logger.Write(w)
	assert.Equal(t, "apu: dropped samples (repeat x3)\n", w.String())
	assert.Len(t, logger.Copy(), 1)
}

func TestLoggerEcho(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}
	logger.SetEcho(w)
	defer logger.SetEcho(nil)

	logger.Log("bus", "reset")
	assert.Equal(t, "bus: reset\n", w.String())
}

func TestLoggerLimit(t *testing.T) {
	logger.Clear()
	for i := 0; i < 300; i++ {
		logger.Logf("test", "entry %d", i)
	}

	entries := logger.Copy()
	assert.Len(t, entries, 256)
	assert.Equal(t, "entry 299", entries[len(entries)-1].Detail)
}
