package modellog

import (
	"bytes"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/hupe1980/xbam/core"
	"github.com/hupe1980/xbam/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertions)
var (
	_ core.ModelLog = (*InMemoryStore)(nil)
	_ core.ModelLog = (*LoggerSink)(nil)
	_ core.ModelLog = Multi(nil)
)

type mockLog struct {
	mock.Mock
}

func (m *mockLog) Log(entry core.ModelLogEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

type recordingLogger struct {
	logging.NoOpLogger
	msgs []string
	args [][]any
}

func (r *recordingLogger) Info(msg string, args ...any) {
	r.msgs = append(r.msgs, msg)
	r.args = append(r.args, args)
}

func entry(archetype string) core.ModelLogEntry {
	return core.ModelLogEntry{
		Action:    core.ActionBuilt,
		Archetype: archetype,
		Metadata:  map[string]any{core.MetadataAutoBuilderUsed: true},
	}
}

func TestInMemoryStore(t *testing.T) {
	s := NewInMemoryStore()
	require.NoError(t, s.Log(entry("a")))
	require.NoError(t, s.Log(entry("b")))
	require.NoError(t, s.Log(entry("a")))

	assert.Equal(t, 3, s.Len())
	assert.Len(t, s.ByArchetype("a"), 2)
	assert.Empty(t, s.ByArchetype("c"))

	es := s.Entries()
	es[0].Archetype = "changed"
	assert.Equal(t, "a", s.Entries()[0].Archetype)
}

func TestInMemoryStore_Concurrent(t *testing.T) {
	s := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Log(entry("a"))
			_ = s.Entries()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}

func TestLoggerSink_PlainLogger(t *testing.T) {
	rl := &recordingLogger{}
	require.NoError(t, NewLoggerSink(rl).Log(entry("player")))

	require.Len(t, rl.msgs, 1)
	assert.Equal(t, "model Built", rl.msgs[0])
	assert.Contains(t, rl.args[0], "player")
	assert.Contains(t, rl.args[0], core.MetadataAutoBuilderUsed)
}

func TestLoggerSink_XBamLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewLogger(&logging.LoggerConfig{Level: logging.LogLevelInfo, Output: &buf})
	require.NoError(t, NewLoggerSink(l).Log(entry("player")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "Model built", rec["msg"])
	assert.Equal(t, true, rec["auto_builder_used"])
}

func TestLoggerSink_NilLogger(t *testing.T) {
	assert.NoError(t, NewLoggerSink(nil).Log(entry("x")))
}

func TestMulti(t *testing.T) {
	boom := errors.New("boom")
	first := &mockLog{}
	second := &mockLog{}
	e := entry("player")
	first.On("Log", e).Return(boom)
	second.On("Log", e).Return(nil)

	err := Multi{first, nil, second}.Log(e)
	assert.ErrorIs(t, err, boom)
	first.AssertExpectations(t)
	second.AssertExpectations(t)
}
