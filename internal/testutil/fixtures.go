package testutil

import (
	"sync"

	"github.com/hupe1980/xbam/core"
	"github.com/hupe1980/xbam/logging"
	"github.com/hupe1980/xbam/model"
)

// Trace is an ordered list of hook names.
type Trace struct {
	mu    sync.Mutex
	calls []string
}

// Add appends a call; a nil trace ignores it.
func (t *Trace) Add(name string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, name)
}

// Calls returns a copy of the recorded calls.
func (t *Trace) Calls() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.calls...)
}

// Player is a unique model with component storage and model level hooks.
type Player struct {
	model.Base
	model.ComponentSet
	Trace *Trace
}

// OnInitialized records the call.
func (p *Player) OnInitialized(_ core.Archetype, _ *core.Universe, _ *core.Builder) (core.Model, error) {
	p.Trace.Add("model.initialized")
	return p, nil
}

// OnFinalized records the call.
func (p *Player) OnFinalized(_ *core.Builder) (core.Model, error) {
	p.Trace.Add("model.finalized")
	return p, nil
}

// NewPlayer returns a Player constructor sharing trace.
func NewPlayer(trace *Trace) func(b *core.Builder) (core.Model, error) {
	return func(*core.Builder) (core.Model, error) { return &Player{Trace: trace}, nil }
}

// Statue is a unique model without component storage.
type Statue struct {
	model.Base
}

// NewStatue constructs a Statue.
func NewStatue(*core.Builder) (core.Model, error) { return &Statue{}, nil }

// Item is a component that remembers the builder it was made from.
type Item struct {
	model.BaseComponent
	Builder *core.Builder
	Source  string
}

// ItemFactory returns a component constructor tagging items with source.
func ItemFactory(key, source string) func(b *core.Builder) (core.Component, error) {
	return func(b *core.Builder) (core.Component, error) {
		return &Item{BaseComponent: model.NewBaseComponent(key, b), Builder: b, Source: source}, nil
	}
}

// RecordingLogger counts messages per level.
type RecordingLogger struct {
	mu     sync.Mutex
	Warns  []string
	debugs int
}

var _ logging.Logger = (*RecordingLogger)(nil)

// Debug counts a debug message.
func (r *RecordingLogger) Debug(string, ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debugs++
}

// DebugCount returns the number of debug messages.
func (r *RecordingLogger) DebugCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.debugs
}

// Info is ignored.
func (r *RecordingLogger) Info(string, ...any) {}

// Warn records a warning.
func (r *RecordingLogger) Warn(msg string, _ ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warns = append(r.Warns, msg)
}

// Error is ignored.
func (r *RecordingLogger) Error(string, ...any) {}

// WarnCount returns the number of warnings.
func (r *RecordingLogger) WarnCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Warns)
}
