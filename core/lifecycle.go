package core

import (
	"fmt"

	"github.com/hupe1980/xbam/params"
)

// State is a model lifecycle state.
type State int

const (
	// StateUninitialized is the state before any model exists.
	StateUninitialized State = iota
	// StateRawConstructed follows raw construction (or the model's own
	// initialize hook when re-initializing).
	StateRawConstructed
	// StateConfigured follows id assignment, the configure modifier and the
	// model's finalize hook.
	StateConfigured
	// StateFinalized follows the archetype's finalize hook and the finalize
	// modifier.
	StateFinalized
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRawConstructed:
		return "raw_constructed"
	case StateConfigured:
		return "configured"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// ModelModifier is a caller supplied lifecycle step. It may return a
// different model or nil to drop it.
type ModelModifier func(m Model, a Archetype, u *Universe, b *Builder) (Model, error)

// LifecycleOptions configures InitializeModel and Reinitialize.
type LifecycleOptions struct {
	// Archetype is used when the builder is nil or has none.
	Archetype Archetype
	// Universe is used when the builder is nil or has none.
	Universe *Universe
	// OnConfigured runs during the configure phase.
	OnConfigured ModelModifier
	// OnFinalized runs last.
	OnFinalized ModelModifier
	// OnTransition observes every state change.
	OnTransition func(from, to State)
}

// stage is one named step of the pipeline. A stage only runs on a present model.
type stage struct {
	name string
	run  func(m Model) (Model, error)
}

// phase is a group of stages that moves the model into state `to`.
type phase struct {
	to     State
	stages []stage
}

type lifecycle struct {
	archetype Archetype
	universe  *Universe
	builder   *Builder
	opts      LifecycleOptions
	state     State
}

func newLifecycle(b *Builder, optFns []func(o *LifecycleOptions)) (*lifecycle, error) {
	opts := LifecycleOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	lc := &lifecycle{builder: b, opts: opts, archetype: opts.Archetype, universe: opts.Universe}
	if b != nil {
		if b.archetype != nil {
			lc.archetype = b.archetype
		}
		if b.universe != nil {
			lc.universe = b.universe
		}
	}
	if lc.universe == nil {
		return nil, &MissingContextError{What: "universe"}
	}
	if lc.archetype == nil {
		return nil, &MissingContextError{What: "archetype"}
	}
	return lc, nil
}

// InitializeModel constructs a fresh model:
//
//	construct -> archetype initialized hook -> id -> OnConfigured
//	  -> model finalized hook -> archetype finalized hook -> OnFinalized
//
// Any stage may drop the model, in which case the remaining stages are
// skipped and (nil, nil) is returned. Errors abort the run and no model is
// returned.
func InitializeModel(b *Builder, optFns ...func(o *LifecycleOptions)) (Model, error) {
	if b == nil {
		return nil, &MissingContextError{What: "builder"}
	}
	lc, err := newLifecycle(b, optFns)
	if err != nil {
		return nil, err
	}
	var m Model
	m, err = lc.construct()
	if err != nil || absent(m) {
		return nil, err
	}
	return lc.run(m, []phase{
		{to: StateConfigured, stages: []stage{
			lc.archetypeInitialized(),
			lc.identity(),
			lc.modifier("configure", lc.opts.OnConfigured),
			lc.modelFinalized(),
		}},
		{to: StateFinalized, stages: []stage{
			lc.archetypeFinalized(),
			lc.modifier("finalize", lc.opts.OnFinalized),
		}},
	})
}

// Reinitialize runs an existing model through the lifecycle again:
//
//	model initialized hook -> id -> archetype initialized hook -> OnConfigured
//	  -> model finalized hook -> archetype finalized hook -> OnFinalized
//
// b may be nil when the archetype and universe are supplied through options;
// archetype hooks are then skipped. A nil m falls back to InitializeModel.
func Reinitialize(m Model, b *Builder, optFns ...func(o *LifecycleOptions)) (Model, error) {
	if absent(m) {
		return InitializeModel(b, optFns...)
	}
	lc, err := newLifecycle(b, optFns)
	if err != nil {
		return nil, err
	}
	return lc.run(m, []phase{
		{to: StateRawConstructed, stages: []stage{
			lc.modelInitialized(),
		}},
		{to: StateConfigured, stages: []stage{
			lc.identity(),
			lc.archetypeInitialized(),
			lc.modifier("configure", lc.opts.OnConfigured),
			lc.modelFinalized(),
		}},
		{to: StateFinalized, stages: []stage{
			lc.archetypeFinalized(),
			lc.modifier("finalize", lc.opts.OnFinalized),
		}},
	})
}

func (lc *lifecycle) run(m Model, phases []phase) (Model, error) {
	var err error
	for _, p := range phases {
		for _, s := range p.stages {
			if s.run == nil {
				continue
			}
			m, err = s.run(m)
			if err != nil {
				return nil, fmt.Errorf("xbam: %s: %s: %w", lc.archetype.Key(), s.name, err)
			}
			if absent(m) {
				lc.universe.log.LogDebug("model dropped",
					"archetype", lc.archetype.Key(), "stage", s.name, "state", lc.state.String())
				return nil, nil
			}
		}
		lc.transition(p.to)
	}
	return m, nil
}

func (lc *lifecycle) transition(to State) {
	from := lc.state
	lc.state = to
	lc.universe.log.LogDebug("model lifecycle transition",
		"archetype", lc.archetype.Key(), "from", from.String(), "state", to.String())
	if lc.opts.OnTransition != nil {
		lc.opts.OnTransition(from, to)
	}
}

func (lc *lifecycle) construct() (Model, error) {
	m, err := lc.archetype.NewModel(lc.builder)
	if err != nil {
		return nil, fmt.Errorf("xbam: %s: construct: %w", lc.archetype.Key(), err)
	}
	if absent(m) {
		lc.universe.log.LogDebug("archetype built no model", "archetype", lc.archetype.Key())
		return nil, nil
	}
	lc.transition(StateRawConstructed)
	return m, nil
}

func (lc *lifecycle) archetypeInitialized() stage {
	if lc.builder == nil {
		return stage{name: "archetype initialized hook"}
	}
	return stage{name: "archetype initialized hook", run: func(m Model) (Model, error) {
		return lc.archetype.OnModelInitialized(lc.builder, m)
	}}
}

func (lc *lifecycle) archetypeFinalized() stage {
	if lc.builder == nil {
		return stage{name: "archetype finalized hook"}
	}
	return stage{name: "archetype finalized hook", run: func(m Model) (Model, error) {
		return lc.archetype.OnModelFinalized(lc.builder, m)
	}}
}

func (lc *lifecycle) modelInitialized() stage {
	return stage{name: "model initialized hook", run: func(m Model) (Model, error) {
		if i, ok := m.(Initializer); ok {
			return i.OnInitialized(lc.archetype, lc.universe, lc.builder)
		}
		return m, nil
	}}
}

func (lc *lifecycle) modelFinalized() stage {
	return stage{name: "model finalized hook", run: func(m Model) (Model, error) {
		if f, ok := m.(Finalizer); ok {
			return f.OnFinalized(lc.builder)
		}
		return m, nil
	}}
}

// identity assigns the id from the builder's "Id" parameter. Without one the
// model generates its own.
func (lc *lifecycle) identity() stage {
	return stage{name: "identity", run: func(m Model) (Model, error) {
		u, ok := m.(Unique)
		if !ok {
			return m, nil
		}
		id, _, err := params.TryLookup(lc.builder.Params(), IDParam)
		if err != nil {
			return nil, err
		}
		if err := u.InitializeID(id); err != nil {
			return nil, err
		}
		return m, nil
	}}
}

func (lc *lifecycle) modifier(name string, fn ModelModifier) stage {
	if fn == nil {
		return stage{name: name}
	}
	return stage{name: name, run: func(m Model) (Model, error) {
		return fn(m, lc.archetype, lc.universe, lc.builder)
	}}
}
