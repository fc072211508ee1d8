package core_test

import (
	"errors"
	"testing"

	"github.com/hupe1980/xbam/core"
	"github.com/hupe1980/xbam/internal/testutil"
	"github.com/hupe1980/xbam/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComponentBuilder_SharesParentParams(t *testing.T) {
	e := newEnv(t)
	a := testutil.NewArchetypeBuilder("player", e.universe).Build()
	parent := newBuilder(t, a, core.WithParam("x", 1))
	owner := &testutil.Player{}

	cb, ct, err := core.NewComponentBuilder(nil, parent, owner, "inventory")
	require.NoError(t, err)
	assert.Equal(t, "inventory", ct.Key)
	assert.Same(t, e.universe, cb.Universe())
	assert.Same(t, owner, cb.Parent())

	assert.True(t, cb.Has("x"))
	v, err := cb.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, parent.Add("y", 2))
	assert.True(t, cb.Has("y"), "container is shared, not copied")
	assert.Same(t, parent.Params(), cb.Params())
}

func TestNewComponentBuilder_WithoutParent(t *testing.T) {
	e := newEnv(t)
	cb, _, err := core.NewComponentBuilder(e.universe, nil, nil, "a")
	require.NoError(t, err)
	assert.Equal(t, 0, cb.Len())
	assert.Nil(t, cb.Parent())

	_, _, err = core.NewComponentBuilder(nil, nil, nil, "a")
	assert.ErrorIs(t, err, core.ErrMissingContext)
}

func TestNewComponentBuilder_UnknownKey(t *testing.T) {
	e := newEnv(t)
	_, _, err := core.NewComponentBuilder(e.universe, nil, nil, "nope")
	require.ErrorIs(t, err, core.ErrUnknownComponentKey)

	var cke *core.ComponentKeyError
	require.True(t, errors.As(err, &cke))
	assert.Equal(t, "nope", cke.Key)
}

func TestPopulateComponents_Order(t *testing.T) {
	e := newEnv(t)
	a := testutil.NewArchetypeBuilder("player", e.universe).
		Construct(testutil.NewPlayer(nil)).
		Unlinked("a", nil).
		Unlinked("b", nil).
		Linked("c", func(b *core.Builder, u *core.Universe) (core.Component, error) {
			storage := b.Parent().(core.ComponentStorage)
			assert.Len(t, storage.Components(), 2, "unlinked components are attached first")
			return &testutil.Item{BaseComponent: model.NewBaseComponent("c", b), Source: "link"}, nil
		}).
		Build()

	for i := 0; i < 5; i++ {
		p, err := core.Make[*testutil.Player](newBuilder(t, a))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, componentKeys(p))
	}
}

func TestPopulateComponents_ExplicitConstructor(t *testing.T) {
	e := newEnv(t)
	a := testutil.NewArchetypeBuilder("player", e.universe).
		Construct(testutil.NewPlayer(nil)).
		Unlinked("a", nil).
		Unlinked("b", func(b *core.Builder) (core.Component, error) {
			return testutil.ItemFactory("b", "explicit")(b)
		}).
		Build()

	p, err := core.Make[*testutil.Player](newBuilder(t, a, core.WithParam("x", 1)))
	require.NoError(t, err)

	ca, ok := p.Component("a")
	require.True(t, ok)
	assert.Equal(t, "registry", ca.(*testutil.Item).Source)

	cb, ok := p.Component("b")
	require.True(t, ok)
	item := cb.(*testutil.Item)
	assert.Equal(t, "explicit", item.Source)
	assert.Same(t, p, item.Parent())
	assert.True(t, item.Builder.Has("x"))
}

func TestPopulateComponents_LinkReceivesUniverse(t *testing.T) {
	e := newEnv(t)
	var got *core.Universe
	a := testutil.NewArchetypeBuilder("player", e.universe).
		Construct(testutil.NewPlayer(nil)).
		Linked("c", func(b *core.Builder, u *core.Universe) (core.Component, error) {
			got = u
			return testutil.ItemFactory("c", "link")(b)
		}).
		Build()

	_, err := newBuilder(t, a).Make()
	require.NoError(t, err)
	assert.Same(t, e.universe, got)
}

func TestPopulateComponents_FailureAbortsMake(t *testing.T) {
	e := newEnv(t)
	boom := errors.New("boom")
	a := testutil.NewArchetypeBuilder("player", e.universe).
		Construct(testutil.NewPlayer(nil)).
		Unlinked("a", nil).
		Unlinked("b", func(*core.Builder) (core.Component, error) { return nil, boom }).
		Unlinked("c", nil).
		Build()

	m, err := newBuilder(t, a).Make()
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, m)
	assert.Equal(t, 0, e.modelLog.Len(), "nothing is logged for an aborted build")
}

func TestPopulateComponents_UnknownKeyAbortsMake(t *testing.T) {
	e := newEnv(t)
	a := testutil.NewArchetypeBuilder("player", e.universe).
		Construct(testutil.NewPlayer(nil)).
		Unlinked("unregistered", nil).
		Build()

	m, err := newBuilder(t, a).Make()
	assert.ErrorIs(t, err, core.ErrUnknownComponentKey)
	assert.Nil(t, m)
}

func TestPopulateComponents_NilComponent(t *testing.T) {
	e := newEnv(t)
	a := testutil.NewArchetypeBuilder("player", e.universe).
		Construct(testutil.NewPlayer(nil)).
		Linked("c", func(*core.Builder, *core.Universe) (core.Component, error) { return nil, nil }).
		Build()

	_, err := newBuilder(t, a).Make()
	assert.ErrorIs(t, err, core.ErrNilComponent)
}

func TestPopulateComponents_TypedNilComponent(t *testing.T) {
	e := newEnv(t)
	a := testutil.NewArchetypeBuilder("player", e.universe).
		Construct(testutil.NewPlayer(nil)).
		Unlinked("a", func(*core.Builder) (core.Component, error) { return (*testutil.Item)(nil), nil }).
		Build()

	var (
		m   core.Model
		err error
	)
	require.NotPanics(t, func() { m, err = newBuilder(t, a).Make() })
	assert.ErrorIs(t, err, core.ErrNilComponent)
	assert.Nil(t, m)

	linked := testutil.NewArchetypeBuilder("player", e.universe).
		Construct(testutil.NewPlayer(nil)).
		Linked("c", func(*core.Builder, *core.Universe) (core.Component, error) { return (*testutil.Item)(nil), nil }).
		Build()
	require.NotPanics(t, func() { _, err = newBuilder(t, linked).Make() })
	assert.ErrorIs(t, err, core.ErrNilComponent)
}

func TestPopulateComponents_DuplicateKey(t *testing.T) {
	e := newEnv(t)
	a := testutil.NewArchetypeBuilder("player", e.universe).
		Construct(testutil.NewPlayer(nil)).
		Unlinked("a", nil).
		Linked("a", func(b *core.Builder, _ *core.Universe) (core.Component, error) {
			return testutil.ItemFactory("a", "link")(b)
		}).
		Build()

	_, err := newBuilder(t, a).Make()
	assert.ErrorIs(t, err, core.ErrDuplicateComponent)
}
