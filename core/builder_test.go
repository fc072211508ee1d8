package core_test

import (
	"errors"
	"testing"

	"github.com/hupe1980/xbam/core"
	"github.com/hupe1980/xbam/internal/testutil"
	"github.com/hupe1980/xbam/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilder_DefaultsToArchetypeUniverse(t *testing.T) {
	e := newEnv(t)
	a := testutil.NewArchetypeBuilder("player", e.universe).Build()

	b := newBuilder(t, a)
	assert.Same(t, e.universe, b.Universe())
	assert.Same(t, a, b.Archetype())
	assert.Nil(t, b.Parent())
	assert.Equal(t, 0, b.Len())

	other := core.NewUniverse("other")
	b2 := newBuilder(t, a, core.WithUniverse(other))
	assert.Same(t, other, b2.Universe())
}

func TestNewBuilder_Seeded(t *testing.T) {
	e := newEnv(t)
	a := testutil.NewArchetypeBuilder("player", e.universe).Build()

	seed, err := params.From(params.Entry{Key: "x", Value: 1}, params.Entry{Key: "y", Value: "two"})
	require.NoError(t, err)

	b := newBuilder(t, a, core.WithParams(seed), core.WithParam("z", 3.0))
	assert.Equal(t, []string{"x", "y", "z"}, b.Keys())
	assert.Equal(t, []any{1, "two", 3.0}, b.Values())

	require.NoError(t, seed.Add("late", true))
	assert.False(t, b.Has("late"), "seed entries are copied")
}

func TestNewBuilder_DuplicateSeed(t *testing.T) {
	_, err := core.NewBuilder(nil, core.WithParam("x", 1), core.WithParam("x", 2))
	assert.ErrorIs(t, err, params.ErrDuplicateKey)
}

func TestBuilder_ParamAccess(t *testing.T) {
	b := newBuilder(t, nil)
	require.NoError(t, b.Add("count", 2))
	assert.ErrorIs(t, b.Add("count", 3), params.ErrDuplicateKey)

	v, err := b.Get("count")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = b.Get("missing")
	assert.ErrorIs(t, err, params.ErrKeyNotFound)

	_, ok := b.TryGet("missing")
	assert.False(t, ok)

	n, err := core.Lookup(b, params.NewParam[int]("count"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = core.Lookup(b, params.NewParam[string]("count"))
	assert.ErrorIs(t, err, params.ErrInvalidCast)

	assert.True(t, core.HasParam(b, params.NewParam[int]("count")))
	assert.False(t, core.HasParam(b, params.NewParam[int]("missing")))
	assert.False(t, core.HasParam(nil, params.NewParam[int]("count")), "nil builder has no parameters")

	count := 0
	for k, v := range b.All() {
		assert.Equal(t, "count", k)
		assert.Equal(t, 2, v)
		count++
	}
	assert.Equal(t, 1, count)
}

func TestMake_MissingContext(t *testing.T) {
	var nilBuilder *core.Builder
	_, err := nilBuilder.Make()
	assert.ErrorIs(t, err, core.ErrMissingContext)

	_, err = newBuilder(t, nil).Make()
	var mce *core.MissingContextError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, "universe", mce.What)

	u := core.NewUniverse("u")
	_, err = newBuilder(t, nil, core.WithUniverse(u)).Make()
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, "archetype", mce.What)

	a := testutil.NewArchetypeBuilder("player", nil).Construct(testutil.NewStatue).Build()
	_, err = newBuilder(t, a).Make()
	assert.ErrorIs(t, err, core.ErrMissingContext)
}

func TestBaseArchetype_NoConstructor(t *testing.T) {
	e := newEnv(t)
	a := &core.BaseArchetype{ArchetypeKey: "empty", Home: e.universe}
	_, err := newBuilder(t, a).Make()
	assert.ErrorIs(t, err, core.ErrNoConstructor)
}
