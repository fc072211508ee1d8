package core_test

import (
	"testing"

	"github.com/hupe1980/xbam/core"
	"github.com/hupe1980/xbam/internal/testutil"
	"github.com/hupe1980/xbam/modellog"
	"github.com/hupe1980/xbam/registry"
	"github.com/stretchr/testify/require"
)

type env struct {
	universe *core.Universe
	registry *registry.InMemoryStore
	log      *testutil.RecordingLogger
	modelLog *modellog.InMemoryStore
}

func newEnv(t *testing.T, optFns ...func(o *core.UniverseOptions)) *env {
	t.Helper()
	e := &env{
		registry: registry.NewInMemoryStore(),
		log:      &testutil.RecordingLogger{},
		modelLog: modellog.NewInMemoryStore(),
	}
	for _, key := range []string{"a", "b", "c", "inventory"} {
		require.NoError(t, e.registry.RegisterFunc(key, testutil.ItemFactory(key, "registry")))
	}
	e.universe = core.NewUniverse("test", append([]func(o *core.UniverseOptions){func(o *core.UniverseOptions) {
		o.Components = e.registry
		o.Logger = e.log
		o.ModelLog = e.modelLog
	}}, optFns...)...)
	return e
}

func newBuilder(t *testing.T, a core.Archetype, optFns ...func(o *core.BuilderOptions)) *core.Builder {
	t.Helper()
	b, err := core.NewBuilder(a, optFns...)
	require.NoError(t, err)
	return b
}

func componentKeys(s core.ComponentStorage) []string {
	var keys []string
	for _, c := range s.Components() {
		keys = append(keys, c.Key())
	}
	return keys
}
