// Package registry provides an in-memory component registry.
//
// Components are registered by key at archetype registration time; the
// builder pipeline only reads from the registry afterwards. Reads and writes
// are guarded by an RWMutex so a registry can be shared between concurrent
// Make calls.
package registry
