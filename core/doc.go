// Package core provides the foundational contracts and the construction
// pipeline of xbam. It defines the abstractions for:
//
//   - Archetypes (type descriptors that construct models and declare components)
//   - Universes (shared, read-only construction contexts)
//   - Builders (one-shot parameter bags carrying archetype and universe)
//   - Models and Components (the objects under construction)
//   - Collaborators: component registry, model log, auto-builder configuration
//
// A model passes through a fixed lifecycle:
//
//	Uninitialized -> RawConstructed -> Configured -> Finalized
//
// Every hook along the way may substitute the model or drop it. A dropped
// model is not an error: Make returns (nil, nil) and the caller decides what
// "nothing built" means.
//
// The pipeline is synchronous. A Builder belongs to a single Make call; the
// Universe and Archetype may be shared between goroutines as long as the
// registries they delegate to are safe for concurrent reads.
package core
