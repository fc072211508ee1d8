// Package model provides embeddable building blocks for models and
// components: a unique id, ordered component storage and a component base
// that remembers its parent model.
//
//	type Player struct {
//		model.Base
//		model.ComponentSet
//	}
//
// A *Player then satisfies core.Unique and core.ComponentStorage.
package model
