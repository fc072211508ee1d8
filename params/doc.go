// Package params provides the parameter container used by builders.
//
// A Params value is an insertion-ordered mapping from string keys to
// dynamically typed values. Keys are unique: Add never overwrites and nothing
// is ever removed. Typed reads go through a Param descriptor which checks the
// stored value against the descriptor's type and reports a *CastError instead
// of panicking.
//
// Usage:
//
//	var ID = params.NewParam[string]("Id")
//
//	p := params.New()
//	_ = p.Add("Id", "abc")
//	id, err := params.Lookup(p, ID)
//
// A Params is not safe for concurrent mutation.
package params
