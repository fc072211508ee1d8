package params

import (
	"fmt"
	"reflect"
)

// Param is a typed parameter descriptor. It names a key and the Go type its
// value is expected to have.
type Param[T any] struct {
	Key string
}

// NewParam returns a descriptor for key with value type T.
func NewParam[T any](key string) Param[T] { return Param[T]{Key: key} }

// ValueType returns the declared value type.
func (Param[T]) ValueType() reflect.Type { return reflect.TypeFor[T]() }

// In reports whether the descriptor's key is present in p.
func (d Param[T]) In(p *Params) bool { return p.Has(d.Key) }

// Lookup reads the descriptor's key from p and casts it to T. A missing key
// yields a *KeyError, a value of the wrong type a *CastError.
func Lookup[T any](p *Params, d Param[T]) (T, error) {
	var zero T
	v, err := p.Get(d.Key)
	if err != nil {
		return zero, err
	}
	out, err := Cast[T](v)
	if err != nil {
		if ce, ok := err.(*CastError); ok {
			ce.Key = d.Key
		}
		return zero, err
	}
	return out, nil
}

// TryLookup is like Lookup but reports absence with ok == false. A present
// value of the wrong type still returns a *CastError.
func TryLookup[T any](p *Params, d Param[T]) (value T, ok bool, err error) {
	if !p.Has(d.Key) {
		return value, false, nil
	}
	value, err = Lookup(p, d)
	return value, err == nil, err
}

// Cast converts v to T. A nil v converts to the zero value of nilable types.
func Cast[T any](v any) (T, error) {
	var zero T
	if out, ok := v.(T); ok {
		return out, nil
	}
	t := reflect.TypeFor[T]()
	if v == nil && nilable(t.Kind()) {
		return zero, nil
	}
	return zero, &CastError{Expected: t.String(), Actual: fmt.Sprintf("%T", v)}
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
