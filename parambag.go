package pydesim

import (
	"fmt"

	"github.com/golobby/cast"
)

// ParamBag is an immutable string-keyed mapping of run configuration,
// supplied to the Simulator at construction. It supports both indexed
// and typed attribute-style access over the same backing map.
type ParamBag struct {
	values map[string]any
}

// NewParamBag copies values into an immutable ParamBag.
func NewParamBag(values map[string]any) ParamBag {
	cp := make(map[string]any, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return ParamBag{values: cp}
}

// Get returns the raw value for name, or ErrUnknownName if absent.
func (b ParamBag) Get(name string) (any, error) {
	v, ok := b.values[name]
	if !ok {
		return nil, fmt.Errorf("param %q: %w", name, ErrUnknownName)
	}
	return v, nil
}

// GetDefault returns the raw value for name, or def if absent. It never
// errors.
func (b ParamBag) GetDefault(name string, def any) any {
	if v, ok := b.values[name]; ok {
		return v
	}
	return def
}

// MustGet is like Get but panics on an unknown name; convenient inside
// model constructors where a missing parameter is a programmer error.
func (b ParamBag) MustGet(name string) any {
	v, err := b.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether name is present in the bag.
func (b ParamBag) Has(name string) bool {
	_, ok := b.values[name]
	return ok
}

// AsMap returns a copy of the bag's backing mapping.
func (b ParamBag) AsMap() map[string]any {
	cp := make(map[string]any, len(b.values))
	for k, v := range b.values {
		cp[k] = v
	}
	return cp
}

// Int coerces the named parameter to int via golobby/cast.
func (b ParamBag) Int(name string) (int, error) {
	v, err := b.Get(name)
	if err != nil {
		return 0, err
	}
	return cast.ToInt(v)
}

// Float64 coerces the named parameter to float64.
func (b ParamBag) Float64(name string) (float64, error) {
	v, err := b.Get(name)
	if err != nil {
		return 0, err
	}
	return cast.ToFloat64(v)
}

// String coerces the named parameter to string.
func (b ParamBag) String(name string) (string, error) {
	v, err := b.Get(name)
	if err != nil {
		return "", err
	}
	return cast.ToString(v)
}

// Bool coerces the named parameter to bool.
func (b ParamBag) Bool(name string) (bool, error) {
	v, err := b.Get(name)
	if err != nil {
		return false, err
	}
	return cast.ToBool(v)
}
