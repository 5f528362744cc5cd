package pydesim

import "fmt"

// Children is the named children manager described in component design
// 4.4. Assigning a slot notifies the new occupant(s) that their parent is
// now the owning model; replacing a slot notifies the displaced
// occupant(s) that they have no parent. A slot holds either a single
// Model or an ordered []Model tuple, and tuple assignment notifies every
// element.
type Children struct {
	owner  Model
	values map[string]any
	order  []string
}

func newChildren(owner Model) *Children {
	return &Children{owner: owner, values: make(map[string]any)}
}

// Set assigns value (a Model or []Model) to name, notifying parent links
// on both the new and any displaced occupant.
func (c *Children) Set(name string, value any) {
	switch value.(type) {
	case Model, []Model:
	default:
		panic(fmt.Sprintf("pydesim: children slot %q requires a Model or []Model, got %T", name, value))
	}

	if old, ok := c.values[name]; ok {
		notifyParent(old, nil)
	} else {
		c.order = append(c.order, name)
	}
	c.values[name] = value
	notifyParent(value, c.owner)
}

func notifyParent(value any, parent Model) {
	switch v := value.(type) {
	case Model:
		v.setParent(parent)
	case []Model:
		for _, m := range v {
			m.setParent(parent)
		}
	}
}

// Get returns the raw slot value (Model or []Model) for name, or
// ErrUnknownName if absent.
func (c *Children) Get(name string) (any, error) {
	v, ok := c.values[name]
	if !ok {
		return nil, fmt.Errorf("child %q: %w", name, ErrUnknownName)
	}
	return v, nil
}

// GetDefault returns the raw slot value for name, or def if absent.
func (c *Children) GetDefault(name string, def any) any {
	if v, ok := c.values[name]; ok {
		return v
	}
	return def
}

// Update bulk-assigns every name->value pair, in map iteration order.
func (c *Children) Update(values map[string]any) {
	for name, value := range values {
		c.Set(name, value)
	}
}

// Remove clears name's slot, notifying the displaced occupant(s) that
// they have no parent. A no-op if name is absent.
func (c *Children) Remove(name string) {
	old, ok := c.values[name]
	if !ok {
		return
	}
	notifyParent(old, nil)
	delete(c.values, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Has reports whether name is occupied.
func (c *Children) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Names returns the occupied slot names in assignment order.
func (c *Children) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All returns the raw name->value mapping (tuples kept as []Model),
// resolving the ambiguity flagged in the design notes for this variant.
func (c *Children) All() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Modules returns the flattened, deduplicated set of distinct Model
// instances across every slot, resolving the other reading of the
// ambiguous all() in the design notes.
func (c *Children) Modules() []Model {
	seen := make(map[Model]struct{})
	out := make([]Model, 0, len(c.values))
	add := func(m Model) {
		if _, ok := seen[m]; ok {
			return
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	for _, name := range c.order {
		switch v := c.values[name].(type) {
		case Model:
			add(v)
		case []Model:
			for _, m := range v {
				add(m)
			}
		}
	}
	return out
}
