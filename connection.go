package pydesim

import "fmt"

// Connection is a directed channel from an owning model to a peer,
// carrying a scheduling delay. Delay is either a non-negative float64
// or a func() float64 returning one; it defaults to 0.
type Connection struct {
	owner  Model
	Module Model
	Delay  any
}

func newConnection(owner, peer Model) *Connection {
	return &Connection{owner: owner, Module: peer, Delay: 0.0}
}

func (c *Connection) resolveDelay() float64 {
	switch d := c.Delay.(type) {
	case func() float64:
		return d()
	case float64:
		return d
	case int:
		return float64(d)
	default:
		panic(fmt.Sprintf("pydesim: connection delay must be float64 or func() float64, got %T", c.Delay))
	}
}

// Send resolves the connection's delay and schedules the peer's
// HandleMessage to run that far in the future, with sender set to the
// connection's owning model. The returned event id may be discarded or
// retained for later cancellation.
func (c *Connection) Send(msg any) (uint64, error) {
	receiver, ok := c.Module.(MessageReceiver)
	if !ok {
		return 0, fmt.Errorf("pydesim: connection target %T does not implement HandleMessage", c.Module)
	}
	d := c.resolveDelay()
	owner := c.owner
	handler := Bound(c.Module, "HandleMessage", func(args []any, kwargs map[string]any) {
		receiver.HandleMessage(args[0], kwargs["sender"])
	})
	return c.owner.Sim().Kernel().Schedule(d, handler, []any{msg}, map[string]any{"sender": owner})
}

// Connections is the named connections manager described in component
// design 4.5. It mirrors Children's indexed access shape.
type Connections struct {
	owner  Model
	values map[string]*Connection
	order  []string
}

func newConnections(owner Model) *Connections {
	return &Connections{owner: owner, values: make(map[string]*Connection)}
}

// Set creates a new Connection record wrapping peer and assigns it to
// name, replacing any existing connection there.
func (c *Connections) Set(name string, peer Model) *Connection {
	conn := newConnection(c.owner, peer)
	if _, exists := c.values[name]; !exists {
		c.order = append(c.order, name)
	}
	c.values[name] = conn
	return conn
}

// Get returns the connection record for name, or ErrUnknownName if
// absent.
func (c *Connections) Get(name string) (*Connection, error) {
	v, ok := c.values[name]
	if !ok {
		return nil, fmt.Errorf("connection %q: %w", name, ErrUnknownName)
	}
	return v, nil
}

// GetDefault returns the connection record for name, or def if absent.
func (c *Connections) GetDefault(name string, def *Connection) *Connection {
	if v, ok := c.values[name]; ok {
		return v
	}
	return def
}

// Update bulk-assigns name->peer pairs.
func (c *Connections) Update(peers map[string]Model) {
	for name, peer := range peers {
		c.Set(name, peer)
	}
}

// Has reports whether name is occupied.
func (c *Connections) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Names returns the occupied connection names in assignment order.
func (c *Connections) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Modules returns the peers of every connection, in assignment order.
func (c *Connections) Modules() []Model {
	out := make([]Model, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.values[name].Module)
	}
	return out
}

// AsDict returns a name->peer view of every connection.
func (c *Connections) AsDict() map[string]Model {
	out := make(map[string]Model, len(c.values))
	for name, conn := range c.values {
		out[name] = conn.Module
	}
	return out
}
