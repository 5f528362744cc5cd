package pydesim

// Model is a node in the hierarchical model graph. Implementations hold
// a weak back-reference to the owning Simulator and to their parent
// (never ownership in either direction), plus named children and
// connections managers.
//
// User models embed *BaseModel to get this behavior for free; the
// interface exists so children/connections managers can hold any model
// type uniformly.
type Model interface {
	Sim() *Simulator
	Parent() Model
	Children() *Children
	Connections() *Connections

	setParent(p Model)
}

// BaseModel is the composition primitive embedded by concrete user
// models. It is created by user code during Simulator construction,
// before the dispatch loop starts, and is mutated only from handler
// bodies — synchronously, on the dispatch thread.
type BaseModel struct {
	sim         *Simulator
	parent      Model
	children    *Children
	connections *Connections
}

// NewBaseModel builds a BaseModel bound to sim, owned by self. self must
// be the Model value that embeds this BaseModel — it is recorded as the
// owner children/connections report to peers during parent notification.
// Typical use:
//
//	m := &Queue{}
//	m.BaseModel = pydesim.NewBaseModel(sim, m)
func NewBaseModel(sim *Simulator, self Model) *BaseModel {
	m := &BaseModel{sim: sim}
	m.children = newChildren(self)
	m.connections = newConnections(self)
	return m
}

func (m *BaseModel) Sim() *Simulator { return m.sim }

func (m *BaseModel) Parent() Model { return m.parent }

func (m *BaseModel) Children() *Children { return m.children }

func (m *BaseModel) Connections() *Connections { return m.connections }

func (m *BaseModel) setParent(p Model) { m.parent = p }
