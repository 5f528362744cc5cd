package pydesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sweepRoot struct {
	*BaseModel
	x int
}

func newSweepRoot(sim *Simulator) Model {
	x, _ := sim.Params().Int("x")
	r := &sweepRoot{x: x}
	r.BaseModel = NewBaseModel(sim, r)
	return r
}

func TestSimulate_ModelFactoryConstructsWithSim(t *testing.T) {
	sim, err := Simulate(ModelFactory(newSweepRoot), Options{
		Params: map[string]any{"x": 7},
	})
	require.NoError(t, err)

	root := sim.Data().(*sweepRoot)
	assert.Equal(t, 7, root.x)
	assert.Same(t, sim, root.Sim())
}

func TestSimulate_DataFactoryReceivesParamsOnly(t *testing.T) {
	sim, err := Simulate(DataFactory(func(p ParamBag) any {
		v, _ := p.Int("x")
		return v * 2
	}), Options{Params: map[string]any{"x": 5}})
	require.NoError(t, err)

	assert.Equal(t, 10, sim.Data())
}

func TestSimulate_NonFactoryValueAdoptedAsIs(t *testing.T) {
	root := &sweepRoot{x: 3}
	sim, err := Simulate(root, Options{})
	require.NoError(t, err)
	assert.Same(t, root, sim.Data())
}

func TestSimulateSweep_RunsAreIsolated(t *testing.T) {
	sims, err := SimulateSweep(ModelFactory(newSweepRoot), []map[string]any{
		{"x": 1},
		{"x": 2},
	}, Options{})
	require.NoError(t, err)
	require.Len(t, sims, 2)

	assert.Equal(t, 1, sims[0].Data().(*sweepRoot).x)
	assert.Equal(t, 2, sims[1].Data().(*sweepRoot).x)
	assert.NotSame(t, sims[0].Kernel(), sims[1].Kernel())
}

func TestSimulator_PassThroughsMatchKernel(t *testing.T) {
	sim, err := Simulate(ModelFactory(newSweepRoot), Options{Params: map[string]any{"x": 1}})
	require.NoError(t, err)

	id, err := sim.Schedule(3, Free(func(*Simulator, []any, map[string]any) {}), nil, nil)
	require.NoError(t, err)
	sim.Cancel(id)
	assert.Equal(t, 0.0, sim.STime())
	assert.Equal(t, 0, sim.NumEvents())
}
