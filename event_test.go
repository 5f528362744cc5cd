package pydesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler_BoundSourceAndInvoke(t *testing.T) {
	var got []any
	h := Bound("target", "Thing.method", func(args []any, kwargs map[string]any) {
		got = args
	})

	assert.True(t, h.IsBound())
	assert.Equal(t, "Thing.method", h.Source())

	h.invoke(nil, []any{1, 2}, nil)
	assert.Equal(t, []any{1, 2}, got)
}

func TestHandler_FreeSourceIsKernel(t *testing.T) {
	var gotSim *Simulator
	h := Free(func(sim *Simulator, args []any, kwargs map[string]any) {
		gotSim = sim
	})

	assert.False(t, h.IsBound())
	assert.Equal(t, "kernel", h.Source())

	sim := &Simulator{}
	h.invoke(sim, nil, nil)
	assert.Same(t, sim, gotSim)
}
