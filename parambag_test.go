package pydesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamBag_GetAndDefault(t *testing.T) {
	b := NewParamBag(map[string]any{"x": 1, "name": "queue"})

	v, err := b.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = b.Get("missing")
	assert.ErrorIs(t, err, ErrUnknownName)

	assert.Equal(t, "fallback", b.GetDefault("missing", "fallback"))
	assert.True(t, b.Has("name"))
	assert.False(t, b.Has("missing"))
}

func TestParamBag_TypedAccessors(t *testing.T) {
	b := NewParamBag(map[string]any{
		"count":   "3",
		"rate":    "1.5",
		"label":   42,
		"enabled": "true",
	})

	i, err := b.Int("count")
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	f, err := b.Float64("rate")
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	s, err := b.String("label")
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	ok, err := b.Bool("enabled")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParamBag_IsImmutableCopy(t *testing.T) {
	src := map[string]any{"x": 1}
	b := NewParamBag(src)
	src["x"] = 2

	v, _ := b.Get("x")
	assert.Equal(t, 1, v)

	cp := b.AsMap()
	cp["x"] = 99
	v2, _ := b.Get("x")
	assert.Equal(t, 1, v2)
}

func TestHandlerRegistry_GetAndDefault(t *testing.T) {
	fn := func() {}
	reg := NewHandlerRegistry(map[string]any{"onTick": fn})

	v, err := reg.Get("onTick")
	require.NoError(t, err)
	assert.NotNil(t, v)

	_, err = reg.Get("missing")
	assert.ErrorIs(t, err, ErrUnknownName)

	assert.Equal(t, "fallback", reg.GetDefault("missing", "fallback"))
	assert.True(t, reg.Has("onTick"))
}
