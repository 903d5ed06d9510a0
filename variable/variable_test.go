package variable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesnet/variable"
)

func TestNew_Validation(t *testing.T) {
	_, err := variable.New("", 2)
	assert.ErrorIs(t, err, variable.ErrEmptyName)

	_, err = variable.New("X", 0)
	assert.ErrorIs(t, err, variable.ErrBadCardinality)

	v, err := variable.New("X", 3)
	require.NoError(t, err)
	assert.Equal(t, "X(3)", v.String())
}

func TestVariable_CheckState(t *testing.T) {
	v := variable.Variable{Name: "Color", Card: 3}
	assert.NoError(t, v.CheckState(0))
	assert.NoError(t, v.CheckState(2))
	assert.ErrorIs(t, v.CheckState(3), variable.ErrStateOutOfRange)
	assert.ErrorIs(t, v.CheckState(-1), variable.ErrStateOutOfRange)
}

func TestRegistry_DeclarationOrder(t *testing.T) {
	r := variable.NewRegistry()
	for i, name := range []string{"Zeta", "Alpha", "Mid"} {
		idx, err := r.Add(name, 2)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, r.Names())
	assert.Equal(t, 3, r.Len())

	idx, err := r.Index("Alpha")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "Alpha", r.At(idx).Name)
}

func TestRegistry_Errors(t *testing.T) {
	r := variable.NewRegistry()
	_, err := r.Add("A", 2)
	require.NoError(t, err)

	_, err = r.Add("A", 3)
	assert.ErrorIs(t, err, variable.ErrDuplicate)

	_, err = r.Add("B", -1)
	assert.ErrorIs(t, err, variable.ErrBadCardinality)

	_, err = r.Lookup("missing")
	assert.ErrorIs(t, err, variable.ErrUnknown)
	assert.False(t, r.Has("missing"))
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	r := variable.NewRegistry()
	_, _ = r.Add("A", 2)
	c := r.Clone()
	_, err := c.Add("B", 2)
	require.NoError(t, err)

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 2, c.Len())
	assert.False(t, r.Has("B"))
}
