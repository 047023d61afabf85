package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableSet_EnsureCachesFirstInstance(t *testing.T) {
	var s VariableSet

	inits := 0
	init := func() *VariableBinding {
		inits++
		return NewVariableBinding()
	}

	first := s.Ensure("IsApproved", init)
	second := s.Ensure("IsApproved", init)

	assert.Same(t, first, second)
	assert.Equal(t, 1, inits)
}

func TestVariableSet_EnsureToleratesNilInit(t *testing.T) {
	var s VariableSet

	b := s.Ensure("Comment", func() *VariableBinding { return nil })
	require.NotNil(t, b)
}

func TestVariableSet_GetOnlyReturnsInstantiated(t *testing.T) {
	var s VariableSet

	_, ok := s.Get("IsApproved")
	assert.False(t, ok)

	created := s.Ensure("IsApproved", NewVariableBinding)

	got, ok := s.Get("IsApproved")
	require.True(t, ok)
	assert.Same(t, created, got)
}

func TestVariableSet_InstantiatedIteratesInOrder(t *testing.T) {
	var s VariableSet

	s.Ensure("IsApproved", NewVariableBinding)
	s.Ensure("Comment", NewVariableBinding)

	var keys []string
	for key := range s.Instantiated() {
		keys = append(keys, key)
	}

	assert.Equal(t, []string{"IsApproved", "Comment"}, keys)
}

func TestVariableSet_ClearAndHasAny(t *testing.T) {
	var s VariableSet

	assert.False(t, s.HasAny())

	b := s.Ensure("IsApproved", NewVariableBinding)
	assert.False(t, s.HasAny())

	b.SetName("BUILD_NUMBER")
	assert.True(t, s.HasAny())

	s.Clear()
	assert.False(t, s.HasAny())
	assert.Empty(t, b.Name())
}
