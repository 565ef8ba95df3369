package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsDeferredUntilMaintain(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity(testComp{val: 1})

	cmds := w.Commands()
	cmds.Spawn(testComp{val: 2}, otherComp{})
	cmds.Add(id, otherComp{})
	assert.Equal(t, 2, cmds.Pending())

	// Nothing is applied yet.
	assert.Equal(t, 1, w.Len())
	assert.False(t, w.Has(id, 2))

	w.Maintain()

	assert.Equal(t, 2, w.Len())
	assert.True(t, w.Has(id, 2))
	assert.Len(t, w.Query(1, 2), 2)
	assert.Zero(t, cmds.Pending(), "flush should reset the buffer")
}

func TestCommandsDestroyWinsOverAdd(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity(testComp{})

	w.Commands().Add(id, otherComp{})
	w.Commands().Destroy(id)
	w.Maintain()

	assert.False(t, w.Alive(id))
	assert.False(t, w.Has(id, 2))
}

func TestCommandsRemove(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity(testComp{}, otherComp{})

	w.Commands().Remove(id, 2)
	require.True(t, w.Has(id, 2))
	w.Maintain()

	assert.False(t, w.Has(id, 2))
	assert.True(t, w.Has(id, 1))
}

func TestMaintainEmptyQueueIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity(testComp{val: 9})
	w.Maintain()
	w.Maintain()

	assert.True(t, w.Alive(id))
	assert.Equal(t, 9, w.Get(id, 1).(testComp).val)
}

func TestCommandsAddToDeadEntityDropped(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.DestroyEntity(id)

	w.Commands().Add(id, testComp{})
	w.Maintain()

	assert.Empty(t, w.Query(1))
}
