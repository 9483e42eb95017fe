package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandBufferDefersUntilFlush(t *testing.T) {
	r := NewRegistry()
	var es []Entity
	for i := 0; i < 4; i++ {
		e := r.Create()
		_ = Emplace(r, e, testComp{val: i})
		es = append(es, e)
	}

	var cmds CommandBuffer
	Each1(r, func(e Entity, c *testComp) {
		if c.val%2 == 0 {
			cmds.Destroy(e)
		} else {
			DeferEmplace(&cmds, e, tagComp{})
		}
	})
	assert.Equal(t, 4, cmds.Len())
	assert.Equal(t, 4, r.Alive(), "nothing applied before Flush")

	require.NoError(t, cmds.Flush(r))
	assert.Zero(t, cmds.Len())
	assert.Equal(t, 2, r.Alive())
	assert.True(t, Has[tagComp](r, es[1]))
	assert.True(t, Has[tagComp](r, es[3]))
}

func TestCommandBufferJoinsErrors(t *testing.T) {
	r := NewRegistry()
	e := r.Create()

	var cmds CommandBuffer
	cmds.Destroy(e)
	DeferEmplace(&cmds, e, testComp{})
	DeferRemove[testComp](&cmds, e)

	err := cmds.Flush(r)
	assert.ErrorIs(t, err, ErrStaleEntity)
	assert.False(t, r.Valid(e))
}
