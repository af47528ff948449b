package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_Push(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	assert.True(q.Empty())

	q.Push(9, 0)
	assert.False(q.Empty())
	assert.Equal(2, q.Len())
	assert.Equal([]int64{9, 0}, q.Data)
}

func TestQueue_Pop(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Push(4)
	q.Push(-3)

	val, ok := q.Pop()
	assert.True(ok)
	assert.Equal(int64(4), val)
	assert.Equal(1, q.Len())

	val, ok = q.Pop()
	assert.True(ok)
	assert.Equal(int64(-3), val)
	assert.True(q.Empty())

	val, ok = q.Pop()
	assert.False(ok)
	assert.Equal(int64(0), val)
}

func TestQueue_Peek(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	_, ok := q.Peek()
	assert.False(ok)

	q.Push(1, 2)
	val, ok := q.Peek()
	assert.True(ok)
	assert.Equal(int64(1), val)
	assert.Equal(2, q.Len())
}

func TestQueue_Reset(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Push(1, 2, 3)
	q.Reset()
	assert.True(q.Empty())
	q.Reset()
	assert.True(q.Empty())
}
