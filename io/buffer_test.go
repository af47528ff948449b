package io

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_SendReceive(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer(1, 2)
	assert.Equal(2, buf.Len())

	assert.NoError(buf.Send(3))
	assert.Equal([]int64{1, 2, 3}, slices.Collect(buf.Receive()))
	assert.Equal(0, buf.Len())
	assert.Empty(slices.Collect(buf.Receive()))

	assert.NoError(buf.Send(-4))
	assert.Equal([]int64{-4}, slices.Collect(buf.Receive()))
	assert.Equal([]int64{1, 2, 3, -4}, buf.Values())
}

func TestBuffer_PartialReceive(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer(5, 6, 7)
	for value := range buf.Receive() {
		assert.Equal(int64(5), value)
		break
	}
	assert.Equal(2, buf.Len())
	assert.Equal([]int64{6, 7}, slices.Collect(buf.Receive()))
}

func TestBuffer_Rewind(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer(8, 9)
	slices.Collect(buf.Receive())
	buf.Rewind()
	assert.Equal([]int64{8, 9}, slices.Collect(buf.Receive()))
}

func TestBuffer_Send_CapacityFull(t *testing.T) {
	assert := assert.New(t)

	buf := &Buffer{Capacity: 2}
	assert.NoError(buf.Send(1))
	assert.NoError(buf.Send(2))
	assert.Equal(ErrChannelFull, buf.Send(3))

	for range buf.Receive() {
		break
	}
	assert.NoError(buf.Send(3))
}
