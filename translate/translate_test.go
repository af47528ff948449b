package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales("en-US")
	assert.Equal("stage halted", From("stage halted"))
	assert.Equal("word 'x' at 0x10", From("word '%v' at 0x%x", "x", 16))
}

func TestSetLocalesEmpty(t *testing.T) {
	assert := assert.New(t)

	SetLocales()
	assert.NotNil(printer)
	assert.Equal("ok", From("ok"))
}
