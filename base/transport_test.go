package base

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type classifiedError struct {
	terminal bool
}

func (e classifiedError) Error() string {
	return fmt.Sprintf("classified(%v)", e.terminal)
}

func (e classifiedError) IsTerminal() bool {
	return e.terminal
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))
	assert.False(t, IsTerminal(io.EOF))
	assert.False(t, IsTerminal(classifiedError{false}))
	assert.True(t, IsTerminal(classifiedError{true}))
	assert.True(t, IsTerminal(fmt.Errorf("dial: %w", classifiedError{true})))
	assert.False(t, IsTerminal(fmt.Errorf("dial: %w", classifiedError{false})))
}

func TestMarkTerminal(t *testing.T) {
	assert.Nil(t, MarkTerminal(nil))

	err := MarkTerminal(io.ErrUnexpectedEOF)
	assert.True(t, IsTerminal(err))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, io.ErrUnexpectedEOF.Error(), err.Error())
}
