package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigit_SequentialEntryCompletesOnce(t *testing.T) {
	var completed []string
	c := NewController(func(code string) { completed = append(completed, code) })

	for i, ch := range "123456" {
		require.True(t, c.Digit(i, ch))
	}

	require.Equal(t, []string{"123456"}, completed)
	assert.True(t, c.Filled())
	assert.Equal(t, "123456", c.Code())

	// retyping the last digit must not fire again
	c.Digit(5, '6')
	require.Len(t, completed, 1)
}

func TestDigit_AdvancesFocus(t *testing.T) {
	c := NewController(nil)

	require.True(t, c.Digit(0, '7'))
	assert.Equal(t, 1, c.Focus())
	assert.Equal(t, "7", c.Slot(0))
	assert.Equal(t, "", c.Slot(1))
}

func TestDigit_RejectsNonDigit(t *testing.T) {
	c := NewController(nil)

	require.False(t, c.Digit(0, 'a'))
	assert.Equal(t, 0, c.Focus())
	assert.Equal(t, "", c.Slot(0))

	require.False(t, c.Digit(-1, '1'))
	require.False(t, c.Digit(CodeLength, '1'))
}

func TestPaste_DistributesAndCompletes(t *testing.T) {
	var completed []string
	c := NewController(func(code string) { completed = append(completed, code) })

	require.True(t, c.Paste("123456-extra"))

	require.Equal(t, []string{"123456"}, completed)
	assert.Equal(t, "123456", c.Code())
	assert.Equal(t, CodeLength-1, c.Focus())
}

func TestPaste_RejectsMixedInput(t *testing.T) {
	c := NewController(nil)

	require.False(t, c.Paste("12a456"))
	for i := 0; i < CodeLength; i++ {
		assert.Equal(t, "", c.Slot(i))
	}
	assert.Equal(t, 0, c.Focus())

	require.False(t, c.Paste(""))
}

func TestPaste_PartialFocusesNextEmptySlot(t *testing.T) {
	c := NewController(nil)

	require.True(t, c.Paste("123"))
	assert.Equal(t, "123", c.Code())
	assert.Equal(t, 3, c.Focus())
	assert.False(t, c.Filled())
}

func TestBackspace_EmptySlotMovesFocusBack(t *testing.T) {
	c := NewController(nil)
	c.Digit(0, '1')
	c.Digit(1, '2')
	require.Equal(t, 2, c.Focus())

	c.Backspace(2)
	assert.Equal(t, 1, c.Focus())
	assert.Equal(t, "2", c.Slot(1), "backspace must not delete a populated lower slot")
}

func TestBackspace_SlotZeroIsNoop(t *testing.T) {
	c := NewController(nil)

	c.Backspace(0)
	assert.Equal(t, 0, c.Focus())
}

func TestBackspace_PopulatedSlotDoesNotMoveFocus(t *testing.T) {
	c := NewController(nil)
	c.Paste("12")

	c.Backspace(1) // slot 1 holds '2'
	assert.Equal(t, "2", c.Slot(1))
}

func TestClearSlot_StartsNewFillSequence(t *testing.T) {
	var count int
	c := NewController(func(string) { count++ })

	c.Paste("123456")
	require.Equal(t, 1, count)

	c.ClearSlot(5)
	assert.Equal(t, 5, c.Focus())
	assert.False(t, c.Filled())

	c.Digit(5, '9')
	assert.Equal(t, 2, count)
	assert.Equal(t, "123459", c.Code())
}

func TestReset_ClearsEverything(t *testing.T) {
	var count int
	c := NewController(func(string) { count++ })

	c.Paste("123456")
	require.Equal(t, 1, count)

	c.Reset()
	assert.Equal(t, 0, c.Focus())
	assert.Equal(t, "", c.Code())
	assert.False(t, c.Filled())

	// a fresh sequence can complete again
	c.Paste("654321")
	assert.Equal(t, 2, count)
}
