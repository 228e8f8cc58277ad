// Package otp implements the one-time-code entry controller: a fixed row of
// six single-digit slots with a cursor, digit-by-digit entry, paste
// distribution, backspace navigation and a single auto-submit trigger.
package otp

// CodeLength is the number of digit slots in a one-time code.
const CodeLength = 6

// Controller holds the entry state of one code. It is not safe for
// concurrent use; it belongs to a single input loop.
//
// The cursor always points at the first empty slot until the code is
// complete. OnComplete fires at most once per fill sequence; emptying any
// slot starts a new sequence.
type Controller struct {
	slots      [CodeLength]byte
	focus      int
	fired      bool
	onComplete func(code string)
}

// NewController builds a Controller. onComplete may be nil when the caller
// only uses the manual-submit path (Filled + Code).
func NewController(onComplete func(code string)) *Controller {
	return &Controller{onComplete: onComplete}
}

// Focus returns the index of the focused slot.
func (c *Controller) Focus() int { return c.focus }

// Slot returns the digit in slot i, or an empty string.
func (c *Controller) Slot(i int) string {
	if i < 0 || i >= CodeLength || c.slots[i] == 0 {
		return ""
	}
	return string(c.slots[i])
}

// Filled reports whether every slot holds a digit.
func (c *Controller) Filled() bool {
	for _, s := range c.slots {
		if s == 0 {
			return false
		}
	}
	return true
}

// Code returns the concatenation of the filled slots.
func (c *Controller) Code() string {
	var out []byte
	for _, s := range c.slots {
		if s != 0 {
			out = append(out, s)
		}
	}
	return string(out)
}

// Digit enters ch into slot index. Non-digit input and out-of-range indexes
// are rejected without any state change. Entering a digit advances the focus,
// and entering the last missing digit into the final slot triggers
// onComplete exactly once.
func (c *Controller) Digit(index int, ch rune) bool {
	if index < 0 || index >= CodeLength || ch < '0' || ch > '9' {
		return false
	}

	c.slots[index] = byte(ch)
	if index < CodeLength-1 {
		c.focus = index + 1
	}
	if index == CodeLength-1 && c.Filled() {
		c.complete()
	}
	return true
}

// ClearSlot empties slot index and moves the focus there. This starts a new
// fill sequence: a later completion will fire onComplete again.
func (c *Controller) ClearSlot(index int) {
	if index < 0 || index >= CodeLength {
		return
	}
	c.slots[index] = 0
	c.focus = index
	c.fired = false
}

// Backspace on an empty slot moves the focus to the previous slot; on slot 0
// or on a populated slot it does nothing. Deleting content is ClearSlot's
// job, mirroring common OTP widgets.
func (c *Controller) Backspace(index int) {
	if index <= 0 || index >= CodeLength {
		return
	}
	if c.slots[index] == 0 {
		c.focus = index - 1
	}
}

// Paste distributes the leading digits of text across the slots, starting at
// slot 0. Up to CodeLength characters are considered; if any of them is not
// a decimal digit, or text is empty, the paste is rejected wholesale and no
// slot changes. A paste of exactly CodeLength digits triggers onComplete.
func (c *Controller) Paste(text string) bool {
	if text == "" {
		return false
	}
	digits := text
	if len(digits) > CodeLength {
		digits = digits[:CodeLength]
	}
	for _, ch := range []byte(digits) {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	for i := 0; i < len(digits); i++ {
		c.slots[i] = digits[i]
	}
	c.focus = len(digits)
	if c.focus > CodeLength-1 {
		c.focus = CodeLength - 1
	}
	if len(digits) == CodeLength {
		c.complete()
	}
	return true
}

// Reset clears all slots and refocuses the first one. Used after a failed
// verification so the user retypes the whole code.
func (c *Controller) Reset() {
	c.slots = [CodeLength]byte{}
	c.focus = 0
	c.fired = false
}

func (c *Controller) complete() {
	if c.fired {
		return
	}
	c.fired = true
	if c.onComplete != nil {
		c.onComplete(c.Code())
	}
}
