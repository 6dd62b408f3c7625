package finger

import (
	"testing"

	"github.com/jsphweid/stardex/keymap"
	"github.com/stretchr/testify/assert"
)

func TestUpdateOverwritesSlot(t *testing.T) {
	s := NewState()
	s.Update(keymap.LeftIndex, 100, keymap.RowHome, 3.25, 0)
	s.Update(keymap.LeftIndex, 250, keymap.RowTop, 3, 500)

	assert := assert.New(t)
	sl := s.Slot(keymap.LeftIndex)
	assert.Equal(250.0, sl.LastTime)
	assert.Equal(keymap.RowTop, sl.LastRow)
	assert.Equal(3.0, sl.LastCol)
	assert.Equal(750.0, sl.FreeAt)
	assert.False(s.Slot(keymap.RightIndex).Used)
}

func TestHoldingCount(t *testing.T) {
	s := NewState()
	s.Update(keymap.LeftPinky, 0, keymap.RowHome, 0.25, 1000)
	s.Update(keymap.LeftRing, 0, keymap.RowHome, 1.25, 505)
	s.Update(keymap.RightIndex, 0, keymap.RowHome, 6.25, 0)

	assert := assert.New(t)
	assert.Equal(2, s.HoldingCount(400, keymap.RightIndex))
	assert.Equal(1, s.HoldingCount(400, keymap.LeftPinky))
	// 505 is not more than 10ms past 500
	assert.Equal(1, s.HoldingCount(500, keymap.RightIndex))
	assert.Equal(0, s.HoldingCount(2000, -1))
}
