// Package finger tracks the most recent strike of every finger.
package finger

import "github.com/jsphweid/stardex/keymap"

// HoldingToleranceMs is how far past a time a hold must extend to count as held.
const HoldingToleranceMs = 10.0

type Slot struct {
	LastTime float64
	LastRow  int
	LastCol  float64
	// FreeAt is when the finger's current hold releases.
	FreeAt float64
	Used   bool
}

type State struct {
	slots [keymap.NumFingers]Slot
}

func NewState() *State {
	return &State{}
}

func (s *State) Update(finger int, time float64, row int, col float64, duration float64) {
	s.slots[finger] = Slot{
		LastTime: time,
		LastRow:  row,
		LastCol:  col,
		FreeAt:   time + duration,
		Used:     true,
	}
}

func (s *State) Slot(finger int) Slot {
	return s.slots[finger]
}

// IsHolding reports whether finger's hold extends more than tolerance past time.
func (s *State) IsHolding(finger int, time, tolerance float64) bool {
	sl := s.slots[finger]
	return sl.Used && sl.FreeAt > time+tolerance
}

// HoldingCount counts fingers other than exclude still holding at time.
func (s *State) HoldingCount(time float64, exclude int) int {
	var n int
	for f := range s.slots {
		if f != exclude && s.IsHolding(f, time, HoldingToleranceMs) {
			n++
		}
	}
	return n
}
