// Package pattern scores how comfortable a note is to play given what
// the same hand just did.
package pattern

import (
	"math"

	"github.com/jsphweid/stardex/finger"
	"github.com/jsphweid/stardex/keymap"
	"github.com/jsphweid/stardex/util"
)

const (
	HistorySize = 16

	anchorWindowMs    = 250.0
	anchorModifier    = 0.35
	rollBase          = 0.35
	rollDecay         = 0.55
	rollStreakCap     = 6
	jackModifier      = 1.3
	jumpModifier      = 1.45
	alternateModifier = 0.45
)

type entry struct {
	finger int
	time   float64
}

type handHistory struct {
	notes     *util.Ring[entry]
	direction int
	streak    int
}

// Analyzer keeps its own history. Each consumer needs its own instance.
type Analyzer struct {
	hands [2]handHistory
}

func NewAnalyzer() *Analyzer {
	a := &Analyzer{}
	for i := range a.hands {
		a.hands[i].notes = util.NewRing[entry](HistorySize)
	}
	return a
}

// Analyze returns a multiplier around 1.0 for striking fingerIdx at time,
// then records the strike.
func (a *Analyzer) Analyze(fingerIdx int, fingers *finger.State, time float64) float64 {
	hand := keymap.HandOf(fingerIdx)
	h := &a.hands[hand]
	modifier := 1.0

	if a.anchored(hand, fingers, time) {
		modifier *= anchorModifier
	} else if prev, ok := h.notes.Last(); ok {
		step := fingerIdx - prev.finger
		switch dist := abs(step); {
		case dist == 1:
			dir := sign(step)
			if dir == h.direction {
				h.streak++
			} else {
				h.direction = dir
				h.streak = 1
			}
			modifier *= rollBase * math.Pow(rollDecay, float64(min(h.streak, rollStreakCap)))
		case dist == 0:
			modifier *= jackModifier
			h.direction, h.streak = 0, 0
		default:
			modifier *= jumpModifier
			h.direction, h.streak = 0, 0
		}
	} else {
		modifier *= alternateModifier
	}

	h.notes.Push(entry{finger: fingerIdx, time: time})
	return modifier
}

// anchored reports whether the other hand is holding a note and has not
// struck anything inside the anchor window.
func (a *Analyzer) anchored(hand keymap.Hand, fingers *finger.State, time float64) bool {
	other := keymap.Left
	if hand == keymap.Left {
		other = keymap.Right
	}

	holding := false
	for f := 0; f < keymap.NumFingers; f++ {
		if keymap.HandOf(f) == other && fingers.IsHolding(f, time, 0) {
			holding = true
			break
		}
	}
	if !holding {
		return false
	}

	last, ok := a.hands[other].notes.Last()
	return !ok || time-last.time >= anchorWindowMs
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
