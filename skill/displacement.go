package skill

import (
	"math"

	"github.com/jsphweid/stardex/keymap"
	"github.com/jsphweid/stardex/model"
)

const (
	displacementDecay = 0.20

	quickReuseMs     = 250.0
	homeResetMs      = 600.0
	minReuseMs       = 40.0
	rowJumpBase      = 4.0
	quickMultiplier  = 2.0
	farRowCost       = 4.0
	nearRowCost      = 1.2
	stairsMultiplier = 1.35
)

type Displacement struct{}

func NewDisplacement() *Displacement {
	return &Displacement{}
}

func (d *Displacement) Name() string       { return model.SkillDisp }
func (d *Displacement) DecayBase() float64 { return displacementDecay }

func (d *Displacement) NoteStrain(row model.Row, prev *model.Row, ctx *Context) float64 {
	if prev == nil {
		return 0
	}

	var cost float64
	var direction int
	for _, n := range row.Notes {
		k, ok := keymap.Lookup(n.Key)
		if !ok {
			continue
		}

		slot := ctx.Fingers.Slot(k.Finger)
		dt := math.Inf(1)
		from := keymap.RowHome
		if slot.Used {
			dt = row.Time - slot.LastTime
			if dt <= homeResetMs {
				from = slot.LastRow
			}
		}

		moved := k.Row - from
		dist := moved
		if dist < 0 {
			dist = -dist
		}
		switch {
		case moved > 0:
			direction++
		case moved < 0:
			direction--
		}

		if dt < quickReuseMs {
			if dist > 0 {
				cost += math.Pow(rowJumpBase, float64(dist)) * (quickReuseMs / math.Max(minReuseMs, dt)) * quickMultiplier
			}
			continue
		}
		switch {
		case dist >= 2:
			cost += farRowCost
		case dist == 1:
			cost += nearRowCost
		}
	}

	if direction > 1 || direction < -1 {
		cost *= stairsMultiplier
	}
	return cost
}
