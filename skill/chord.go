package skill

import (
	"math"

	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/util"
)

const (
	chordDecay = 0.12

	chordWindow     = 6
	chordMinDensity = 1.1
	chordDensityExp = 1.8
	chordSpeedExp   = 1.1
	chordMultiplier = 0.20
)

type Chord struct {
	densities *util.Ring[float64]
}

func NewChord() *Chord {
	return &Chord{densities: util.NewRing[float64](chordWindow)}
}

func (c *Chord) Name() string       { return model.SkillChord }
func (c *Chord) DecayBase() float64 { return chordDecay }

func (c *Chord) NoteStrain(row model.Row, prev *model.Row, ctx *Context) float64 {
	density := float64(len(row.Notes))
	c.densities.Push(density)
	if prev == nil {
		return 0
	}

	avg := util.Sum(c.densities.Slice()) / float64(c.densities.Len())
	if avg < chordMinDensity {
		return 0
	}
	nps := 1 / rowDelta(row, prev)
	return math.Pow(density, chordDensityExp) * math.Pow(nps, chordSpeedExp) * chordMultiplier
}
