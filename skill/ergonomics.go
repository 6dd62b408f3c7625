package skill

import (
	"github.com/jsphweid/stardex/keymap"
	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/pattern"
)

const (
	ergonomicsDecay = 0.20

	awkwardThreshold     = 1.1
	awkwardMultiplier    = 10.0
	interferenceTolMs    = 20.0
	adjacentInterference = 5.0
	distantInterference  = 2.0
)

type Ergonomics struct {
	analyzer *pattern.Analyzer
}

func NewErgonomics() *Ergonomics {
	return &Ergonomics{analyzer: pattern.NewAnalyzer()}
}

func (e *Ergonomics) Name() string       { return model.SkillErgo }
func (e *Ergonomics) DecayBase() float64 { return ergonomicsDecay }

func (e *Ergonomics) NoteStrain(row model.Row, prev *model.Row, ctx *Context) float64 {
	var strain float64
	for _, n := range row.Notes {
		k, ok := keymap.Lookup(n.Key)
		if !ok {
			continue
		}

		mod := e.analyzer.Analyze(k.Finger, ctx.Fingers, row.Time)
		if mod > awkwardThreshold {
			strain += (mod - 1.0) * awkwardMultiplier
		}
		strain += interference(k.Finger, ctx, row.Time)
	}

	if prev == nil {
		return 0
	}
	return strain
}

// interference scores fingers on the same hand still pinned by a hold.
func interference(f int, ctx *Context, time float64) float64 {
	var cost float64
	hand := keymap.HandOf(f)
	for other := 0; other < keymap.NumFingers; other++ {
		if other == f || keymap.HandOf(other) != hand {
			continue
		}
		if !ctx.Fingers.IsHolding(other, time, interferenceTolMs) {
			continue
		}
		if other-f == 1 || f-other == 1 {
			cost += adjacentInterference
		} else {
			cost += distantInterference
		}
	}
	return cost
}
