package skill

import (
	"math"

	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/util"
)

const (
	precisionDecay = 0.12

	precisionHistory   = 12
	precisionResetMs   = 300.0
	ratioTolerance     = 0.05
	irregularRatioCost = 25.0
	entropyExp         = 3.0
	entropyMultiplier  = 35.0
	precisionNpsBase   = 4.0
	precisionNpsExp    = 0.6
)

// Costs for snapping from one subdivision to another. Doublings are cheap,
// triplet and dotted feels are not.
var ratioCosts = []struct {
	ratio float64
	cost  float64
}{
	{1.0, 0},
	{2.0, 0.5},
	{4.0, 1.0},
	{1.5, 8.0},
	{1.33, 12.0},
}

type Precision struct {
	deltas *util.Ring[float64]
}

func NewPrecision() *Precision {
	return &Precision{deltas: util.NewRing[float64](precisionHistory)}
}

func (p *Precision) Name() string       { return model.SkillPrec }
func (p *Precision) DecayBase() float64 { return precisionDecay }

func (p *Precision) NoteStrain(row model.Row, prev *model.Row, ctx *Context) float64 {
	if prev == nil {
		return 0
	}

	delta := row.Time - prev.Time
	if delta > precisionResetMs {
		p.deltas.Reset()
		return 0
	}

	var strain float64
	if last, ok := p.deltas.Last(); ok {
		strain += ratioCost(delta, last)
	}
	p.deltas.Push(delta)
	strain += math.Pow(rhythmEntropy(p.deltas.Slice()), entropyExp) * entropyMultiplier

	nps := 1000 / delta
	return strain * math.Max(1, math.Pow(nps/precisionNpsBase, precisionNpsExp))
}

// ratioCost compares two consecutive gaps, slower to faster or the reverse.
func ratioCost(a, b float64) float64 {
	ratio := math.Max(a, b) / math.Min(a, b)
	for _, rc := range ratioCosts {
		if math.Abs(ratio-rc.ratio) <= ratioTolerance {
			return rc.cost
		}
	}
	return irregularRatioCost
}

// rhythmEntropy is the mean absolute log2 ratio between consecutive gaps.
func rhythmEntropy(deltas []float64) float64 {
	if len(deltas) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(deltas); i++ {
		sum += math.Abs(math.Log2(deltas[i] / deltas[i-1]))
	}
	return sum / float64(len(deltas)-1)
}
