package skill

import (
	"math"

	"github.com/jsphweid/stardex/keymap"
	"github.com/jsphweid/stardex/model"
)

const (
	jackDecay = 0.20

	jackMinDt   = 0.01
	jackMaxDt   = 0.18
	jackMaxNps  = 18.0
	jackNpsBase = 5.0
	jackExp     = 2.5
	jackDivisor = 15.0
)

type Jack struct{}

func NewJack() *Jack {
	return &Jack{}
}

func (j *Jack) Name() string       { return model.SkillJack }
func (j *Jack) DecayBase() float64 { return jackDecay }

func (j *Jack) NoteStrain(row model.Row, prev *model.Row, ctx *Context) float64 {
	if prev == nil {
		return 0
	}

	var strain float64
	for _, n := range row.Notes {
		k, ok := keymap.Lookup(n.Key)
		if !ok {
			continue
		}
		slot := ctx.Fingers.Slot(k.Finger)
		if !slot.Used {
			continue
		}
		strain += jackStrain((row.Time - slot.LastTime) / 1000)
	}
	return strain
}

// jackStrain scores one same-finger repeat fingerDt seconds after the last.
func jackStrain(fingerDt float64) float64 {
	if fingerDt <= jackMinDt || fingerDt >= jackMaxDt {
		return 0
	}
	nps := math.Min(1/fingerDt, jackMaxNps)
	return math.Pow(math.Max(0, nps-jackNpsBase), jackExp) / jackDivisor
}
