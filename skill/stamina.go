package skill

import (
	"math"

	"github.com/jsphweid/stardex/model"
)

const (
	staminaDecay = 0.015

	staminaDensityExp = 1.8
	staminaThreshold  = 5.0
	staminaMultiplier = 0.15
)

type Stamina struct{}

func NewStamina() *Stamina {
	return &Stamina{}
}

func (s *Stamina) Name() string       { return model.SkillStam }
func (s *Stamina) DecayBase() float64 { return staminaDecay }

func (s *Stamina) NoteStrain(row model.Row, prev *model.Row, ctx *Context) float64 {
	if prev == nil {
		return 0
	}
	nps := 1 / rowDelta(row, prev)
	strain := nps * math.Pow(float64(len(row.Notes)), staminaDensityExp)
	if strain <= staminaThreshold {
		return 0
	}
	return (strain - staminaThreshold) * staminaMultiplier
}
