// Package skill implements the decaying strain model shared by every
// difficulty skill, and the seven skills themselves.
package skill

import (
	"math"

	"github.com/jsphweid/stardex/constants"
	"github.com/jsphweid/stardex/finger"
	"github.com/jsphweid/stardex/model"
)

// Context is the per-calculation state skills read from. The calculator
// updates Fingers after every skill has seen a row.
type Context struct {
	Fingers *finger.State
}

func NewContext() *Context {
	return &Context{Fingers: finger.NewState()}
}

// Strainer computes the strain a single row adds to one skill.
type Strainer interface {
	Name() string
	// DecayBase is the fraction of strain left after one second.
	DecayBase() float64
	// NoteStrain is called once per row in time order. prev is nil for
	// the first row.
	NoteStrain(row model.Row, prev *model.Row, ctx *Context) float64
}

type Skill struct {
	Strainer

	currentStrain float64
	peaks         []float64
	sectionEnd    float64
	started       bool
	prevTime      float64
	finalized     bool
}

func New(s Strainer) *Skill {
	return &Skill{Strainer: s}
}

func (s *Skill) Process(row model.Row, prev *model.Row, ctx *Context) {
	if s.finalized {
		panic("skill: Process called after Finalize on " + s.Name())
	}

	dt := 1.0
	if !s.started {
		s.started = true
		s.sectionEnd = row.Time + constants.SectionLengthMs
	} else {
		dt = math.Max((row.Time-s.prevTime)/1000, 0.001)
	}
	s.prevTime = row.Time

	s.currentStrain *= math.Pow(s.DecayBase(), dt)
	s.currentStrain += s.NoteStrain(row, prev, ctx)

	for row.Time > s.sectionEnd {
		s.peaks = append(s.peaks, s.currentStrain)
		s.sectionEnd += constants.SectionLengthMs
	}
}

// Finalize closes the last section and returns every peak. The skill
// accepts no rows afterwards.
func (s *Skill) Finalize() []float64 {
	if !s.finalized {
		s.finalized = true
		s.peaks = append(s.peaks, s.currentStrain)
	}
	return s.peaks
}

func (s *Skill) CurrentStrain() float64 {
	return s.currentStrain
}

func rowDelta(row model.Row, prev *model.Row) float64 {
	return (row.Time - prev.Time) / 1000
}
