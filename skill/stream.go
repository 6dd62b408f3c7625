package skill

import (
	"math"

	"github.com/jsphweid/stardex/keymap"
	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/pattern"
)

const (
	streamDecay = 0.15

	streamJackMs     = 200.0
	streamNpsFloor   = 9.0
	streamMultiplier = 7.0
)

type Stream struct {
	analyzer *pattern.Analyzer
}

func NewStream() *Stream {
	return &Stream{analyzer: pattern.NewAnalyzer()}
}

func (s *Stream) Name() string       { return model.SkillStream }
func (s *Stream) DecayBase() float64 { return streamDecay }

// NoteStrain only scores single-note rows. Every note still passes
// through the analyzer so its history stays complete.
func (s *Stream) NoteStrain(row model.Row, prev *model.Row, ctx *Context) float64 {
	mods := make([]float64, 0, len(row.Notes))
	fingers := make([]int, 0, len(row.Notes))
	for _, n := range row.Notes {
		k, ok := keymap.Lookup(n.Key)
		if !ok {
			continue
		}
		fingers = append(fingers, k.Finger)
		mods = append(mods, s.analyzer.Analyze(k.Finger, ctx.Fingers, row.Time))
	}

	if prev == nil || len(fingers) != 1 {
		return 0
	}

	slot := ctx.Fingers.Slot(fingers[0])
	if slot.Used && row.Time-slot.LastTime < streamJackMs {
		return 0
	}
	return streamStrain(1/rowDelta(row, prev), mods[0])
}

func streamStrain(nps, modifier float64) float64 {
	switch {
	case modifier < 0.6:
		nps *= math.Pow(modifier, 3)
	case modifier < 1.0:
		nps *= modifier
	}
	if nps <= streamNpsFloor {
		return 0
	}
	return math.Log2(nps/streamNpsFloor) * streamMultiplier
}
