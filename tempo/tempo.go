// Package tempo rewrites note timings: playback-rate variants and
// flam snapping.
package tempo

import (
	"math"
	"sort"

	"github.com/jsphweid/stardex/constants"
	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/util"
)

const (
	MinRate = 0.1
	MaxRate = 2.0

	rateEpsilon = 0.001

	// Hit window in ms is hitWindowBase - hitWindowPerOD*od.
	hitWindowBase  = 80.0
	hitWindowPerOD = 6.0

	MinOD = 0.0
	MaxOD = 11.0
)

// ScaleNotes returns a copy of notes played back at rate.
func ScaleNotes(notes []model.Note, rate float64) []model.Note {
	res := make([]model.Note, len(notes))
	copy(res, notes)

	rate = util.Clamp(rate, MinRate, MaxRate)
	if math.Abs(rate-1) <= rateEpsilon {
		return res
	}

	for i := range res {
		res[i].Time /= rate
		res[i].StartTime /= rate
		res[i].EndTime /= rate
		res[i].Duration /= rate
	}
	return res
}

// ScaleOD returns the OD whose hit window matches od's window at rate.
func ScaleOD(od, rate float64) float64 {
	rate = util.Clamp(rate, MinRate, MaxRate)
	window := (hitWindowBase - hitWindowPerOD*od) / rate
	return util.Clamp((hitWindowBase-window)/hitWindowPerOD, MinOD, MaxOD)
}

// SnapNotes sorts notes by onset and pulls every note within the snap
// tolerance of its cluster anchor onto the anchor's time.
func SnapNotes(notes []model.Note) []model.Note {
	res := make([]model.Note, len(notes))
	copy(res, notes)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].At() < res[j].At()
	})

	anchor := math.Inf(-1)
	for i := range res {
		t := res[i].At()
		if t-anchor < constants.SnapToleranceMs {
			setOnset(&res[i], anchor)
			continue
		}
		anchor = t
	}
	return res
}

func setOnset(n *model.Note, t float64) {
	if n.Time != 0 || n.StartTime == 0 {
		n.Time = t
	}
	if n.StartTime != 0 {
		n.StartTime = t
	}
}
