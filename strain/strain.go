// Package strain rates a chart by running every skill over its rows and
// combining the results into a single star value.
package strain

import (
	"math"
	"sort"

	"github.com/jsphweid/stardex/constants"
	"github.com/jsphweid/stardex/keymap"
	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/row"
	"github.com/jsphweid/stardex/skill"
	"github.com/jsphweid/stardex/tempo"
)

// Per-skill weights, in model.SkillNames order.
var skillWeights = [7]float64{0.50, 0.65, 0.75, 0.60, 0.55, 0.50, 0.60}

// Weights applied to the skills once ranked from strongest to weakest.
var rankWeights = [7]float64{1.0, 0.95, 0.85, 0.75, 0.65, 0.55, 0.45}

const (
	precisionIndex  = 3
	odScalePerPoint = 0.04
	rateEpsilon     = 0.001
)

type Options struct {
	OverallDifficulty float64
	// Playback rate. Zero means 1.0.
	Rate        float64
	ReturnPeaks bool
}

func DefaultOptions() Options {
	return Options{OverallDifficulty: constants.DefaultOverallDifficulty, Rate: 1}
}

// Calculate rates notes at normal speed.
func Calculate(notes []model.Note, overallDifficulty float64, returnPeaks bool) model.StrainResult {
	return CalculateWithOptions(notes, Options{
		OverallDifficulty: overallDifficulty,
		Rate:              1,
		ReturnPeaks:       returnPeaks,
	})
}

// CalculateWithOptions is safe for concurrent use; all state is local to the call.
func CalculateWithOptions(notes []model.Note, opts Options) model.StrainResult {
	if len(notes) == 0 {
		return emptyResult()
	}

	od := opts.OverallDifficulty
	if opts.Rate != 0 && math.Abs(opts.Rate-1) > rateEpsilon {
		notes = tempo.ScaleNotes(notes, opts.Rate)
		od = tempo.ScaleOD(od, opts.Rate)
	}

	rows := row.FromNotes(tempo.SnapNotes(notes))
	if len(rows) == 0 {
		return emptyResult()
	}

	skills := skill.All()
	ctx := skill.NewContext()
	var prev *model.Row
	for i := range rows {
		r := rows[i]
		for _, s := range skills {
			s.Process(r, prev, ctx)
		}
		for _, n := range r.Notes {
			k, _ := keymap.Lookup(n.Key)
			ctx.Fingers.Update(k.Finger, r.Time, k.Row, k.Offset, n.Duration)
		}
		prev = &rows[i]
	}

	res := model.StrainResult{
		Metadata: &model.Metadata{
			DrainTime:     (rows[len(rows)-1].Time - rows[0].Time) / 1000,
			FirstNoteTime: rows[0].Time,
		},
	}
	if opts.ReturnPeaks {
		res.Peaks = make(map[string][]float64, len(skills))
	}

	scaled := make([]float64, len(skills))
	for i, s := range skills {
		peaks := s.Finalize()
		weight := skillWeights[i]
		if i == precisionIndex {
			weight *= 1 + odScalePerPoint*(od-constants.DefaultOverallDifficulty)
		}
		scaled[i] = math.Sqrt(skill.AggregatePeaks(peaks)) * weight
		res.Details.Set(s.Name(), scaled[i])
		if opts.ReturnPeaks {
			res.Peaks[s.Name()] = peaks
		}
	}

	res.Total = combine(scaled)
	return res
}

// combine weights the skills by rank so one dominant skill outweighs
// several middling ones.
func combine(values []float64) float64 {
	ranked := make([]float64, len(values))
	copy(ranked, values)
	sort.Sort(sort.Reverse(sort.Float64Slice(ranked)))

	var total float64
	for i, v := range ranked {
		total += v * rankWeights[i]
	}
	return total
}

func emptyResult() model.StrainResult {
	return model.StrainResult{}
}
