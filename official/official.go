// Package official implements the legacy single-formula rating kept for
// side by side comparison with the skill based rating.
package official

import (
	"math"
	"sort"
	"strings"

	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/util"
)

const (
	minEventGap    = 0.04
	speedExp       = 0.85
	reuseWindow    = 6
	reusePenalty   = 0.55
	reuseFalloff   = 0.7
	minReuseFactor = 0.2
	chordBonus     = 1.6
	chordFalloff   = 0.6
	halfLife       = 0.25
	tailFraction   = 0.10
	lengthCap      = 500
	maxLengthBonus = 0.25
	odBonus        = 0.08
	baseOD         = 5.0
	// Gap assumed before the first event.
	leadInSeconds = 1.0
)

type Input struct {
	Notes             []model.Note
	OverallDifficulty float64
}

type event struct {
	time float64
	keys map[string]bool
}

// Calculate returns 0 for a chart with no notes.
func Calculate(in Input) float64 {
	events := buildEvents(in.Notes)
	if len(events) == 0 {
		return 0
	}

	emas := make([]float64, 0, len(events))
	var ema float64
	prevT := events[0].time - leadInSeconds*1000
	for i, e := range events {
		dt := math.Max(minEventGap, (e.time-prevT)/1000)
		prevT = e.time

		strain := math.Pow(1/dt, speedExp)
		strain *= math.Max(minReuseFactor, 1-reuse(events, i))
		strain *= 1 + chordBonus*(1-math.Exp(-chordFalloff*float64(len(e.keys)-1)))

		alpha := 1 - math.Pow(2, -dt/halfLife)
		ema += alpha * (strain - ema)
		emas = append(emas, ema)
	}

	value := tailMean(emas)
	value *= lengthBonus(len(events))
	value *= 1 + odBonus*(in.OverallDifficulty-baseOD)
	return value
}

// buildEvents merges note starts and hold ends into one event per
// distinct time.
func buildEvents(notes []model.Note) []event {
	byTime := make(map[float64]map[string]bool)
	add := func(t float64, key string) {
		keys, ok := byTime[t]
		if !ok {
			keys = make(map[string]bool)
			byTime[t] = keys
		}
		keys[key] = true
	}

	for _, n := range notes {
		key := strings.ToLower(n.Key)
		add(n.At(), key)
		if d := n.ResolvedDuration(); n.Type == model.Hold && d > 0 {
			add(n.At()+d, key)
		}
	}

	times := util.SortedKeys(byTime)
	res := make([]event, 0, len(times))
	for _, t := range times {
		res = append(res, event{time: t, keys: byTime[t]})
	}
	return res
}

// reuse sums the penalty of every recent event sharing a key with event i.
func reuse(events []event, i int) float64 {
	var total float64
	for dist := 1; dist <= reuseWindow && i-dist >= 0; dist++ {
		prior := events[i-dist]
		for k := range events[i].keys {
			if prior.keys[k] {
				total += reusePenalty * math.Exp(-reuseFalloff*float64(dist-1))
				break
			}
		}
	}
	return total
}

func tailMean(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	n := int(math.Ceil(float64(len(sorted)) * tailFraction))
	if n < 1 {
		n = 1
	}
	return util.Sum(sorted[:n]) / float64(n)
}

func lengthBonus(count int) float64 {
	ratio := math.Log1p(float64(min(count, lengthCap))) / math.Log1p(lengthCap)
	return 1 + maxLengthBonus*ratio
}
