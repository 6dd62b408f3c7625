// Package sample builds synthetic charts with a known shape.
package sample

import (
	"github.com/jsphweid/stardex/keymap"
	"github.com/jsphweid/stardex/model"
)

func interval(nps float64) float64 {
	return 1000 / nps
}

// Stream cycles through keys, one tap per beat.
func Stream(keys []string, nps float64, count int) []model.Note {
	step := interval(nps)
	res := make([]model.Note, 0, count)
	for i := 0; i < count; i++ {
		res = append(res, model.Note{
			Time: float64(i) * step,
			Key:  keys[i%len(keys)],
			Type: model.Tap,
		})
	}
	return res
}

// Jack repeats a single key.
func Jack(key string, nps float64, count int) []model.Note {
	return Stream([]string{key}, nps, count)
}

// Chord strikes every key together on each beat.
func Chord(keys []string, nps float64, count int) []model.Note {
	step := interval(nps)
	res := make([]model.Note, 0, count*len(keys))
	for i := 0; i < count; i++ {
		for _, k := range keys {
			res = append(res, model.Note{Time: float64(i) * step, Key: k, Type: model.Tap})
		}
	}
	return res
}

// Roll runs across the default lanes left to right and back.
func Roll(nps float64, count int) []model.Note {
	lanes := keymap.Lanes
	var path []string
	path = append(path, lanes...)
	for i := len(lanes) - 2; i > 0; i-- {
		path = append(path, lanes[i])
	}
	return Stream(path, nps, count)
}

func Hold(key string, start, length float64) model.Note {
	return model.Note{StartTime: start, EndTime: start + length, Key: key, Type: model.Hold}
}

// Shift offsets every note by ms.
func Shift(notes []model.Note, ms float64) []model.Note {
	res := make([]model.Note, len(notes))
	for i, n := range notes {
		if n.Time != 0 || n.StartTime == 0 {
			n.Time += ms
		}
		if n.StartTime != 0 {
			n.StartTime += ms
		}
		if n.EndTime != 0 {
			n.EndTime += ms
		}
		res[i] = n
	}
	return res
}

func Chart(id string, od float64, notes []model.Note) model.Chart {
	return model.Chart{ID: id, Title: id, OverallDifficulty: od, Notes: notes}
}
