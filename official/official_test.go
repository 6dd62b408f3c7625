package official

import (
	"math"
	"testing"

	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/sample"
	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Calculate(Input{Notes: []model.Note{}, OverallDifficulty: 5}))
	assert.Equal(t, 0.0, Calculate(Input{}))
}

func TestSingleNote(t *testing.T) {
	got := Calculate(Input{Notes: []model.Note{{Time: 500, Key: "a", Type: model.Tap}}, OverallDifficulty: 5})
	// one second lead-in: strain 1, ema alpha 1-2^-4
	alpha := 1 - math.Pow(2, -4)
	want := alpha * (1 + 0.25*math.Log1p(1)/math.Log1p(500))
	assert.InDelta(t, want, got, 1e-12)
}

func TestBuildEventsDedupesAndAddsHoldEnds(t *testing.T) {
	events := buildEvents([]model.Note{
		{Time: 100, Key: "A", Type: model.Tap},
		{Time: 100, Key: "a", Type: model.Tap},
		{Time: 100, Key: "s", Type: model.Tap},
		sample.Hold("d", 0, 300),
	})

	assert := assert.New(t)
	assert.Len(events, 3)
	assert.Equal(0.0, events[0].time)
	assert.Equal(map[string]bool{"a": true, "s": true}, events[1].keys)
	assert.Equal(300.0, events[2].time)
}

func TestBuildEventsHoldFromDuration(t *testing.T) {
	withEnd := buildEvents([]model.Note{{StartTime: 100, EndTime: 400, Key: "d", Type: model.Hold}})
	withDuration := buildEvents([]model.Note{{StartTime: 100, Duration: 300, Key: "d", Type: model.Hold}})

	assert := assert.New(t)
	assert.Len(withDuration, 2)
	assert.Equal(withEnd, withDuration)
	assert.Equal(400.0, withDuration[1].time)
}

func TestReusePenalty(t *testing.T) {
	events := buildEvents(sample.Jack("f", 4, 8))
	assert := assert.New(t)
	assert.Equal(0.0, reuse(events, 0))
	assert.InDelta(0.55, reuse(events, 1), 1e-12)

	var full float64
	for d := 1; d <= 6; d++ {
		full += 0.55 * math.Exp(-0.7*float64(d-1))
	}
	assert.InDelta(full, reuse(events, 7), 1e-12)
}

func TestJackIsEasierThanAlternation(t *testing.T) {
	jack := Calculate(Input{Notes: sample.Jack("f", 8, 200), OverallDifficulty: 5})
	alt := Calculate(Input{Notes: sample.Stream([]string{"f", "j"}, 8, 200), OverallDifficulty: 5})
	assert.Greater(t, alt, jack)
}

func TestChordsAndODRaiseRating(t *testing.T) {
	single := Calculate(Input{Notes: sample.Stream([]string{"a", "s", "d", "f"}, 6, 100), OverallDifficulty: 5})
	chords := Calculate(Input{Notes: sample.Chord([]string{"a", "f"}, 6, 100), OverallDifficulty: 5})
	hard := Calculate(Input{Notes: sample.Stream([]string{"a", "s", "d", "f"}, 6, 100), OverallDifficulty: 10})

	assert := assert.New(t)
	assert.Greater(chords, 0.0)
	assert.InDelta(single*1.4, hard, 1e-9)
}

func TestTailMean(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = float64(i)
	}
	assert.InDelta(t, 18.5, tailMean(values), 1e-12)
	assert.Equal(t, 3.0, tailMean([]float64{3}))
}

func TestLengthBonusCaps(t *testing.T) {
	assert.InDelta(t, 1.25, lengthBonus(500), 1e-12)
	assert.InDelta(t, 1.25, lengthBonus(5000), 1e-12)
	assert.Less(t, lengthBonus(50), 1.25)
}
