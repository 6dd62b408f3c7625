package midi

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/jsphweid/stardex/model"
	"github.com/stretchr/testify/assert"
)

func TestLaneKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("a", LaneKey(0))
	assert.Equal("j", LaneKey(60))
	assert.Equal("l", LaneKey(62))
}

func TestEventsToNotes(t *testing.T) {
	notes := eventsToNotes([]noteEvent{
		{ms: 200, pitch: 60, off: true},
		{ms: 0, pitch: 60},
		{ms: 100, pitch: 62},
		{ms: 120, pitch: 62, off: true},
		{ms: 300, pitch: 64},
		{ms: 400, pitch: 64},
		{ms: 450, pitch: 64, off: true},
		{ms: 500, pitch: 65},
	})

	assert.Equal(t, []model.Note{
		{StartTime: 0, EndTime: 200, Key: "j", Type: model.Hold},
		{StartTime: 100, Key: "l", Type: model.Tap},
		{StartTime: 300, EndTime: 400, Key: "s", Type: model.Hold},
		{StartTime: 400, EndTime: 450, Key: "s", Type: model.Hold},
		{StartTime: 500, Key: "d", Type: model.Tap},
	}, notes)
}

func TestEndBeforeStartAtSameTime(t *testing.T) {
	notes := eventsToNotes([]noteEvent{
		{ms: 0, pitch: 60},
		{ms: 100, pitch: 60},
		{ms: 100, pitch: 60, off: true},
		{ms: 130, pitch: 60, off: true},
	})

	assert := assert.New(t)
	assert.Len(notes, 2)
	assert.Equal(model.Hold, notes[0].Type)
	assert.Equal(model.Tap, notes[1].Type)
}

func TestRecorderConcurrentFeed(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func(p uint8) {
			defer wg.Done()
			r.NoteOn(p, float64(p)*10)
			r.NoteOff(p, float64(p)*10+5)
		}(uint8(p))
	}
	wg.Wait()

	assert := assert.New(t)
	assert.Equal(8, r.Len())
	notes := r.Notes()
	for i := 1; i < len(notes); i++ {
		assert.LessOrEqual(notes[i-1].At(), notes[i].At())
	}
	r.Reset()
	assert.Equal(0, r.Len())
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}
