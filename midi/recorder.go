package midi

import (
	"sort"
	"sync"

	"github.com/jsphweid/stardex/model"
)

// Recorder collects notes from a stream of note on/off messages. It is
// safe to feed from a MIDI driver callback while another goroutine reads.
type Recorder struct {
	mu    sync.Mutex
	open  map[uint8]float64
	notes []model.Note
}

func NewRecorder() *Recorder {
	return &Recorder{open: make(map[uint8]float64)}
}

func (r *Recorder) NoteOn(pitch uint8, ms float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if start, ok := r.open[pitch]; ok {
		r.notes = append(r.notes, noteFor(pitch, start, ms))
	}
	r.open[pitch] = ms
}

func (r *Recorder) NoteOff(pitch uint8, ms float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	start, ok := r.open[pitch]
	if !ok {
		return
	}
	delete(r.open, pitch)
	r.notes = append(r.notes, noteFor(pitch, start, ms))
}

// Notes returns finished notes plus still-held pitches as taps, by onset.
func (r *Recorder) Notes() []model.Note {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]model.Note, len(r.notes), len(r.notes)+len(r.open))
	copy(res, r.notes)
	pitches := make([]int, 0, len(r.open))
	for p := range r.open {
		pitches = append(pitches, int(p))
	}
	sort.Ints(pitches)
	for _, p := range pitches {
		res = append(res, noteFor(uint8(p), r.open[uint8(p)], r.open[uint8(p)]))
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].At() < res[j].At()
	})
	return res
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes) + len(r.open)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open = make(map[uint8]float64)
	r.notes = nil
}
