// Package midi turns Standard MIDI Files and live MIDI input into chart
// notes. Pitches are folded onto the default lanes.
package midi

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/stardex/constants"
	"github.com/jsphweid/stardex/keymap"
	"github.com/jsphweid/stardex/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNoTracks = errors.New("midi file has no tracks")

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// smf panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("parsing midi file %s: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	if len(res.Tracks) == 0 {
		return nil, ErrNoTracks
	}
	return res, nil
}

// LaneKey folds a MIDI pitch onto one of the default lanes.
func LaneKey(pitch uint8) string {
	return keymap.Lanes[int(pitch)%len(keymap.Lanes)]
}

type noteEvent struct {
	ms    float64
	pitch uint8
	off   bool
}

// ToNotes flattens every track of s into chart notes.
func ToNotes(s *smf.SMF) []model.Note {
	var events []noteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, ev := range track {
			absTicks += int64(ev.Delta)
			var channel, key, velocity uint8
			ms := float64(s.TimeAt(absTicks)) / 1000
			switch {
			case ev.Message.GetNoteOn(&channel, &key, &velocity):
				// note on with zero velocity is a release
				events = append(events, noteEvent{ms: ms, pitch: key, off: velocity == 0})
			case ev.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, noteEvent{ms: ms, pitch: key, off: true})
			}
		}
	}
	return eventsToNotes(events)
}

// eventsToNotes pairs note starts with their ends. Ends are ordered before
// starts at the same time so a re-struck pitch closes its previous note first.
func eventsToNotes(events []noteEvent) []model.Note {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].ms != events[j].ms {
			return events[i].ms < events[j].ms
		}
		return events[i].off && !events[j].off
	})

	r := NewRecorder()
	for _, ev := range events {
		if ev.off {
			r.NoteOff(ev.pitch, ev.ms)
		} else {
			r.NoteOn(ev.pitch, ev.ms)
		}
	}
	return r.Notes()
}

func noteFor(pitch uint8, start, end float64) model.Note {
	n := model.Note{StartTime: start, Key: LaneKey(pitch), Type: model.Tap}
	if end-start >= constants.MinHoldMs {
		n.Type = model.Hold
		n.EndTime = end
	}
	return n
}
