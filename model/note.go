package model

type NoteType string

const (
	Tap  NoteType = "tap"
	Hold NoteType = "hold"
)

// Note is a raw chart note as produced by an editor or importer. Either
// Time or StartTime carries the onset, in milliseconds.
type Note struct {
	Time      float64  `json:"time,omitempty"`
	StartTime float64  `json:"startTime,omitempty"`
	EndTime   float64  `json:"endTime,omitempty"`
	Duration  float64  `json:"duration,omitempty"`
	Key       string   `json:"key"`
	Type      NoteType `json:"type"`
}

// At returns the onset of the note.
func (n Note) At() float64 {
	if n.Time != 0 {
		return n.Time
	}
	return n.StartTime
}

// ResolvedDuration prefers EndTime over the Duration field.
func (n Note) ResolvedDuration() float64 {
	if n.EndTime > 0 {
		return n.EndTime - n.At()
	}
	return n.Duration
}

type CanonicalNote struct {
	Time     float64
	Duration float64
	Key      string
	Type     NoteType
}

// Row is every note struck at (approximately) the same instant.
type Row struct {
	Time  float64
	Notes []CanonicalNote
}
