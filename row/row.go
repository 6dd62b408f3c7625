package row

import (
	"sort"
	"strings"

	"github.com/jsphweid/stardex/constants"
	"github.com/jsphweid/stardex/keymap"
	"github.com/jsphweid/stardex/model"
)

func Canonicalize(notes []model.Note) []model.CanonicalNote {
	res := make([]model.CanonicalNote, 0, len(notes))
	for _, n := range notes {
		c := model.CanonicalNote{
			Time: n.At(),
			Key:  strings.ToLower(n.Key),
			Type: n.Type,
		}
		if c.Type == model.Hold {
			c.Duration = n.ResolvedDuration()
			if c.Duration < constants.MinHoldMs {
				c.Type = model.Tap
				c.Duration = 0
			}
		}
		res = append(res, c)
	}
	return res
}

// Build groups notes into rows. A note joins the current row when it lands
// within the chord tolerance of the row's first note.
func Build(notes []model.CanonicalNote) []model.Row {
	if len(notes) == 0 {
		return nil
	}

	sorted := make([]model.CanonicalNote, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	var rows []model.Row
	for _, n := range sorted {
		if len(rows) > 0 {
			last := &rows[len(rows)-1]
			if n.Time-last.Time < constants.ChordToleranceMs {
				last.Notes = append(last.Notes, n)
				continue
			}
		}
		rows = append(rows, model.Row{Time: n.Time, Notes: []model.CanonicalNote{n}})
	}
	return rows
}

// FilterKeys drops notes on unmapped keys, then rows left empty. A chart
// made of a single row keeps it even when empty.
func FilterKeys(rows []model.Row) []model.Row {
	res := make([]model.Row, 0, len(rows))
	for _, r := range rows {
		var valid []model.CanonicalNote
		for _, n := range r.Notes {
			if keymap.Has(n.Key) {
				valid = append(valid, n)
			}
		}
		if len(valid) == 0 && len(rows) > 1 {
			continue
		}
		res = append(res, model.Row{Time: r.Time, Notes: valid})
	}
	return res
}

// FromNotes runs the whole raw-note to row pipeline.
func FromNotes(notes []model.Note) []model.Row {
	return FilterKeys(Build(Canonicalize(notes)))
}
