package file

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/stardex/constants"
	"github.com/jsphweid/stardex/midi"
	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/util"
	"github.com/pkg/errors"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported chart format")
	ErrNoNotes           = errors.New("chart has no notes")
)

func isChart(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".mid", ".midi":
		return true
	}
	return false
}

// GatherChartPaths walks dir for chart files. maxNum 0 means no limit.
func GatherChartPaths(dir string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isChart(s) {
			return nil
		}
		if maxNum == 0 || len(res) < maxNum {
			res = append(res, s)
		}
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, errors.Wrapf(err, "error walking %s", dir)
	}
	return res, nil
}

// chartFile tells a missing overallDifficulty apart from an explicit 0.
type chartFile struct {
	model.Chart
	OverallDifficulty *float64 `json:"overallDifficulty"`
}

// LoadChart reads a JSON chart or imports a MIDI file.
func LoadChart(path string) (model.Chart, error) {
	var chart model.Chart
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		c, err := util.ReadJSON[chartFile](path)
		if err != nil {
			return chart, err
		}
		chart = c.Chart
		chart.OverallDifficulty = constants.DefaultOverallDifficulty
		if c.OverallDifficulty != nil {
			chart.OverallDifficulty = *c.OverallDifficulty
		}
	case ".mid", ".midi":
		s, err := midi.ReadMidiFile(path)
		if err != nil {
			return chart, err
		}
		chart.Notes = midi.ToNotes(s)
		chart.OverallDifficulty = constants.DefaultOverallDifficulty
	default:
		return chart, errors.Wrap(ErrUnsupportedFormat, path)
	}

	if len(chart.Notes) == 0 {
		return chart, errors.Wrap(ErrNoNotes, path)
	}
	if chart.Title == "" {
		base := filepath.Base(path)
		chart.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	chart.Source = path
	return chart, nil
}

// AssignIDs gives every chart without an id a fresh one.
func AssignIDs(charts []model.Chart) {
	for i := range charts {
		if charts[i].ID == "" {
			charts[i].ID = uuid.NewString()
		}
	}
}
