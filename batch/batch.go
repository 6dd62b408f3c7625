// Package batch rates many charts in parallel and builds the dashboard
// artifact.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jsphweid/stardex/file"
	"github.com/jsphweid/stardex/logger"
	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/official"
	"github.com/jsphweid/stardex/strain"
	"github.com/jsphweid/stardex/util"
	"golang.org/x/sync/errgroup"
)

type MetadataSource interface {
	GetChartMetadatas(ids []string) (map[string]model.ChartMetadata, error)
}

type Options struct {
	// Workers defaults to runtime.NumCPU().
	Workers  int
	Metadata MetadataSource
	// Rate is the playback rate every chart is rated at. Zero means 1.0.
	Rate float64
}

// Rate scores one chart with both formulas.
func Rate(chart model.Chart, rate float64) model.ChartRating {
	opts := strain.Options{OverallDifficulty: chart.OverallDifficulty, Rate: rate}
	res := strain.CalculateWithOptions(chart.Notes, opts)

	r := model.ChartRating{
		ID:            chart.ID,
		Title:         chart.Title,
		Artist:        chart.Artist,
		Stars:         res.Total,
		StarsOfficial: official.Calculate(official.Input{Notes: chart.Notes, OverallDifficulty: chart.OverallDifficulty}),
		Stats:         res.Details,
		NoteCount:     len(chart.Notes),
	}
	if res.Metadata != nil {
		r.DrainTime = res.Metadata.DrainTime
	}
	return r
}

// Run rates charts concurrently. Results keep the order of charts.
func Run(ctx context.Context, charts []model.Chart, opts Options) ([]model.ChartRating, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	res := make([]model.ChartRating, len(charts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range charts {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res[i] = Rate(charts[i], opts.Rate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Metadata != nil {
		enrich(ctx, res, opts.Metadata)
	}
	return res, nil
}

// enrich fills titles from the metadata store. Lookup failures only log.
func enrich(ctx context.Context, ratings []model.ChartRating, src MetadataSource) {
	ids := make([]string, len(ratings))
	for i, r := range ratings {
		ids[i] = r.ID
	}
	metadatas, err := src.GetChartMetadatas(ids)
	if err != nil {
		logger.Errorf(ctx, "metadata lookup failed: %v", err)
	}
	for i := range ratings {
		m, ok := metadatas[ratings[i].ID]
		if !ok {
			continue
		}
		if m.Title != "" {
			ratings[i].Title = m.Title
		}
		if m.Artist != "" {
			ratings[i].Artist = m.Artist
		}
	}
}

// LoadAll loads every path, skipping charts that fail to load.
func LoadAll(ctx context.Context, paths []string) ([]model.Chart, error) {
	var charts []model.Chart
	var errs MultiError
	for i, path := range paths {
		fmt.Printf("Loading %v of %v charts\n", i+1, len(paths))
		chart, err := file.LoadChart(path)
		if err != nil {
			logger.Errorf(logger.WithValue(ctx, "path", path), "skipping chart: %v", err)
			errs.Push(err)
			continue
		}
		charts = append(charts, chart)
	}
	file.AssignIDs(charts)
	return charts, errs.ErrOrNil()
}

// ProcessDir rates every chart under dir and writes the artifact to out.
func ProcessDir(ctx context.Context, dir, out string, maxNum int, opts Options) ([]model.ChartRating, error) {
	paths, err := file.GatherChartPaths(dir, maxNum)
	if err != nil {
		return nil, err
	}

	charts, loadErr := LoadAll(ctx, paths)
	ratings, err := Run(ctx, charts, opts)
	if err != nil {
		return nil, err
	}
	if err := util.WriteJSON(out, ratings); err != nil {
		return nil, err
	}

	ctx = logger.WithValue(ctx, "charts", len(ratings))
	ctx = logger.WithValue(ctx, "out", out)
	logger.Infof(ctx, "wrote ratings")
	return ratings, loadErr
}
