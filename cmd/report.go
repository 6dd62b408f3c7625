package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/stardex/constants"
	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [ratings.json]",
	Short: "Summarizes a ratings artifact",
	Long:  `Summarizes a ratings artifact (OUT_PATH/ratings.json by default).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(constants.GetOutDir(), constants.RatingsFilename)
		if len(args) == 1 {
			path = args[0]
		}
		ratings, err := util.ReadJSON[[]model.ChartRating](path)
		if err != nil {
			return err
		}
		printReport(summarize(ratings))
		return nil
	},
}

type ratingsReport struct {
	numCharts        int
	meanStars        float64
	maxStars         float64
	hardest          string
	meanOfficial     float64
	strongestByCount map[string]int
}

func summarize(ratings []model.ChartRating) ratingsReport {
	report := ratingsReport{numCharts: len(ratings), strongestByCount: make(map[string]int)}
	if len(ratings) == 0 {
		return report
	}

	var stars, officials []float64
	for _, r := range ratings {
		stars = append(stars, r.Stars)
		officials = append(officials, r.StarsOfficial)
		if r.Stars > report.maxStars {
			report.maxStars = r.Stars
			report.hardest = r.Title
		}

		values := r.Stats.Values()
		best := 0
		for i, v := range values {
			if v > values[best] {
				best = i
			}
		}
		if values[best] > 0 {
			report.strongestByCount[model.SkillNames[best]]++
		}
	}
	report.meanStars = util.Sum(stars) / float64(len(stars))
	report.meanOfficial = util.Sum(officials) / float64(len(officials))
	return report
}

func printReport(report ratingsReport) {
	fmt.Printf("numCharts: %v\n", report.numCharts)
	fmt.Printf("meanStars: %.3f\n", report.meanStars)
	fmt.Printf("meanOfficial: %.3f\n", report.meanOfficial)
	fmt.Printf("maxStars: %.3f (%v)\n", report.maxStars, report.hardest)
	for _, name := range util.SortedKeys(report.strongestByCount) {
		fmt.Printf("strongest skill %v: %v charts\n", name, report.strongestByCount[name])
	}
}
