package cmd

import (
	"encoding/json"
	"os"

	"github.com/jsphweid/stardex/file"
	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/official"
	"github.com/jsphweid/stardex/strain"
	"github.com/spf13/cobra"
)

var (
	rateOD    float64
	rateRate  float64
	ratePeaks bool
)

func init() {
	rateCmd.Flags().Float64Var(&rateOD, "od", -1, "overall difficulty (defaults to the chart's)")
	rateCmd.Flags().Float64Var(&rateRate, "rate", 1, "playback rate")
	rateCmd.Flags().BoolVar(&ratePeaks, "peaks", false, "include per-skill strain peaks")
	rootCmd.AddCommand(rateCmd)
}

var rateCmd = &cobra.Command{
	Use:   "rate <chart>",
	Short: "Rates a single chart",
	Long:  `Rates a single .json or .mid chart and prints the result as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chart, err := file.LoadChart(args[0])
		if err != nil {
			return err
		}
		if rateOD >= 0 {
			chart.OverallDifficulty = rateOD
		}

		res := strain.CalculateWithOptions(chart.Notes, strain.Options{
			OverallDifficulty: chart.OverallDifficulty,
			Rate:              rateRate,
			ReturnPeaks:       ratePeaks,
		})
		out := model.RateResponse{
			Stars:         res.Total,
			StarsOfficial: official.Calculate(official.Input{Notes: chart.Notes, OverallDifficulty: chart.OverallDifficulty}),
			Result:        res,
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}
