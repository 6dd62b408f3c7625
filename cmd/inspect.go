package cmd

import (
	"fmt"

	"github.com/jsphweid/stardex/file"
	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/skill"
	"github.com/jsphweid/stardex/strain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chart>",
	Short: "Inspects a chart's skill breakdown",
	Long:  `Prints every skill's scaled value, aggregated strain and hardest section.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chart, err := file.LoadChart(args[0])
		if err != nil {
			return err
		}
		inspect(chart)
		return nil
	},
}

func inspect(chart model.Chart) {
	res := strain.Calculate(chart.Notes, chart.OverallDifficulty, true)
	fmt.Printf("title: %v\n", chart.Title)
	fmt.Printf("notes: %v\n", len(chart.Notes))
	fmt.Printf("stars: %.3f\n", res.Total)
	if res.Metadata != nil {
		fmt.Printf("drain: %.1fs\n", res.Metadata.DrainTime)
	}

	values := res.Details.Values()
	for i, name := range model.SkillNames {
		peaks := res.Peaks[name]
		var hardest, at float64
		for j, p := range peaks {
			if p > hardest {
				hardest = p
				at = float64(j) * 0.4
			}
		}
		fmt.Printf("%-6s scaled %7.3f  raw %9.3f  peak %8.3f at +%.1fs\n",
			name, values[i], skill.AggregatePeaks(peaks), hardest, at)
	}
}
