package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jsphweid/stardex/batch"
	"github.com/jsphweid/stardex/constants"
	"github.com/jsphweid/stardex/db"
	"github.com/jsphweid/stardex/logger"
	"github.com/spf13/cobra"
)

var (
	batchWorkers int
	batchRate    float64
)

func init() {
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "parallel workers (defaults to the CPU count)")
	batchCmd.Flags().Float64Var(&batchRate, "rate", 1, "playback rate")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch [maxNum]",
	Short: "Rates every chart under CHART_PATH",
	Long: `Rates every chart under CHART_PATH and writes OUT_PATH/ratings.json.
Titles come from the DynamoDB table at METADATA_ENDPOINT when it is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			maxNum = n
		}
		return runBatch(cmd.Context(), maxNum)
	},
}

func runBatch(ctx context.Context, maxNum int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := batch.Options{Workers: batchWorkers, Rate: batchRate}
	if endpoint := constants.GetMetadataEndpoint(); endpoint != "" {
		store, err := db.NewStore(endpoint, constants.GetMetadataRegion(), constants.GetMetadataTable())
		if err != nil {
			return err
		}
		opts.Metadata = store
	}

	out := filepath.Join(constants.GetOutDir(), constants.RatingsFilename)
	ratings, err := batch.ProcessDir(ctx, constants.GetChartDir(), out, maxNum, opts)
	if multi, ok := err.(batch.MultiError); ok {
		logger.Errorf(ctx, "%d charts skipped", len(multi))
		err = nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Rated %v charts into %v\n", len(ratings), out)
	return nil
}
