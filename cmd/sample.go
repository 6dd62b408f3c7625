package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/stardex/keymap"
	"github.com/jsphweid/stardex/model"
	"github.com/jsphweid/stardex/sample"
	"github.com/jsphweid/stardex/util"
	"github.com/spf13/cobra"
)

var (
	sampleNps   float64
	sampleCount int
	sampleKeys  string
	sampleOD    float64
)

func init() {
	sampleCmd.Flags().Float64Var(&sampleNps, "nps", 8, "notes (or chords) per second")
	sampleCmd.Flags().IntVar(&sampleCount, "count", 200, "number of beats")
	sampleCmd.Flags().StringVar(&sampleKeys, "keys", strings.Join(keymap.Lanes, ""), "keys to use")
	sampleCmd.Flags().Float64Var(&sampleOD, "od", 5, "overall difficulty")
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:       "sample <stream|jack|chord|roll> <out.json>",
	Short:     "Writes a synthetic chart",
	Long:      `Writes a synthetic chart of a single pattern, for calibrating ratings.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"stream", "jack", "chord", "roll"},
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := sampleNotes(args[0])
		if err != nil {
			return err
		}
		return util.WriteJSON(args[1], sample.Chart(args[0], sampleOD, notes))
	},
}

func sampleNotes(kind string) ([]model.Note, error) {
	keys := strings.Split(sampleKeys, "")
	if len(keys) == 0 {
		return nil, fmt.Errorf("no keys given")
	}
	switch kind {
	case "stream":
		return sample.Stream(keys, sampleNps, sampleCount), nil
	case "jack":
		return sample.Jack(keys[0], sampleNps, sampleCount), nil
	case "chord":
		return sample.Chord(keys, sampleNps, sampleCount), nil
	case "roll":
		return sample.Roll(sampleNps, sampleCount), nil
	}
	return nil, fmt.Errorf("unknown sample kind %q", kind)
}
