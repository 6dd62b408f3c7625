package cmd

import (
	"fmt"

	"github.com/jsphweid/stardex/keymap"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Prints the physical key table",
	Run: func(cmd *cobra.Command, args []string) {
		for _, key := range keymap.Keys() {
			k, _ := keymap.Lookup(key)
			f := keymap.FingerInfo(k.Finger)
			fmt.Printf("%v  finger %v (%v, strength %.2f)  row %v  offset %.2f\n",
				key, k.Finger, f.Hand, f.Strength, k.Row, k.Offset)
		}
	},
}
