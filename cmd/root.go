package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stardex",
	Short: "Rates keyboard rhythm charts",
	Long: `stardex rates player-made keyboard rhythm charts. Each chart gets a
multi-skill "rework" rating alongside the legacy "official" rating.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
