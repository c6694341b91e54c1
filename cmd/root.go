// Package cmd is for command line interactions with the harvest application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "harvest",
	Short: `Collect the per-gene sequences produced by an assembly pipeline.
One FASTA file is written per gene or, with --single-sample, per sample`,
	Version: "1.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// readSettings loads the optional settings file named with --settings
// into viper, overriding the defaults.
func readSettings() {
	settings := viper.GetString("settings")
	if settings == "" {
		return
	}

	viper.SetConfigFile(settings)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("failed to read settings file %s: %v", settings, err)
	}
}

func init() {
	cobra.OnInitialize(readSettings)

	RootCmd.PersistentFlags().String("settings", "", "path to a YAML settings file")
	RootCmd.PersistentFlags().IntP("wrap", "w", 60, "column width for wrapped FASTA output")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log per-sample detail while collecting")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("fasta-width", RootCmd.PersistentFlags().Lookup("wrap"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
