package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/prefsync/cmd/prefs"
	"github.com/ValentinKolb/prefsync/cmd/records"
	"github.com/ValentinKolb/prefsync/cmd/util"
	"github.com/ValentinKolb/prefsync/lib/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "prefsync",
		Short: "file backed reactive preferences and records",
		Long: fmt.Sprintf(`prefsync (v%s)

Inspect and edit the preference and record files of prefsync
applications. Every change is written back to the file at once.`, Version),
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("metrics") {
				common.WritePrometheus(os.Stderr)
			}
		},
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of prefsync",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("prefsync v%s\n", Version)
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(prefs.PreferenceCommands)
	RootCmd.AddCommand(records.RecordCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "format"
	RootCmd.PersistentFlags().String(key, "json", util.WrapString("format used when writing preference files (json, xml, yaml). reading detects the format"))
	key = "compression"
	RootCmd.PersistentFlags().String(key, "gzip", util.WrapString("compression used when writing files (none, gzip, zstd, lz4). reading detects the compression"))
	key = "log-level"
	RootCmd.PersistentFlags().String(key, "warn", util.WrapString("log level (debug, info, warn, error)"))
	key = "metrics"
	RootCmd.PersistentFlags().Bool(key, false, util.WrapString("print metrics in the prometheus text format to stderr after the command"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
