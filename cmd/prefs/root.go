package prefs

import (
	"github.com/ValentinKolb/prefsync/cmd/util"
	"github.com/ValentinKolb/prefsync/lib/prefs"
	"github.com/spf13/cobra"
)

var (
	store prefs.IPreferences

	// PreferenceCommands represents the preference command group
	PreferenceCommands = &cobra.Command{
		Use:               "prefs",
		Short:             "Read and edit a preference file",
		PersistentPreRunE: setupPreferences,
	}
)

func init() {
	util.SetupFileFlag(PreferenceCommands, "preferences-file", "preferences", "preference file to operate on")

	// Add subcommands
	PreferenceCommands.AddCommand(getCmd)
	PreferenceCommands.AddCommand(setCmd)
	PreferenceCommands.AddCommand(unsetCmd)
	PreferenceCommands.AddCommand(listCmd)
	PreferenceCommands.AddCommand(convertCmd)

	for _, c := range []*cobra.Command{getCmd, setCmd} {
		c.Flags().String("type", "string", util.WrapString("type of the value (string, int, float, bool, duration, date, path)"))
	}
}

// setupPreferences loads the preference file
func setupPreferences(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	c, err := util.GetCodec()
	if err != nil {
		return err
	}

	store, err = prefs.Build(util.GetConfig().PreferencesFile, c)
	return err
}
