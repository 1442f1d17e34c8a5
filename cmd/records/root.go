package records

import (
	"fmt"

	"github.com/ValentinKolb/prefsync/cmd/util"
	"github.com/ValentinKolb/prefsync/lib/codec"
	"github.com/ValentinKolb/prefsync/lib/records"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	store *records.Store[*Entry]

	// RecordCommands represents the records command group
	RecordCommands = &cobra.Command{
		Use:               "records",
		Short:             "Read and edit a record file",
		PersistentPreRunE: setupStore,
	}
)

func init() {
	util.SetupFileFlag(RecordCommands, "records-file", "records.xml", "record file to operate on")

	// Add subcommands
	RecordCommands.AddCommand(listCmd)
	RecordCommands.AddCommand(addCmd)
	RecordCommands.AddCommand(doneCmd)
	RecordCommands.AddCommand(renameCmd)
	RecordCommands.AddCommand(moveCmd)
	RecordCommands.AddCommand(removeCmd)

	addCmd.Flags().String("due", "", util.WrapString("due date of the entry (2006-01-02)"))
}

// setupStore loads the record file. Record files are plain xml unless
// --format or --compression are given explicitly.
func setupStore(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	opts, err := storeOptions()
	if err != nil {
		return err
	}

	store, err = records.LoadObserved(util.GetConfig().RecordsFile, NewEntry, opts...)
	return err
}

func storeOptions() ([]records.Option, error) {
	var opts []records.Option
	if viper.IsSet("format") {
		f, err := codec.ParseFormat(viper.GetString("format"))
		if err != nil {
			return nil, err
		}
		s, err := records.NewDocumentSerializer(f)
		if err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		opts = append(opts, records.WithSerializer(s))
	}
	if viper.IsSet("compression") {
		c, err := codec.ParseCompression(viper.GetString("compression"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, records.WithCompression(c))
	}
	return opts, nil
}
