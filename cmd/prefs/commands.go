package prefs

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ValentinKolb/prefsync/cmd/util"
	"github.com/ValentinKolb/prefsync/lib/property/converter"
	"github.com/spf13/cobra"
)

var (
	getCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Gets the value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			value, ok := store.GetString(args[0])
			if !ok {
				fmt.Println("(unset)")
				return nil
			}
			value, err := normalize(typ, value)
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
	setCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Sets the value of a key",
		Long: util.WrapString(`Sets the value of a key. With --type the value is
parsed and stored in the canonical form of that type. Setting the empty
string removes the key.`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			key := args[0]
			if key == "" {
				return errors.New("key must not be empty")
			}
			changed, err := setTyped(typ, key, args[1])
			if err != nil {
				return err
			}
			if err := checkWritten(); err != nil {
				return err
			}
			if changed {
				fmt.Println("set successfully")
			} else {
				fmt.Println("value unchanged")
			}
			return nil
		},
	}
	unsetCmd = &cobra.Command{
		Use:   "unset [key]",
		Short: "Removes a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !store.SetString(args[0], "") {
				fmt.Println("key was not set")
				return nil
			}
			if err := checkWritten(); err != nil {
				return err
			}
			fmt.Println("unset successfully")
			return nil
		},
	}
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Lists all keys and values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := store.Snapshot()
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				fmt.Printf("%s=%s\n", k, values[k])
			}
			return nil
		},
	}
	convertCmd = &cobra.Command{
		Use:   "convert",
		Short: "Rewrites the file with the configured format and compression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := util.GetCodec()
			if err != nil {
				return err
			}
			path := util.GetConfig().PreferencesFile
			if err := c.Write(path, store.Snapshot()); err != nil {
				return err
			}
			fmt.Printf("converted %s to %s (%s)\n", path, c.Serializer.Format(), c.Compression)
			return nil
		},
	}
)

// checkWritten turns a swallowed rewrite failure into a command error
func checkWritten() error {
	if stats := store.Stats(); stats.RewriteErrors > 0 {
		return fmt.Errorf("could not write %s (%s)", util.GetConfig().PreferencesFile, stats)
	}
	return nil
}

// --------------------------------------------------------------------------
// Typed values
// --------------------------------------------------------------------------

// setTyped parses raw as typ and stores its canonical encoding
func setTyped(typ, key, raw string) (bool, error) {
	switch typ {
	case "string", "":
		return store.SetString(key, raw), nil
	case "int":
		return set(key, raw, converter.Int())
	case "float":
		return set(key, raw, converter.Float(converter.DefaultFloatOptions()))
	case "bool":
		return set(key, raw, converter.Bool())
	case "duration":
		return set(key, raw, converter.Duration())
	case "date":
		return set(key, raw, converter.Date(time.DateOnly))
	case "path":
		return set(key, raw, converter.Path())
	default:
		return false, fmt.Errorf("unknown type %q", typ)
	}
}

// set writes the encoded value directly, a typed cell would swallow a zero
// value on an unset key
func set[T any](key, raw string, c converter.IConverter[T]) (bool, error) {
	v, err := c.FromString(raw)
	if err != nil {
		return false, fmt.Errorf("invalid value %q: %w", raw, err)
	}
	encoded, err := c.ToString(v)
	if err != nil {
		return false, fmt.Errorf("cannot encode %q: %w", raw, err)
	}
	return store.SetString(key, encoded), nil
}

// normalize decodes value as typ and returns its canonical form
func normalize(typ, value string) (string, error) {
	switch typ {
	case "string", "":
		return value, nil
	case "int":
		return roundTrip(value, converter.Int())
	case "float":
		return roundTrip(value, converter.Float(converter.DefaultFloatOptions()))
	case "bool":
		return roundTrip(value, converter.Bool())
	case "duration":
		return roundTrip(value, converter.Duration())
	case "date":
		return roundTrip(value, converter.Date(time.DateOnly))
	case "path":
		return roundTrip(value, converter.Path())
	default:
		return "", fmt.Errorf("unknown type %q", typ)
	}
}

func roundTrip[T any](value string, c converter.IConverter[T]) (string, error) {
	v, err := c.FromString(value)
	if err != nil {
		return "", fmt.Errorf("stored value %q is not valid: %w", value, err)
	}
	return c.ToString(v)
}
