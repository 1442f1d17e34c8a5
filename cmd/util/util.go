package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ValentinKolb/prefsync/lib/codec"
	"github.com/ValentinKolb/prefsync/lib/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// EnvPrefix is the prefix of all environment variables read by prefsync
	EnvPrefix = "prefsync"
)

var log = common.GetLogger(common.LoggerCLI)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// DefaultFile returns the path of name inside the prefsync directory in the
// user's home. It falls back to the working directory if there is no home.
func DefaultFile(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".prefsync", name)
	}
	return filepath.Join(home, ".prefsync", name)
}

// SetupFileFlag adds the --file flag of a command group and binds it to key,
// so it can also be set with PREFSYNC_<KEY>
func SetupFileFlag(cmd *cobra.Command, key, defaultName, description string) {
	cmd.PersistentFlags().String("file", DefaultFile(defaultName), WrapString(description))
	_ = viper.BindPFlag(key, cmd.PersistentFlags().Lookup("file"))
}

// InitConfig loads .env files and prepares viper to read PREFSYNC_* variables
func InitConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// BindCommandFlags binds a command's flags to viper and applies the log level
func BindCommandFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := common.InitLoggers(viper.GetString("log-level")); err != nil {
		return err
	}
	log.Debugf("configuration:%s", GetConfig())
	return nil
}

// GetConfig reads the configuration from viper
func GetConfig() *common.Config {
	conf := &common.Config{
		PreferencesFile: viper.GetString("preferences-file"),
		RecordsFile:     viper.GetString("records-file"),
		Format:          viper.GetString("format"),
		Compression:     viper.GetString("compression"),
		LogLevel:        viper.GetString("log-level"),
	}
	return conf
}

// GetCodec creates the preference file codec based on configuration
func GetCodec() (*codec.Codec, error) {
	c, err := codec.New(viper.GetString("format"), viper.GetString("compression"))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}
