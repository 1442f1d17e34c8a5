package common

import (
	"fmt"
	"strings"
)

// --------------------------------------------------------------------------
// CLI configuration struct
// --------------------------------------------------------------------------

// Config holds the settings shared by all prefsync commands.
type Config struct {
	// backing files
	PreferencesFile string
	RecordsFile     string

	// file encoding
	Format      string
	Compression string

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Files")
	addField("Preferences", c.PreferencesFile)
	addField("Records", c.RecordsFile)

	addSection("Encoding")
	addField("Format", c.Format)
	addField("Compression", c.Compression)

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
