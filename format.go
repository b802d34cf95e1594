package amati

import (
	"fmt"
	"strings"
)

// OutputFormat is the closed set of report formats.
type OutputFormat string

const (
	FormatTXT  OutputFormat = "TXT"
	FormatCSV  OutputFormat = "CSV"
	FormatXLS  OutputFormat = "XLS"  // reserved
	FormatXLSX OutputFormat = "XLSX" // reserved
)

// formatAliases maps upper-case format names to formats.
var formatAliases = map[string]OutputFormat{
	"TEXT": FormatTXT,
	"TXT":  FormatTXT,
	"CSV":  FormatCSV,
	"XLS":  FormatXLS,
	"XLSX": FormatXLSX,
}

// ParseOutputFormat resolves a format name case-insensitively, ignoring
// surrounding whitespace.
func ParseOutputFormat(text string) (OutputFormat, error) {
	f, ok := formatAliases[strings.ToUpper(strings.TrimSpace(text))]
	if !ok {
		return "", fmt.Errorf("unknown output format %q: %w", text, ErrValidation)
	}
	return f, nil
}

// Binary reports whether the format can only be written to a file.
func (f OutputFormat) Binary() bool {
	return f == FormatXLS || f == FormatXLSX
}

// FormatNames returns the accepted format names for help text.
func FormatNames() []string {
	return []string{"text", "txt", "csv", "xls", "xlsx"}
}
