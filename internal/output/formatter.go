package output

import (
	"fmt"
	"os"
	"time"

	"github.com/ficalc/independence-calculator/internal/domain"
)

// Formatter defines a pluggable report formatter over a calculation session.
// Implementations must be pure: deterministic output, no side effects.
type Formatter interface {
	Format(session *domain.Session) ([]byte, error)
	// Name returns the short identifier used on the CLI and in logs.
	Name() string
}

// builtInFormatters stores the available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil when unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter identifiers.
func FormatterNames() []string {
	names := make([]string, len(builtInFormatters))
	for i, f := range builtInFormatters {
		names[i] = f.Name()
	}
	return names
}

// Extension maps a formatter to its file extension.
func Extension(f Formatter) string {
	switch f.Name() {
	case "console":
		return "txt"
	default:
		return f.Name()
	}
}

// WriteFormatted runs a formatter and writes its output to path; an empty
// path writes a timestamped file in the working directory. Returns the file
// written.
func WriteFormatted(f Formatter, session *domain.Session, path string) (string, error) {
	data, err := f.Format(session)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = fmt.Sprintf("independence_report_%s.%s", time.Now().Format("20060102_150405"), Extension(f))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
