package output

import (
	json "github.com/goccy/go-json"

	"github.com/ficalc/independence-calculator/internal/domain"
)

// JSONFormatter serializes the whole session as pretty-printed JSON, the same
// shape the HTTP API returns.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(s *domain.Session) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
