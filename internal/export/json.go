package export

import (
	"encoding/json"
	"io"

	"github.com/justbidit/jbi/internal"
)

// JSONExporter exports bid packages in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports a bid package to JSON format
func (e *JSONExporter) Export(pkg *internal.BidPackage, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(pkg)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
