package export

import (
	"io"

	"github.com/justbidit/jbi/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports bid packages in YAML format
type YAMLExporter struct{}

// Export exports a bid package to YAML format
func (e *YAMLExporter) Export(pkg *internal.BidPackage, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(pkg)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
