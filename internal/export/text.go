package export

import (
	"fmt"
	"io"

	"github.com/justbidit/jbi/internal"
)

// TextExporter exports the draft text verbatim, matching what the user
// would copy or download from the proposal view.
type TextExporter struct{}

// Export writes the draft text. A package with no draft is an error rather
// than an empty file.
func (e *TextExporter) Export(pkg *internal.BidPackage, w io.Writer) error {
	if pkg.Draft == "" {
		return fmt.Errorf("no draft to export")
	}
	_, err := io.WriteString(w, pkg.Draft)
	return err
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "txt"
}
