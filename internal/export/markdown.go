package export

import (
	"fmt"
	"io"

	"github.com/justbidit/jbi/internal"
)

// MarkdownExporter exports bid packages in Markdown format
type MarkdownExporter struct{}

// Export exports a bid package to Markdown format
func (e *MarkdownExporter) Export(pkg *internal.BidPackage, w io.Writer) error {
	if pkg.Tender != nil {
		t := pkg.Tender
		title := t.Title
		if t.ExtractedData != nil && t.ExtractedData.Title != "" {
			title = t.ExtractedData.Title
		}
		if title == "" {
			title = fmt.Sprintf("Tender #%d", t.ID)
		}
		_, _ = fmt.Fprintf(w, "# %s\n\n", title)
		_, _ = fmt.Fprintf(w, "**Tender ID:** %d  \n", t.ID)
		if t.Status != "" {
			_, _ = fmt.Fprintf(w, "**Status:** %s  \n", t.Status)
		}
		if t.ExtractedData != nil {
			info := t.ExtractedData
			if info.IssuingAuthority != "" {
				_, _ = fmt.Fprintf(w, "**Authority:** %s  \n", info.IssuingAuthority)
			}
			if info.Deadline != "" {
				_, _ = fmt.Fprintf(w, "**Deadline:** %s  \n", info.Deadline)
			}
			if info.Sector != "" {
				_, _ = fmt.Fprintf(w, "**Sector:** %s  \n", info.Sector)
			}
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	if pkg.Report != nil {
		r := pkg.Report
		_, _ = fmt.Fprintf(w, "## Compliance report\n\n")
		_, _ = fmt.Fprintf(w, "**Score:** %d/100  \n", r.Score)
		_, _ = fmt.Fprintf(w, "**Verdict:** %s\n\n", r.Verdict)

		if len(r.Recommendations) > 0 {
			_, _ = fmt.Fprintf(w, "### Recommendations\n\n")
			for _, rec := range r.Recommendations {
				_, _ = fmt.Fprintf(w, "- %s\n", rec)
			}
			_, _ = fmt.Fprintf(w, "\n")
		}

		if len(r.Gaps) > 0 {
			_, _ = fmt.Fprintf(w, "### Gaps\n\n")
			for _, g := range r.Gaps {
				if g.Note != "" {
					_, _ = fmt.Fprintf(w, "- **%s** (%s): %s\n", g.Field, g.Severity, g.Note)
				} else {
					_, _ = fmt.Fprintf(w, "- **%s** (%s)\n", g.Field, g.Severity)
				}
			}
			_, _ = fmt.Fprintf(w, "\n")
		}

		if r.AIAnalysis != "" {
			_, _ = fmt.Fprintf(w, "### Analysis\n\n%s\n\n", r.AIAnalysis)
		}
	}

	if pkg.Draft != "" {
		_, _ = fmt.Fprintf(w, "## Bid proposal draft\n\n%s\n", pkg.Draft)
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
