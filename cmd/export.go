package cmd

import (
	"fmt"
	"os"

	"github.com/justbidit/jbi/internal"
	"github.com/justbidit/jbi/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active tender's cached artifacts",
	Long: `Export what the client has cached for the active tender: the
extracted summary, the latest compliance report and the latest draft.

Formats: json, yaml, md, txt (txt exports the draft text alone, the way the
proposal page's download button did).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, _, err := newEnv()
		if err != nil {
			return err
		}
		if store.TenderID == "" {
			return fmt.Errorf("no tender selected")
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		cache := openCache(cfg)
		if cache == nil {
			return fmt.Errorf("activity cache unavailable")
		}
		defer func() { _ = cache.Close() }()

		pkg, err := cache.Package(tenderIDNum(store))
		if err != nil {
			return err
		}
		if pkg.Tender == nil && pkg.Report == nil && pkg.Draft == "" {
			return fmt.Errorf("nothing cached for tender #%s yet", store.TenderID)
		}

		out := exportOut
		if out == "" {
			out = fmt.Sprintf("bid-proposal-tender-%s.%s", store.TenderID, exporter.Extension())
		}
		file, err := os.Create(out)
		if err != nil {
			return &internal.ExportError{Format: exportFormat, Path: out, Err: err}
		}
		defer func() { _ = file.Close() }()

		if err := exporter.Export(pkg, file); err != nil {
			return &internal.ExportError{Format: exportFormat, Path: out, Err: err}
		}

		fmt.Println(successStyle.Render("Exported to " + out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "txt", "Export format (json, yaml, md, txt)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (defaults to bid-proposal-tender-<id>.<ext>)")
}
