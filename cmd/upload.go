package cmd

import (
	"fmt"
	"strings"

	"github.com/justbidit/jbi/internal"
	"github.com/spf13/cobra"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <file.pdf>",
	Short: "Upload a tender PDF for extraction",
	Long: `Upload a tender document. The backend extracts the structured
eligibility data with AI, which usually takes 10-20 seconds. On success the
tender becomes the active one and its summary is printed; re-run the command
to retry a failed upload or to replace the active tender.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, client, err := newEnv()
		if err != nil {
			return err
		}
		if err := requireLogin(store); err != nil {
			return err
		}

		path := args[0]
		if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
			return fmt.Errorf("please provide a PDF file")
		}

		fmt.Println(infoStyle.Render("Extracting tender data... (AI is reading the PDF, 10-20 seconds)"))

		tender, err := client.UploadTender(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}

		if cache := openCache(cfg); cache != nil {
			defer func() { _ = cache.Close() }()
			if err := cache.PutTender(tender); err != nil {
				internal.LogWarn("failed to cache tender snapshot: %v", err)
			}
		}

		fmt.Println(successStyle.Render("Tender extracted successfully"))
		fmt.Println()
		fmt.Print(internal.RenderTenderSummary(tender))
		fmt.Println()
		fmt.Println(hintStyle.Render(fmt.Sprintf("Tender #%d is now active. Run `jbi check` for the compliance score.", tender.ID)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
