package cmd

import (
	"fmt"
	"os"

	"github.com/justbidit/jbi/internal"
	"github.com/spf13/cobra"
)

var (
	draftContext string
	draftOut     string
)

// draftCmd represents the draft command
var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate the bid proposal draft",
	Long: `Ask the copilot to compose a bid proposal for the active tender
and company. Use --context to pass additional instructions; a retry after a
failure is a plain re-run and does not resupply context unless given again.
With --out the draft is written to a file, otherwise it is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, client, err := newEnv()
		if err != nil {
			return err
		}
		if err := requireLogin(store); err != nil {
			return err
		}
		if store.TenderID == "" {
			return fmt.Errorf("no tender loaded (`jbi upload <file.pdf>` first)")
		}
		if store.CompanyID == "" {
			return fmt.Errorf("no company profile (`jbi company save` first)")
		}

		fmt.Println(infoStyle.Render("Writing your proposal... (composing all sections, please wait)"))

		text, err := client.GenerateDraft(cmd.Context(), store.TenderID, store.CompanyID, draftContext)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		if text == "" {
			text = "No draft returned."
		}

		if cache := openCache(cfg); cache != nil {
			defer func() { _ = cache.Close() }()
			if err := cache.PutDraft(tenderIDNum(store), text); err != nil {
				internal.LogWarn("failed to cache draft: %v", err)
			}
		}

		if draftOut != "" {
			if err := os.WriteFile(draftOut, []byte(text), 0644); err != nil {
				return fmt.Errorf("failed to write draft: %w", err)
			}
			fmt.Println(successStyle.Render("Bid proposal written to " + draftOut))
			return nil
		}

		fmt.Println(successStyle.Render("Bid proposal ready"))
		fmt.Println()
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.Flags().StringVar(&draftContext, "context", "", "Additional context for the copilot")
	draftCmd.Flags().StringVarP(&draftOut, "out", "o", "", "Write the draft to a file instead of printing it")
}
