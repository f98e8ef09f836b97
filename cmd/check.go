package cmd

import (
	"fmt"
	"os"

	"github.com/justbidit/jbi/internal"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the compliance check for the active tender",
	Long: `Score the saved company profile against the active tender's
eligibility criteria. Requires an uploaded tender and a saved company
profile; re-running replaces the previous report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, client, err := newEnv()
		if err != nil {
			return err
		}
		if err := requireLogin(store); err != nil {
			return err
		}

		// Both preconditions are enforced before any network call.
		if store.TenderID == "" {
			return fmt.Errorf("upload a tender PDF first (`jbi upload <file.pdf>`)")
		}
		if store.CompanyID == "" {
			return fmt.Errorf("save your company profile first (`jbi company save`)")
		}

		fmt.Println(infoStyle.Render("Running compliance engine..."))

		report, err := client.CheckCompliance(cmd.Context(), store.TenderID, store.CompanyID)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		if cache := openCache(cfg); cache != nil {
			defer func() { _ = cache.Close() }()
			if err := cache.PutReport(report); err != nil {
				internal.LogWarn("failed to cache compliance report: %v", err)
			}
		}

		fmt.Println()
		internal.AnimateScore(os.Stdout, report.Score, internal.ScoreAnimationBudget)
		fmt.Println()
		fmt.Print(internal.RenderComplianceReport(report))
		fmt.Println()
		fmt.Println(hintStyle.Render("Run `jbi draft` to generate the bid proposal."))
		return nil
	},
}

// reportCmd shows the most recent cached compliance report for the active
// tender without hitting the backend.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the last cached compliance report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, _, err := newEnv()
		if err != nil {
			return err
		}
		if store.TenderID == "" {
			return fmt.Errorf("no tender selected")
		}

		cache := openCache(cfg)
		if cache == nil {
			return fmt.Errorf("activity cache unavailable")
		}
		defer func() { _ = cache.Close() }()

		report, err := cache.LatestReport(tenderIDNum(store))
		if err != nil {
			return err
		}
		if report == nil {
			return fmt.Errorf("no report cached for tender #%s (run `jbi check`)", store.TenderID)
		}

		fmt.Println(internal.ScoreStyle(report.Score).Render(fmt.Sprintf("%3d/100", report.Score)))
		fmt.Println()
		fmt.Print(internal.RenderComplianceReport(report))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(reportCmd)
}
