package cmd

import (
	"fmt"

	"github.com/justbidit/jbi/internal"
	"github.com/spf13/cobra"
)

var tendersCached bool

// tendersCmd represents the tenders command group
var tendersCmd = &cobra.Command{
	Use:   "tenders",
	Short: "Browse your tender history",
	Long: `List the tenders you have uploaded, inspect one, or make one the
active tender for compliance checks and drafting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tendersListCmd.RunE(cmd, args)
	},
}

var tendersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded tenders",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, client, err := newEnv()
		if err != nil {
			return err
		}

		if tendersCached {
			cache := openCache(cfg)
			if cache == nil {
				return fmt.Errorf("activity cache unavailable")
			}
			defer func() { _ = cache.Close() }()
			tenders, err := cache.ListTenders()
			if err != nil {
				return err
			}
			fmt.Print(internal.RenderTenderList(tenders))
			return nil
		}

		if err := requireLogin(store); err != nil {
			return err
		}
		tenders, err := client.ListTenders(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load tender history: %w", err)
		}

		if cache := openCache(cfg); cache != nil {
			defer func() { _ = cache.Close() }()
			for i := range tenders {
				if err := cache.PutTender(&tenders[i]); err != nil {
					internal.LogWarn("failed to cache tender snapshot: %v", err)
					break
				}
			}
		}

		fmt.Print(internal.RenderTenderList(tenders))
		return nil
	},
}

var tendersShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a tender's extracted summary",
	Long:  `Show one tender. Without an id the active tender is shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, client, err := newEnv()
		if err != nil {
			return err
		}
		if err := requireLogin(store); err != nil {
			return err
		}

		id := store.TenderID
		if len(args) == 1 {
			id = args[0]
		}
		if id == "" {
			return fmt.Errorf("no tender selected (upload one or pass an id)")
		}

		tender, err := client.GetTender(cmd.Context(), id)
		if err != nil {
			return err
		}
		if cache := openCache(cfg); cache != nil {
			defer func() { _ = cache.Close() }()
			if err := cache.PutTender(tender); err != nil {
				internal.LogWarn("failed to cache tender snapshot: %v", err)
			}
		}

		fmt.Print(internal.RenderTenderSummary(tender))
		return nil
	},
}

var tendersSelectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Make a tender the active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := newEnv()
		if err != nil {
			return err
		}
		if err := requireLogin(store); err != nil {
			return err
		}

		// Verify before committing so a bad id never becomes the active
		// tender.
		tender, err := client.GetTender(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := store.SetTenderID(args[0]); err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Tender #%d selected", tender.ID)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tendersCmd)
	tendersCmd.AddCommand(tendersListCmd)
	tendersCmd.AddCommand(tendersShowCmd)
	tendersCmd.AddCommand(tendersSelectCmd)
	tendersCmd.PersistentFlags().BoolVar(&tendersCached, "cached", false, "List local snapshots instead of asking the backend")
}
