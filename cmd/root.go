package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/justbidit/jbi/internal"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	apiURL   string
	stateDir string
	version  string = "dev"
	commit   string = "unknown"
	date     string = "unknown"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jbi",
	Short: "Tender-bidding assistant for the JustBidIt API",
	Long: `A CLI client for the JustBidIt tender-bidding backend.

Upload a tender PDF, maintain your company profile, score your eligibility
against the tender's criteria, and let the AI copilot draft the bid proposal
or answer questions about the tender.

Quick Start:
  jbi login <email>                  # Authenticate
  jbi upload tender.pdf              # Extract tender data
  jbi company save --name "Acme" --turnover 120 --years 8
  jbi check                          # Run the compliance check
  jbi draft --out proposal.txt       # Generate the bid proposal

State (active tender, company profile, auth token) lives under ~/.jbi and
survives across invocations. Use --api or JBI_API_URL to point at a
different backend.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Backend base URL (default http://localhost:8000, or JBI_API_URL)")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state", "", "State directory (default ~/.jbi, or JBI_STATE_DIR)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// newEnv resolves configuration and hydrates the session store.
func newEnv() (*internal.Config, *internal.Store, *internal.Client, error) {
	cfg, err := internal.LoadConfig(apiURL, stateDir)
	if err != nil {
		return nil, nil, nil, err
	}
	store := internal.NewStore(cfg.StateDir)
	store.Load()
	client := internal.NewClient(cfg.APIURL, store)
	return cfg, store, client, nil
}

// requireLogin guards protected commands: without a token the command never
// reaches the network.
func requireLogin(store *internal.Store) error {
	if !store.Authenticated() {
		return fmt.Errorf("not logged in (run `jbi login` first)")
	}
	return nil
}

// tenderIDNum parses the active tender id for cache lookups.
func tenderIDNum(store *internal.Store) int64 {
	n, err := strconv.ParseInt(store.TenderID, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// openCache opens the local activity cache. A nil return with a logged
// warning keeps cache problems from failing a flow.
func openCache(cfg *internal.Config) *internal.ActivityCache {
	cache, err := internal.OpenActivityCache(cfg.StateDir)
	if err != nil {
		internal.LogWarn("activity cache unavailable: %v", err)
		return nil
	}
	return cache
}
