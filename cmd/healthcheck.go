package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check the backend and the local session state",
	Long: `Check the health of the client setup by verifying:
  • Resolved configuration (API base URL, state directory)
  • Backend reachability (GET /health)
  • Authentication state
  • Active tender and company identifiers

A transport failure counts as "API offline", never as a crash; the status is
advisory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("JustBidIt Health Check"))
		fmt.Println()

		cfg, store, client, err := newEnv()
		if err != nil {
			fmt.Println(errorStyle.Render("Failed to resolve configuration:"), err)
			return err
		}
		fmt.Println(infoStyle.Render("Step 1: Configuration"))
		fmt.Printf("   API base URL: %s\n", cfg.APIURL)
		fmt.Printf("   State dir:    %s\n", cfg.StateDir)
		fmt.Println()

		fmt.Println(infoStyle.Render("Step 2: Backend reachability"))
		online := client.HealthCheck(cmd.Context())
		if online {
			fmt.Println(successStyle.Render("API Online"))
		} else {
			fmt.Println(warningStyle.Render("API Offline"))
		}
		fmt.Println()

		fmt.Println(infoStyle.Render("Step 3: Session"))
		if store.Authenticated() {
			name := ""
			if store.User != nil {
				name = fmt.Sprintf(" (%s)", store.User.FullName)
			}
			fmt.Println(successStyle.Render("Logged in" + name))
		} else {
			fmt.Println(warningStyle.Render("Not logged in"))
		}
		if store.TenderID != "" {
			fmt.Printf("   Active tender:  #%s\n", store.TenderID)
		} else {
			fmt.Println(hintStyle.Render("   No active tender"))
		}
		if store.CompanyID != "" {
			fmt.Printf("   Active company: #%s\n", store.CompanyID)
		} else {
			fmt.Println(hintStyle.Render("   No saved company profile"))
		}
		if store.ChatSessionID != "" {
			fmt.Printf("   Chat session:   #%s\n", store.ChatSessionID)
		}
		fmt.Println()

		fmt.Println(sectionStyle.Render("Summary"))
		if online {
			fmt.Println(successStyle.Render("Health check passed"))
			return nil
		}
		fmt.Println(errorStyle.Render("Backend unreachable at " + cfg.APIURL))
		return fmt.Errorf("health check failed: backend unreachable")
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
