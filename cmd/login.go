package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/justbidit/jbi/internal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login <email> [password]",
	Short: "Authenticate against the backend",
	Long: `Authenticate and store the session locally.

The password is prompted for when not given as an argument. On success the
bearer token and the account record are persisted under the state directory,
and every later command sends the token automatically.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := newEnv()
		if err != nil {
			return err
		}

		// The login view's inverse guard: skip re-authentication.
		if store.Authenticated() {
			name := ""
			if store.User != nil {
				name = store.User.FullName
			}
			fmt.Println(warningStyle.Render(fmt.Sprintf("Already logged in as %s (run `jbi logout` first)", name)))
			return nil
		}

		email := args[0]
		password := ""
		if len(args) == 2 {
			password = args[1]
		} else {
			password, err = promptPassword("Password: ")
			if err != nil {
				return err
			}
		}

		user, err := client.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Logged in as %s <%s>", user.FullName, user.Email)))
		return nil
	},
}

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register <email> <full name>",
	Short: "Create a new account",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := newEnv()
		if err != nil {
			return err
		}
		if store.Authenticated() {
			fmt.Println(warningStyle.Render("Already logged in (run `jbi logout` first)"))
			return nil
		}

		email := args[0]
		fullName := strings.Join(args[1:], " ")
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		if _, err := client.Register(cmd.Context(), email, fullName, password); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Account created"))
		fmt.Println(hintStyle.Render(fmt.Sprintf("Log in with `jbi login %s`", email)))
		return nil
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the local session",
	Long:  `Remove the stored token, user record, active identifiers and company form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _, err := newEnv()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Logged out"))
		return nil
	},
}

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated account",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := newEnv()
		if err != nil {
			return err
		}
		if err := requireLogin(store); err != nil {
			return err
		}

		refresh, _ := cmd.Flags().GetBool("refresh")
		user := store.User
		if refresh || user == nil {
			user, err = client.Me(cmd.Context())
			if err != nil {
				return err
			}
			if err := store.SetUser(user); err != nil {
				internal.LogWarn("failed to persist user record: %v", err)
			}
		}

		fmt.Printf("%s <%s>\n", user.FullName, user.Email)
		if store.TenderID != "" {
			fmt.Println(hintStyle.Render("Active tender: #" + store.TenderID))
		}
		if store.CompanyID != "" {
			fmt.Println(hintStyle.Render("Active company: #" + store.CompanyID))
		}
		return nil
	},
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(data), nil
	}
	// Piped stdin, e.g. in tests or scripts.
	var password string
	if _, err := fmt.Fscanln(os.Stdin, &password); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().Bool("refresh", false, "Re-fetch the account record from the backend")
}
