package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/justbidit/jbi/internal"
	"github.com/spf13/cobra"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the copilot one question about the active tender",
	Long: `Ask a single question. The conversation id returned by the first
exchange is persisted, so repeated invocations continue the same multi-turn
conversation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := newEnv()
		if err != nil {
			return err
		}
		if err := requireLogin(store); err != nil {
			return err
		}
		if store.TenderID == "" {
			return fmt.Errorf("no tender loaded (`jbi upload <file.pdf>` first)")
		}

		question := strings.Join(args, " ")
		fmt.Println(internal.RenderChatMessage(internal.ChatExchange{Speaker: "user", Text: question}))

		answer, err := askOnce(cmd, store, client, question)
		if err != nil {
			// Failures become an error-annotated assistant message, the
			// conversation itself stays usable.
			fmt.Println(internal.RenderChatMessage(internal.ChatExchange{
				Speaker: "assistant",
				Text:    "Error: " + err.Error(),
			}))
			return nil
		}
		fmt.Println(internal.RenderChatMessage(internal.ChatExchange{Speaker: "assistant", Text: answer}))
		return nil
	},
}

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the copilot interactively",
	Long: `Start a turn-based chat about the active tender. Questions are
strictly sequential; type "exit" or press Ctrl-D to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := newEnv()
		if err != nil {
			return err
		}
		if err := requireLogin(store); err != nil {
			return err
		}
		if store.TenderID == "" {
			return fmt.Errorf("no tender loaded (`jbi upload <file.pdf>` first)")
		}

		fmt.Println(sectionStyle.Render("Tender copilot"))
		fmt.Println(hintStyle.Render(`Ask about tender #` + store.TenderID + `. Type "exit" to leave.`))
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				fmt.Println()
				break
			}
			question := strings.TrimSpace(scanner.Text())
			if question == "" {
				continue
			}
			if question == "exit" || question == "quit" {
				break
			}

			answer, err := askOnce(cmd, store, client, question)
			if err != nil {
				fmt.Println(internal.RenderChatMessage(internal.ChatExchange{
					Speaker: "assistant",
					Text:    "Error: " + err.Error(),
				}))
				continue
			}
			fmt.Println(internal.RenderChatMessage(internal.ChatExchange{Speaker: "assistant", Text: answer}))
			fmt.Println()
		}
		return scanner.Err()
	},
}

// askOnce runs one exchange: transient thinking line, then the answer. The
// stored session id rides along on every call after the first.
func askOnce(cmd *cobra.Command, store *internal.Store, client *internal.Client, question string) (string, error) {
	fmt.Print(hintStyle.Render("thinking..."))
	resp, err := client.Ask(cmd.Context(), store.TenderID, question, store.ChatSessionID)
	fmt.Print("\r           \r")
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(chatCmd)
}
