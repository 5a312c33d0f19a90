package command

import (
	"fmt"
	"strings"

	"animehub/cmd/cli/authentication"
	"animehub/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Direct message commands",
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Stream incoming messages in real time",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := authentication.GetTokens()
		if err != nil {
			return fmt.Errorf("not logged in, please run 'animehub auth login'")
		}
		return client.ListenForEvents(apiURL, creds.AccessToken)
	},
}

var conversationsCmd = &cobra.Command{
	Use:   "conversations",
	Short: "List your conversations, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authedClient()
		if err != nil {
			return err
		}

		conversations, err := httpClient.ListConversations()
		if err != nil {
			return fmt.Errorf("failed to get conversations: %w", err)
		}

		if len(conversations) == 0 {
			fmt.Println("No conversations yet.")
			return nil
		}

		for _, conv := range conversations {
			name := conv.OtherUser.ID
			if conv.OtherUser.FirstName != nil {
				name = *conv.OtherUser.FirstName
				if conv.OtherUser.LastName != nil {
					name += " " + *conv.OtherUser.LastName
				}
			}

			if conv.UnreadCount > 0 {
				color.Cyan("%s (%d unread)", name, conv.UnreadCount)
			} else {
				fmt.Println(name)
			}
			fmt.Printf("  %s\n", conv.LastMessage.Content)
			fmt.Printf("  %s\n", conv.LastMessage.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

func init() {
	messageCmd.AddCommand(conversationsCmd)
	messageCmd.AddCommand(listenCmd)
}
