package command

import (
	"fmt"
	"strconv"
	"strings"

	"animehub/cmd/cli/authentication"
	"animehub/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var animeCmd = &cobra.Command{
	Use:   "anime",
	Short: "Anime catalogue commands",
	Long:  `Browse the catalogue and moderate pending submissions: list, pending, approve, reject`,
}

var listAnimeCmd = &cobra.Command{
	Use:   "list",
	Short: "List approved anime posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)

		posts, err := httpClient.ListAnime()
		if err != nil {
			return fmt.Errorf("failed to get anime list: %w", err)
		}

		if len(posts) == 0 {
			fmt.Println("No anime posts found.")
			return nil
		}

		fmt.Printf("Found %d anime posts:\n\n", len(posts))
		for _, p := range posts {
			printAnime(p)
		}
		return nil
	},
}

var pendingAnimeCmd = &cobra.Command{
	Use:   "pending",
	Short: "List submissions awaiting moderation (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authedClient()
		if err != nil {
			return err
		}

		posts, err := httpClient.ListPendingAnime()
		if err != nil {
			return fmt.Errorf("failed to get pending posts: %w", err)
		}

		if len(posts) == 0 {
			color.Green("Moderation queue is empty.")
			return nil
		}

		fmt.Printf("%d posts awaiting review:\n\n", len(posts))
		for _, p := range posts {
			printAnime(p)
		}
		return nil
	},
}

var approveAnimeCmd = &cobra.Command{
	Use:   "approve [id]",
	Short: "Approve a pending submission (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid anime post ID: %w", err)
		}

		httpClient, err := authedClient()
		if err != nil {
			return err
		}

		post, err := httpClient.ApproveAnime(id)
		if err != nil {
			return fmt.Errorf("failed to approve post: %w", err)
		}

		color.Green("✓ Approved: %s (ID %d)", post.Title, post.ID)
		return nil
	},
}

var rejectAnimeCmd = &cobra.Command{
	Use:   "reject [id]",
	Short: "Reject a pending submission (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid anime post ID: %w", err)
		}

		httpClient, err := authedClient()
		if err != nil {
			return err
		}

		post, err := httpClient.RejectAnime(id)
		if err != nil {
			return fmt.Errorf("failed to reject post: %w", err)
		}

		color.Yellow("Rejected: %s (ID %d)", post.Title, post.ID)
		return nil
	},
}

func printAnime(p client.AnimePostResponse) {
	fmt.Printf("ID: %d\n", p.ID)
	fmt.Printf("Title: %s\n", p.Title)
	fmt.Printf("Type: %s\n", p.Type)
	if p.Year != nil {
		fmt.Printf("Year: %d\n", *p.Year)
	}
	if p.Studio != nil {
		fmt.Printf("Studio: %s\n", *p.Studio)
	}
	if len(p.Tags) > 0 {
		names := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			names[i] = t.Name
		}
		fmt.Printf("Tags: %s\n", strings.Join(names, ", "))
	}
	fmt.Printf("Rating: %.1f (%d reviews)\n", p.AverageRating, p.ReviewCount)
	fmt.Println(strings.Repeat("-", 50))
}

// authedClient builds a client carrying the stored access token.
func authedClient() (*client.HTTPClient, error) {
	creds, err := authentication.GetTokens()
	if err != nil {
		return nil, fmt.Errorf("not logged in, please run 'animehub auth login'")
	}

	httpClient := client.NewHTTPClient(apiURL)
	httpClient.SetToken(creds.AccessToken)
	return httpClient, nil
}

func init() {
	animeCmd.AddCommand(listAnimeCmd)
	animeCmd.AddCommand(pendingAnimeCmd)
	animeCmd.AddCommand(approveAnimeCmd)
	animeCmd.AddCommand(rejectAnimeCmd)
}
