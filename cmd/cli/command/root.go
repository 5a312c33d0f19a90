package command

// root.go defines the root command for the animehub CLI.
// Global flags and configuration live here.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var apiURL string // global flag for API server URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "animehub",
	Short: "animehub - AnimeHub Command Line Interface",
	Long: `animehub is a tool for interacting with the AnimeHub API. Use it to:
- Browse and search the anime catalogue
- Moderate pending submissions
- Read your direct message conversations

Use "animehub [command] --help" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(animeCmd)
	rootCmd.AddCommand(messageCmd)
}
