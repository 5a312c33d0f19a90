package command

import (
	"fmt"
	"time"

	"animehub/cmd/cli/authentication"
	"animehub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

// auth.go handles authentication commands: register, login, logout.

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the AnimeHub API server. Supports login, registration, logout.`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new AnimeHub account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.RegisterRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")
		if name, _ := cmd.Flags().GetString("first-name"); name != "" {
			req.FirstName = &name
		}
		if name, _ := cmd.Flags().GetString("last-name"); name != "" {
			req.LastName = &name
		}

		httpClient := client.NewHTTPClient(apiURL)
		user, err := httpClient.Register(&req)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Println("✓ Registration successful! Please login to continue.")
		fmt.Printf("UserID: %s\n", user.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to your AnimeHub account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.LoginRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		resp, err := httpClient.Login(&req)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		err = authentication.StoreTokens(&authentication.StoredCredentials{
			AccessToken: resp.Token.AccessToken,
			Email:       req.Email,
			ExpiresAt:   time.Now().Unix() + resp.Token.ExpiresIn,
		})
		if err != nil {
			return fmt.Errorf("failed to store credentials: %w", err)
		}

		fmt.Println("✓ Successfully logged in!")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from your AnimeHub account",
	Run: func(cmd *cobra.Command, args []string) {
		if err := authentication.DeleteTokens(); err != nil {
			fmt.Println("No stored session to clear.")
			return
		}
		fmt.Println("✓ Successfully logged out.")
	},
}

func init() {
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)

	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password for the new account")
	registerCmd.Flags().String("first-name", "", "First name (optional)")
	registerCmd.Flags().String("last-name", "", "Last name (optional)")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringP("email", "e", "", "Email address for the account")
	loginCmd.Flags().StringP("password", "p", "", "Password for the account")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
