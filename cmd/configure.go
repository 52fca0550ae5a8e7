package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"stashboard-cli/internal/config"
	"stashboard-cli/pkg/client"
)

// Variables to hold flag values
var (
	host   string
	token  string
	secret string
)

// configureCmd represents the configure command
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store dashboard credentials",
	Long: `Verifies the provided OAuth token pair against the dashboard API
and saves it locally for future commands.

Example:
  stashboard-cli configure --url "https://status.example.com" --token myToken --secret mySecret`,
	Run: func(cmd *cobra.Command, args []string) {
		// Clean up input host (remove trailing slash if present)
		host = strings.TrimRight(host, "/")

		fmt.Printf("Verifying credentials against %s...\n", host)

		api, err := client.New(client.ClientConfig{
			BaseURL: host,
			Token:   token,
			Secret:  secret,
		})
		if err != nil {
			log.Fatalf("Fatal: %v", err)
		}

		// A cheap read confirms both the URL and the token pair work.
		if _, err := api.GetServices(); err != nil {
			log.Fatalf("Fatal: Credential check failed: %v", err)
		}

		fmt.Println("Credentials verified. Saving configuration...")

		if err := config.SaveCredentials(host, token, secret); err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		fmt.Printf("Configuration saved. You can now run commands like './stashboard-cli services list'.\n")
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)

	// Define Flags
	configureCmd.Flags().StringVar(&host, "url", "", "Dashboard base URL (e.g. https://status.example.com)")
	configureCmd.Flags().StringVar(&token, "token", "", "OAuth token")
	configureCmd.Flags().StringVar(&secret, "secret", "", "OAuth token secret")

	// Mark required flags to ensure the user provides necessary info
	_ = configureCmd.MarkFlagRequired("url")
	_ = configureCmd.MarkFlagRequired("token")
	_ = configureCmd.MarkFlagRequired("secret")
}
