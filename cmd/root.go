package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"stashboard-cli/internal/config"
	"stashboard-cli/pkg/client"
)

var cfgFile string
var jsonOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stashboard-cli",
	Short: "A CLI for managing a Stashboard status dashboard",
	Long: `Manage the services, statuses, and events of a Stashboard
status dashboard through its REST API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Helper to initialize the API client from saved credentials
func setupClient() *client.StashboardClient {
	baseURL := viper.GetString("base_url")
	token := viper.GetString("oauth_token")
	secret := viper.GetString("oauth_secret")

	if baseURL == "" || token == "" || secret == "" {
		fmt.Println("Error: Not configured. Please run 'stashboard-cli configure' first.")
		os.Exit(1)
	}

	api, err := client.New(client.ClientConfig{
		BaseURL: baseURL,
		Token:   token,
		Secret:  secret,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return api
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stashboard-cli.yaml)")

	// Add the persistent flag here
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}
