package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	serviceName string
	serviceDesc string
)

// Parent Command
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Manage dashboard services",
	Long:  `List, create, update, and delete the monitored components shown on the dashboard.`,
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all services",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		services, err := api.GetServices()
		if err != nil {
			fmt.Printf("Error fetching services: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(services); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCURRENT\tDESCRIPTION")
		fmt.Fprintln(w, "--\t----\t-------\t-----------")

		for _, svc := range services {
			current := "-"
			if svc.CurrentEvent != nil {
				current = svc.CurrentEvent.Status
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", svc.ID, svc.Name, current, svc.Description)
		}
		w.Flush()
	},
}

var servicesGetCmd = &cobra.Command{
	Use:   "get <service-id>",
	Short: "Show a single service",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		svc, err := api.GetService(args[0])
		if err != nil {
			fmt.Printf("Error fetching service: %v\n", err)
			os.Exit(1)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(svc); err != nil {
			fmt.Printf("Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
	},
}

var servicesCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a new service",
	Example: `  stashboard-cli services create --name "db" --description "database cluster"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		svc, err := api.CreateService(serviceName, serviceDesc)
		if err != nil {
			fmt.Printf("Error creating service: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created service '%s' with id %s\n", svc.Name, svc.ID)
	},
}

var servicesUpdateCmd = &cobra.Command{
	Use:   "update <service-id>",
	Short: "Update a service's name and description",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		svc, err := api.UpdateService(args[0], serviceName, serviceDesc)
		if err != nil {
			fmt.Printf("Error updating service: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Updated service %s\n", svc.ID)
	},
}

var servicesDeleteCmd = &cobra.Command{
	Use:   "delete <service-id>",
	Short: "Delete a service and its event history",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		svc, err := api.DeleteService(args[0])
		if err != nil {
			fmt.Printf("Error deleting service: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Deleted service '%s' (%s)\n", svc.Name, svc.ID)
	},
}

func init() {
	// Register Parent
	rootCmd.AddCommand(servicesCmd)

	// Register Subcommands
	servicesCmd.AddCommand(servicesListCmd)
	servicesCmd.AddCommand(servicesGetCmd)
	servicesCmd.AddCommand(servicesCreateCmd)
	servicesCmd.AddCommand(servicesUpdateCmd)
	servicesCmd.AddCommand(servicesDeleteCmd)

	// Flags for Create
	servicesCreateCmd.Flags().StringVar(&serviceName, "name", "", "Service name")
	servicesCreateCmd.Flags().StringVar(&serviceDesc, "description", "", "Service description")
	_ = servicesCreateCmd.MarkFlagRequired("name")

	// Flags for Update
	servicesUpdateCmd.Flags().StringVar(&serviceName, "name", "", "New service name")
	servicesUpdateCmd.Flags().StringVar(&serviceDesc, "description", "", "New service description")
	_ = servicesUpdateCmd.MarkFlagRequired("name")
}
