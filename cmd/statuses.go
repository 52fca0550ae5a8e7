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
	statusName  string
	statusDesc  string
	statusLevel string
	statusImage string
)

var statusesCmd = &cobra.Command{
	Use:   "statuses",
	Short: "Manage status definitions",
	Long:  `List and create the named severity states (e.g. Up, Down) that events apply to services.`,
}

var statusesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all statuses",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		statuses, err := api.GetStatuses()
		if err != nil {
			fmt.Printf("Error fetching statuses: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(statuses); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tLEVEL\tIMAGE\tDESCRIPTION")
		fmt.Fprintln(w, "--\t----\t-----\t-----\t-----------")

		for _, st := range statuses {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", st.ID, st.Name, st.Level, st.Image, st.Description)
		}
		w.Flush()
	},
}

var statusesGetCmd = &cobra.Command{
	Use:   "get <status-id>",
	Short: "Show a single status",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		status, err := api.GetStatus(args[0])
		if err != nil {
			fmt.Printf("Error fetching status: %v\n", err)
			os.Exit(1)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Printf("Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
	},
}

var statusesCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a new status",
	Example: `  stashboard-cli statuses create --name "Degraded" --description "Partial outage" --level WARNING --image clock`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		status, err := api.CreateStatus(statusName, statusDesc, statusLevel, statusImage)
		if err != nil {
			fmt.Printf("Error creating status: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created status '%s' with id %s\n", status.Name, status.ID)
	},
}

var statusesImagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List the image assets a status may use",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		images, err := api.GetStatusImages()
		if err != nil {
			fmt.Printf("Error fetching status images: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(images); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tURL")
		fmt.Fprintln(w, "----\t---")

		for _, img := range images {
			fmt.Fprintf(w, "%s\t%s\n", img.Name, img.URL)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statusesCmd)

	statusesCmd.AddCommand(statusesListCmd)
	statusesCmd.AddCommand(statusesGetCmd)
	statusesCmd.AddCommand(statusesCreateCmd)
	statusesCmd.AddCommand(statusesImagesCmd)

	// Flags for Create
	statusesCreateCmd.Flags().StringVar(&statusName, "name", "", "Status name")
	statusesCreateCmd.Flags().StringVar(&statusDesc, "description", "", "Status description")
	statusesCreateCmd.Flags().StringVar(&statusLevel, "level", "", "Severity level (see 'stashboard-cli levels')")
	statusesCreateCmd.Flags().StringVar(&statusImage, "image", "", "Image asset name (see 'stashboard-cli statuses images')")
	_ = statusesCreateCmd.MarkFlagRequired("name")
	_ = statusesCreateCmd.MarkFlagRequired("level")
	_ = statusesCreateCmd.MarkFlagRequired("image")
}
