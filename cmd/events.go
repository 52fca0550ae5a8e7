package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	eventSince   string
	eventUntil   string
	eventStatus  string
	eventMessage string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Manage a service's event history",
	Long:  `List, record, and delete the time-stamped status changes of a service.`,
}

var eventsListCmd = &cobra.Command{
	Use:   "list <service-id>",
	Short: "List events for a service",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		// Setup Time Range
		var start, end time.Time
		if eventSince != "" {
			duration, err := time.ParseDuration(eventSince)
			if err != nil {
				fmt.Printf("Error parsing duration: %v\n", err)
				os.Exit(1)
			}
			end = time.Now().UTC()
			start = end.Add(-duration)
		}
		if eventUntil != "" {
			t, err := time.Parse(time.RFC3339, eventUntil)
			if err != nil {
				fmt.Printf("Error parsing --until timestamp: %v\n", err)
				os.Exit(1)
			}
			end = t
		}

		events, err := api.GetEvents(args[0], start, end)
		if err != nil {
			fmt.Printf("Error fetching events: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(events); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if len(events) == 0 {
			fmt.Println("No events found.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "SID\tTIMESTAMP\tSTATUS\tMESSAGE")
		fmt.Fprintln(w, "---\t---------\t------\t-------")

		for _, e := range events {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.SID, e.Timestamp, e.Status, e.Message)
		}
		w.Flush()
	},
}

var eventsCreateCmd = &cobra.Command{
	Use:     "create <service-id>",
	Short:   "Record a status change for a service",
	Args:    cobra.ExactArgs(1),
	Example: `  stashboard-cli events create svc1 --status down --message "db is on fire"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		event, err := api.CreateEvent(args[0], eventStatus, eventMessage)
		if err != nil {
			fmt.Printf("Error creating event: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Recorded event %s (%s) at %s\n", event.SID, event.Status, event.Timestamp)
	},
}

var eventsCurrentCmd = &cobra.Command{
	Use:   "current <service-id>",
	Short: "Show the most recent event of a service",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		event, err := api.GetCurrentEvent(args[0])
		if err != nil {
			fmt.Printf("Error fetching current event: %v\n", err)
			os.Exit(1)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(event); err != nil {
			fmt.Printf("Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
	},
}

var eventsGetCmd = &cobra.Command{
	Use:   "get <service-id> <event-sid>",
	Short: "Show a single event",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		event, err := api.GetEvent(args[0], args[1])
		if err != nil {
			fmt.Printf("Error fetching event: %v\n", err)
			os.Exit(1)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(event); err != nil {
			fmt.Printf("Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
	},
}

var eventsDeleteCmd = &cobra.Command{
	Use:   "delete <service-id> <event-sid>",
	Short: "Delete a single event",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		event, err := api.DeleteEvent(args[0], args[1])
		if err != nil {
			fmt.Printf("Error deleting event: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Deleted event %s\n", event.SID)
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsCreateCmd)
	eventsCmd.AddCommand(eventsCurrentCmd)
	eventsCmd.AddCommand(eventsGetCmd)
	eventsCmd.AddCommand(eventsDeleteCmd)

	// Flags for List
	eventsListCmd.Flags().StringVar(&eventSince, "since", "", "Look back duration (e.g. 30m, 1h, 24h)")
	eventsListCmd.Flags().StringVar(&eventUntil, "until", "", "Upper time bound (RFC 3339)")

	// Flags for Create
	eventsCreateCmd.Flags().StringVar(&eventStatus, "status", "", "Status id to apply")
	eventsCreateCmd.Flags().StringVar(&eventMessage, "message", "", "Free-text event message")
	_ = eventsCreateCmd.MarkFlagRequired("status")
	_ = eventsCreateCmd.MarkFlagRequired("message")
}
