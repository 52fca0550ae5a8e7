package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the severity levels statuses may use",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		levels, err := api.GetLevels()
		if err != nil {
			fmt.Printf("Error fetching levels: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(levels); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		for _, lvl := range levels {
			fmt.Println(lvl)
		}
	},
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}
