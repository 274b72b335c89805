package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// tables are migrated in setup, nothing else to do
		log.Printf("Database is up to date")
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
