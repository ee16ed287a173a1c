package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show link cache statistics",
	RunE:  runCache,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
}

func runCache(cmd *cobra.Command, _ []string) error {
	count, err := linkStore.Count(context.Background())
	if err != nil {
		return fmt.Errorf("counting cached pages: %w", err)
	}

	cmd.Printf("Database: %s\n", linkStore.Path())
	cmd.Printf("Cached pages: %d\n", count)
	return nil
}
