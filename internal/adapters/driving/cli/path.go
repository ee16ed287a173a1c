package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	pathBudget int
	pathJSON   bool
)

var pathCmd = &cobra.Command{
	Use:   "path [start] [end]",
	Short: "Find a link chain between two topics",
	Long: `Finds a chain of hyperlinks from the start topic to the end topic.
Each hop in the returned chain is verified to be a real link. The search
runs under a wall-clock budget; an exhausted budget reports "no path",
which is an expected outcome, not a failure.`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

func init() {
	pathCmd.Flags().IntVarP(&pathBudget, "budget", "t", 0, "time budget in seconds (default 15)")
	pathCmd.Flags().BoolVar(&pathJSON, "json", false, "output the path as JSON")
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	start, end := args[0], args[1]

	// Resolve both names first so the chain is printed with canonical
	// titles rather than whatever the user typed.
	startPage, err := linkSource.Resolve(ctx, start)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", start, err)
	}
	endPage, err := linkSource.Resolve(ctx, end)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", end, err)
	}

	path := pathFinder.FindPath(ctx, startPage.Title, endPage.Title, timeBudget(pathBudget))

	if pathJSON {
		data, err := json.MarshalIndent(path, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling path: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(path) == 0 {
		cmd.Println(warnStyle.Render("No path found within budget."))
		return nil
	}

	cmd.Println(pathStyle.Render(path.String()))
	cmd.Println(mutedStyle.Render(fmt.Sprintf("%d hops", path.Hops())))
	return nil
}
