package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
)

var playBudget int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round of WikiHop",
	Long: `Starts the WikiHop game. A random starting page is drawn; you and the
computer each name a page, and whoever's page is farthest from the start
(the longer verified link chain) wins the round.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&playBudget, "budget", "t", 0, "time budget per path in seconds (default 15)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	in := bufio.NewScanner(cmd.InOrStdin())

	cmd.Println(titleStyle.Render("Welcome to WikiHop!"))
	cmd.Println("We start from a random page; name a page as far away from it as you can.")
	cmd.Println("Hit Enter to start, or type 'q' to quit.")
	if quitRequested(in) {
		return nil
	}

	for {
		if err := playOneRound(ctx, cmd, in); err != nil {
			return err
		}

		cmd.Println("\nPlay again? Hit Enter for another round, or type 'q' to quit.")
		if quitRequested(in) {
			cmd.Println(mutedStyle.Render("Thanks for playing!"))
			return nil
		}
	}
}

func playOneRound(ctx context.Context, cmd *cobra.Command, in *bufio.Scanner) error {
	start, err := gameService.RandomPage(ctx)
	if err != nil {
		return fmt.Errorf("picking starting page: %w", err)
	}
	printPage(cmd, "The starting page is", start)

	computer, err := gameService.WellConnectedPage(ctx)
	if err != nil {
		return fmt.Errorf("picking computer page: %w", err)
	}
	printPage(cmd, "The computer's page is", computer)

	cmd.Println("What would you like your page to be?")
	if !in.Scan() {
		return in.Err()
	}
	name := strings.TrimSpace(in.Text())
	if name == "" {
		cmd.Println(warnStyle.Render("No page named, skipping round."))
		return nil
	}

	user, err := linkSource.Resolve(ctx, name)
	if err != nil {
		cmd.Println(warnStyle.Render("Couldn't find that page. Skipping round."))
		return nil
	}
	printPage(cmd, "Your page is", user)

	cmd.Println("Calculating paths...")
	round := gameService.PlayRound(ctx, start, computer, user, timeBudget(playBudget))

	printPath(cmd, "Computer's path", round.ComputerPath)
	printPath(cmd, "Your path", round.UserPath)

	switch round.Outcome {
	case domain.OutcomeComputerWins:
		cmd.Println(successStyle.Render("The computer wins!"))
	case domain.OutcomeUserWins:
		cmd.Println(successStyle.Render("You win!"))
	case domain.OutcomeTie:
		cmd.Println(successStyle.Render("It's a tie!"))
	default:
		cmd.Println(mutedStyle.Render("Nobody wins this round..."))
	}
	return nil
}

// printPage shows a page's title and, when the source provided one, its
// short intro summary.
func printPage(cmd *cobra.Command, label string, page *domain.Page) {
	cmd.Printf("%s: %s\n", label, titleStyle.Render(page.Title))
	if page.Summary != "" {
		cmd.Println(mutedStyle.Render(page.Summary))
	}
	cmd.Println()
}

func printPath(cmd *cobra.Command, label string, path domain.Path) {
	if len(path) == 0 {
		cmd.Printf("%s: none found (timeout)\n\n", label)
		return
	}
	cmd.Printf("%s:\n  %s\n  Length: %d\n\n", label, pathStyle.Render(path.String()), len(path))
}

// quitRequested reads one line and reports whether the user asked to quit.
func quitRequested(in *bufio.Scanner) bool {
	if !in.Scan() {
		return true
	}
	return strings.TrimSpace(in.Text()) == "q"
}
