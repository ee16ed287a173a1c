package domain

// Outcome is the result of one game round.
type Outcome string

// Round outcomes. The player whose page is farthest from the start
// (the longer valid path) wins. A player with no path at all loses by
// default; two pathless players score nobody.
const (
	OutcomeComputerWins Outcome = "computer"
	OutcomeUserWins     Outcome = "user"
	OutcomeTie          Outcome = "tie"
	OutcomeNobody       Outcome = "nobody"
)

// Round is one completed game round.
type Round struct {
	// ID uniquely identifies the round.
	ID string

	// Start is the common starting page.
	Start *Page

	// Computer is the computer's chosen page.
	Computer *Page

	// User is the user's chosen page.
	User *Page

	// ComputerPath is the path from Start to Computer (empty = none found).
	ComputerPath Path

	// UserPath is the path from Start to User (empty = none found).
	UserPath Path

	// Outcome is who won.
	Outcome Outcome
}

// Decide computes the outcome from the two paths.
func Decide(computerPath, userPath Path) Outcome {
	switch {
	case len(computerPath) > 0 && len(userPath) > 0:
		if len(computerPath) > len(userPath) {
			return OutcomeComputerWins
		}
		if len(computerPath) < len(userPath) {
			return OutcomeUserWins
		}
		return OutcomeTie
	case len(userPath) > 0:
		return OutcomeUserWins
	case len(computerPath) > 0:
		return OutcomeComputerWins
	default:
		return OutcomeNobody
	}
}
