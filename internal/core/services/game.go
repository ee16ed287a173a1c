package services

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
	"github.com/custodia-labs/wikihop-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wikihop-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wikihop-cli/internal/logger"
)

const (
	// wellConnectedThreshold is the reference count above which a page is
	// considered well-connected enough to be the computer's pick.
	wellConnectedThreshold = 50

	// wellConnectedAttempts bounds the hunt for a well-connected page.
	wellConnectedAttempts = 5

	// randomPageAttempts bounds the hunt for any resolvable page.
	randomPageAttempts = 10
)

// fallbackWords seeds the game when no dictionary file is configured.
// Deliberately common, well-connected nouns.
var fallbackWords = []string{
	"music", "history", "science", "mountain", "river", "city",
	"animal", "language", "country", "computer", "ocean", "energy",
}

// GameService runs WikiHop rounds: pick a random starting page, let the
// computer pick a well-connected page, let the user name one, then race
// both through the path finder. The longer valid chain wins.
type GameService struct {
	finder driving.PathFinderService
	cache  *LinkCache
	source driven.LinkSource
	words  []string
	rng    *rand.Rand
}

// NewGameService creates a game service. The word list seeds random page
// selection; pass nil to use the built-in fallback list.
func NewGameService(finder driving.PathFinderService, cache *LinkCache, source driven.LinkSource, words []string) *GameService {
	if len(words) == 0 {
		words = fallbackWords
	}
	return &GameService{
		finder: finder,
		cache:  cache,
		source: source,
		words:  words,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// LoadDictionary reads a word list file, one word per line, skipping
// blanks. A missing file is an error; callers decide whether to fall
// back to the built-in list.
func LoadDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return words, nil
}

// RandomPage resolves a random dictionary word to a page.
func (g *GameService) RandomPage(ctx context.Context) (*domain.Page, error) {
	var lastErr error
	for i := 0; i < randomPageAttempts; i++ {
		word := g.words[g.rng.Intn(len(g.words))]
		page, err := g.source.Resolve(ctx, word)
		if err == nil {
			return page, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("no random page resolved: %w", lastErr)
}

// WellConnectedPage resolves a random page with more than
// wellConnectedThreshold filtered references, retrying a few times and
// settling for any resolvable page when the hunt fails.
func (g *GameService) WellConnectedPage(ctx context.Context) (*domain.Page, error) {
	for i := 0; i < wellConnectedAttempts; i++ {
		page, err := g.RandomPage(ctx)
		if err != nil {
			return nil, err
		}
		if len(g.cache.References(ctx, page.Title)) > wellConnectedThreshold {
			return page, nil
		}
		logger.Debug("%q too sparsely linked, retrying", page.Title)
	}
	return g.RandomPage(ctx)
}

// PlayRound computes both players' paths from the start page and decides
// the winner.
func (g *GameService) PlayRound(ctx context.Context, start, computer, user *domain.Page, budget time.Duration) *domain.Round {
	round := &domain.Round{
		ID:       uuid.NewString(),
		Start:    start,
		Computer: computer,
		User:     user,
	}

	logger.Section("Round " + round.ID)
	round.ComputerPath = g.finder.FindPath(ctx, start.Title, computer.Title, budget)
	round.UserPath = g.finder.FindPath(ctx, start.Title, user.Title, budget)
	round.Outcome = domain.Decide(round.ComputerPath, round.UserPath)
	return round
}
