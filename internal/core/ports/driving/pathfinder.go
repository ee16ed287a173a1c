package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
)

// PathFinderService finds link chains between topics. It is the sole
// interface the CLI and game loop consume from the core.
type PathFinderService interface {
	// FindPath returns a validated path from start to end, or an empty
	// path when none was found within budget. "No path" is an expected
	// outcome, never an error: FindPath has no error return by design.
	FindPath(ctx context.Context, start, end domain.Topic, budget time.Duration) domain.Path
}
