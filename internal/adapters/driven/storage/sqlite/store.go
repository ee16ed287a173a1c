package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/wikihop-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
	"github.com/custodia-labs/wikihop-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.LinkStore = (*Store)(nil)

// Store is the durable cache tier, backed by SQLite. Concurrent workers
// share the *sql.DB pool; each call checks out its own pooled connection,
// so no handle is ever shared across goroutines mid-query. WAL mode keeps
// concurrent readers and the single writer from blocking each other.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite link store under the specified data
// directory. If dataDir is empty, defaults to ~/.wikihop/data/links.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".wikihop", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "links.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get retrieves the stored record for a topic.
func (s *Store) Get(ctx context.Context, topic domain.Topic) (*domain.CacheRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT links, fetched_at FROM pages WHERE name = ?`, topic)

	var linksJSON string
	var fetchedAt time.Time
	if err := row.Scan(&linksJSON, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning page: %w", err)
	}

	var refs []domain.Topic
	if err := json.Unmarshal([]byte(linksJSON), &refs); err != nil {
		return nil, fmt.Errorf("unmarshaling links: %w", err)
	}
	return &domain.CacheRecord{
		Topic:      topic,
		References: refs,
		FetchedAt:  fetchedAt,
	}, nil
}

// Put stores or replaces the record for a topic.
func (s *Store) Put(ctx context.Context, record *domain.CacheRecord) error {
	refs := record.References
	if refs == nil {
		refs = []domain.Topic{}
	}
	linksJSON, err := json.Marshal(refs)
	if err != nil {
		return fmt.Errorf("marshalling links: %w", err)
	}

	fetchedAt := record.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pages (name, links, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			links = excluded.links,
			fetched_at = excluded.fetched_at
	`, record.Topic, string(linksJSON), fetchedAt)

	if err != nil {
		return fmt.Errorf("saving page: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}
	return n, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
