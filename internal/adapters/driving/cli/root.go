package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/wikihop-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wikihop-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikihop-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/wikihop-cli/internal/connectors/wikipedia"
	"github.com/custodia-labs/wikihop-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wikihop-cli/internal/core/services"
	"github.com/custodia-labs/wikihop-cli/internal/logger"
)

// DefaultTimeBudget is the per-search wall-clock budget when neither the
// config file nor a flag overrides it.
const DefaultTimeBudget = 15 * time.Second

var (
	verboseFlag bool
	configDir   string
	dataDir     string

	version = "dev"

	// Wired services, shared by the commands.
	configStore driven.ConfigStore
	linkStore   *sqlite.Store
	linkSource  driven.LinkSource
	linkCache   *services.LinkCache
	pathFinder  *services.PathFinder
	gameService *services.GameService
)

var rootCmd = &cobra.Command{
	Use:   "wikihop",
	Short: "Find short link chains between Wikipedia topics",
	Long: `Wikihop finds a short chain of hyperlinks connecting two Wikipedia
topics under a hard time budget, and verifies that every hop in the
returned chain is a real link. Lookups are cached in memory and in a
local SQLite database, so repeated searches get faster.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

// Execute runs the root command.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.wikihop)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "cache database directory (default ~/.wikihop/data)")
}

// setup wires the engine: config, cache tiers, connector, services.
// Commands that need no engine (version) skip it.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if cmd.Name() == "version" {
		return nil
	}

	var err error
	configStore, err = configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	if dataDir == "" {
		dataDir = configStore.GetString(configfile.KeyDataDir)
	}
	linkStore, err = sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening link store: %w", err)
	}

	client := wikipedia.NewClient(wikipedia.Options{
		APIURL:    configStore.GetString(configfile.KeyAPIURL),
		UserAgent: configStore.GetString(configfile.KeyUserAgent),
	})
	linkSource = wikipedia.NewResolver(client)

	linkCache = services.NewLinkCache(
		linkSource,
		linkStore,
		memory.NewRecentStore(memory.DefaultRecentCapacity),
		memory.NewHotStore(memory.DefaultHotCapacity),
	)
	validator := services.NewPathValidator(linkCache)
	shortcut := services.NewShortcutFinder(linkCache, validator)
	search := services.NewBoundedSearch(linkCache, validator, shortcut)
	pathFinder = services.NewPathFinder(linkSource, linkCache, validator, search)
	gameService = services.NewGameService(pathFinder, linkCache, linkSource, loadWords())

	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if linkStore != nil {
		linkStore.Close()
	}
	if linkSource != nil {
		linkSource.Close()
	}
}

// loadWords reads the configured dictionary, falling back to the
// built-in word list when none is configured or readable.
func loadWords() []string {
	path := configStore.GetString(configfile.KeyDictionaryPath)
	if path == "" {
		return nil
	}
	words, err := services.LoadDictionary(path)
	if err != nil {
		logger.Warn("Dictionary %s unreadable, using built-in words: %v", path, err)
		return nil
	}
	return words
}

// timeBudget resolves the search budget: flag seconds if positive, else
// the configured default, else DefaultTimeBudget.
func timeBudget(flagSeconds int) time.Duration {
	if flagSeconds > 0 {
		return time.Duration(flagSeconds) * time.Second
	}
	if s := configStore.GetInt(configfile.KeyTimeBudgetSeconds); s > 0 {
		return time.Duration(s) * time.Second
	}
	return DefaultTimeBudget
}
