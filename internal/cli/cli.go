// Package cli implements the stepdoc command-line interface.
//
// stepdoc reads a graph in the text format (or its JSON form), runs a
// traversal over it and writes one PDF page per step. The CLI is built
// using cobra and logs with charmbracelet/log.
//
// # Commands
//
//   - render: draw a graph, optionally running an algorithm
//   - traverse bfs|dfs|dijkstra: write a step document for one traversal
//   - distances: print the shortest path table from a start node
//   - export: write the graph as DOT, SVG or JSON
//   - fonts: list the builtin fonts
//   - cache: manage the document cache
//   - serve: run the HTTP API
//   - completion: generate shell completions
//
// # Configuration
//
// Defaults come from $XDG_CONFIG_HOME/stepdoc/config.toml or the file
// named by --config. Flags given on the command line win over the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context and carry a per-run id.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stepdoc/pkg/buildinfo"
	"github.com/matzehuels/stepdoc/pkg/cache"
	"github.com/matzehuels/stepdoc/pkg/observability"
	"github.com/matzehuels/stepdoc/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "stepdoc"

	// Environment variables consulted for backend endpoints.
	envCacheURL = "STEPDOC_REDIS_URL"
	envMongoURI = "STEPDOC_MONGO_URI"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Status lines and tables go here; logs
	// go to the logger.
	Out io.Writer

	verbose    bool
	configPath string
	cacheURL   string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "stepdoc renders graph algorithms as step-by-step PDF documents",
		Long: `stepdoc reads a graph, runs breadth-first search, depth-first search or
Dijkstra's shortest paths over it and writes a PDF with one page per step.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.preRun,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.configPath, "config", "", "config file (default: "+displayConfigPath()+")")
	pf.StringVar(&c.cacheURL, "cache-url", os.Getenv(envCacheURL), "document cache: file, file:///dir, redis://host:port/db or none (env "+envCacheURL+")")
	pf.BoolVar(&c.noCache, "no-cache", false, "disable the document cache")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.traverseCommand())
	root.AddCommand(c.distancesCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.fontsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// preRun sets the log level and gives the run its own logger.
func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	level := LogInfo
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	logger := c.Logger.With("run", uuid.NewString()[:8])
	if c.verbose {
		observability.NewLogHooks(logger).Register()
	}
	cmd.SetContext(withLogger(cmd.Context(), logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	cc, err := c.openCache(ctx)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if _, shared := cc.(*cache.RedisCache); shared {
		// Releases sharing one Redis database must not serve each other's documents.
		keyer = cache.NewScopedKeyer(nil, appName+"-"+buildinfo.Version+":")
	}
	return pipeline.NewRunner(cc, keyer, loggerFromContext(ctx)), nil
}

func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	cc, err := cache.Open(ctx, c.cacheURL)
	if err != nil && c.cacheURL == "" {
		// An unusable default cache directory only disables caching.
		loggerFromContext(ctx).Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cc, err
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the local document cache directory (~/.cache/stepdoc/).
func cacheDir() (string, error) {
	return cache.DefaultDir()
}

func displayConfigPath() string {
	p, err := pipeline.DefaultConfigPath()
	if err != nil {
		return "$XDG_CONFIG_HOME/" + appName + "/" + pipeline.ConfigFileName
	}
	return p
}
