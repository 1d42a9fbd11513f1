package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stepdoc/internal/server"
	"github.com/matzehuels/stepdoc/pkg/pipeline"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		mongoURI string
		mongoDB  string
		maxBody  int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

  POST /v1/render            draw a graph (?algorithm= runs a traversal)
  POST /v1/traverse/{algo}   bfs, dfs or dijkstra
  POST /v1/distances         shortest path distances as JSON
  GET  /v1/documents/{id}    fetch an archived PDF
  GET  /healthz              liveness

Rendered documents are archived in memory, or in MongoDB with --mongo-uri.
Documents are cached with --cache-url as for the other commands; use a
redis:// URL to share the cache between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, mongoURI, mongoDB, maxBody)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", os.Getenv(envMongoURI), "MongoDB URI for the document archive (env "+envMongoURI+")")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", server.DefaultMongoDatabase, "MongoDB database")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBody, "maximum request body in bytes")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, mongoURI, mongoDB string, maxBody int64) error {
	logger := loggerFromContext(ctx)

	defaults, err := pipeline.LoadConfig(c.configPath)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var archive server.Archive
	if mongoURI != "" {
		ma, err := server.NewMongoArchive(ctx, mongoURI, mongoDB)
		if err != nil {
			return err
		}
		archive = ma
		logger.Info("archiving to mongo", "database", mongoDB)
	}

	srv := server.New(server.Config{
		Runner:   runner,
		Archive:  archive,
		Defaults: defaults,
		Logger:   logger,
		MaxBody:  maxBody,
	})
	return srv.ListenAndServe(ctx, addr)
}
