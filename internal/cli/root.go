// Package cli wires the campusnav command tree.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/graphio"
	"github.com/katalvlaran/campusnav/internal/config"
	"github.com/katalvlaran/campusnav/internal/logging"
	"github.com/katalvlaran/campusnav/internal/store"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	// flag values; applied over cfg only when set on the command line
	dbPath    string
	graphPath string
	logLevel  string
	logFormat string
}

// NewRootCommand builds a fresh command tree writing results to out.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "campusnav",
		Short:         "Shortest routes, reachability and spanning trees over a campus map",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.dbPath, "db", "", "path to the SQLite database (env "+config.EnvDB+")")
	pf.StringVar(&a.graphPath, "graph", "", "YAML/JSON graph document; default is the built-in campus (env "+config.EnvGraph+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console|json")

	root.AddCommand(
		a.pathCmd(),
		a.treeCmd(),
		a.reachCmd(),
		a.mstCmd(),
		a.componentsCmd(),
		a.hopsCmd(),
		a.validateCmd(),
		a.exportCmd(),
		a.userCmd(),
		a.routeCmd(),
	)

	return root
}

// setup resolves config (env, .env, then flags) and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil && cfg == nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = a.dbPath
	}
	if flags.Changed("graph") {
		cfg.GraphPath = a.graphPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.logger = logger

	return nil
}

// loadGraph returns the graph selected by config: a document file, a Neo4j
// database, or the built-in campus.
func (a *app) loadGraph(ctx context.Context) (*core.Graph, error) {
	switch {
	case a.cfg.GraphPath != "":
		a.logger.Debug("loading graph document", zap.String("path", a.cfg.GraphPath))
		return graphio.LoadFile(a.cfg.GraphPath)
	case a.cfg.Neo4jEnabled():
		a.logger.Debug("loading graph from neo4j", zap.String("uri", a.cfg.Neo4jURI))
		src, err := graphio.OpenNeo4j(ctx, graphio.Neo4jOptions{
			URI:      a.cfg.Neo4jURI,
			Database: a.cfg.Neo4jDatabase,
			Username: a.cfg.Neo4jUser,
			Password: a.cfg.Neo4jPassword,
		})
		if err != nil {
			return nil, err
		}
		defer src.Close(ctx)
		return src.Load(ctx)
	default:
		return campus.Load()
	}
}

// openStore opens the configured database; the caller closes it.
func (a *app) openStore(ctx context.Context) (*store.DB, error) {
	a.logger.Debug("opening database", zap.String("path", a.cfg.DBPath))
	return store.OpenDB(ctx, a.cfg.DBPath)
}
