package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/internal/common"
	"github.com/katalvlaran/roadnet/internal/config"
	"github.com/katalvlaran/roadnet/metrics"
	"github.com/katalvlaran/roadnet/navigator"
	"github.com/katalvlaran/roadnet/roadfile"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd := createRootCommand(ctx, newInput(cfg), version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// session carries what PersistentPreRunE prepared for a subcommand.
type session struct {
	graph   *core.Graph
	service *navigator.Service
	metrics *metrics.Collector
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	s := &session{}
	rootCmd := &cobra.Command{
		Use:               "roadnet",
		Short:             "Plan vehicle routes and deliveries on a city road network.",
		Long:              "roadnet finds the fastest route between intersections for a vehicle class and plans multi-stop delivery tours.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: setup(ctx, input, s),
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if input.metricsFile == "" || s.metrics == nil {
				return nil
			}
			return s.metrics.Write(input.metricsFile)
		},
	}
	addGlobalFlags(rootCmd.PersistentFlags(), input)

	rootCmd.AddCommand(
		newPathCommand(input, s),
		newDeliverCommand(input, s),
		newTourCommand(input, s),
		newRoadsCommand(s),
		newVehiclesCommand(),
		newGenerateCommand(input),
	)

	return rootCmd
}

// setup builds the logger, loads the network and wires the navigator service.
func setup(ctx context.Context, input *Input, s *session) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		level := input.logLevel
		if input.verbose {
			level = logrus.DebugLevel.String()
		}
		logger, err := common.NewLogger(level, input.logFormat)
		if err != nil {
			return fmt.Errorf("log level %q: %w", level, err)
		}
		logger.SetOutput(cmd.ErrOrStderr())
		cmd.SetContext(common.WithLogger(ctx, logger))

		// generate and vehicles need no network
		if cmd.Annotations[annotationNoGraph] == "true" {
			return nil
		}

		g, err := loadGraph(input.graphPath)
		if err != nil {
			return err
		}
		stats := g.Stats()
		logger.WithFields(logrus.Fields{
			"source":  graphSource(input.graphPath),
			"nodes":   stats.NodeCount,
			"roads":   stats.EdgeCount,
			"damaged": stats.DamagedCount,
		}).Debug("road network loaded")

		s.graph = g
		s.metrics = metrics.NewCollector()
		s.service, err = navigator.New(g,
			navigator.WithExactLimit(input.exactLimit),
			navigator.WithMetrics(s.metrics),
		)
		return err
	}
}

// addGlobalFlags registers the flags shared by every command.
func addGlobalFlags(flags *pflag.FlagSet, input *Input) {
	flags.StringVarP(&input.graphPath, "graph", "g", input.graphPath, "road network YAML file (default: built-in demo network)")
	flags.BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&input.logLevel, "log-level", input.logLevel, "log level (trace, debug, info, warn, error)")
	flags.StringVar(&input.logFormat, "log-format", input.logFormat, "log format (text, json)")
	flags.IntVar(&input.exactLimit, "exact-limit", input.exactLimit, "largest delivery set planned exactly")
	flags.StringVar(&input.metricsFile, "metrics-file", "", "write query metrics in Prometheus text format to this file")
}

const annotationNoGraph = "roadnet/no-graph"

func loadGraph(path string) (*core.Graph, error) {
	if path == "" {
		return builder.FixedDemo(), nil
	}
	return roadfile.Load(path)
}

func graphSource(path string) string {
	if path == "" {
		return "demo"
	}
	return path
}
