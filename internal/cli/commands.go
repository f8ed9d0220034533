package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/internal/common"
	"github.com/katalvlaran/roadnet/roadfile"
	"github.com/katalvlaran/roadnet/tsp"
	"github.com/katalvlaran/roadnet/vehicle"
)

func newPathCommand(input *Input, s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path START END",
		Short: "Find the fastest route between two intersections for a vehicle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseNodes(args)
			if err != nil {
				return err
			}
			v, err := vehicle.Lookup(input.pathVehicle)
			if err != nil {
				return err
			}
			res, err := s.service.FindPath(cmd.Context(), v.Name(), ids[0], ids[1])
			if err != nil {
				return err
			}
			printPath(cmd.OutOrStdout(), s.graph, v, ids[0], ids[1], res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input.pathVehicle, "vehicle", "t", "car", "vehicle class (bike, car, three_wheeler, lorry)")

	return cmd
}

func newDeliverCommand(input *Input, s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliver DELIVERY...",
		Short: "Order deliveries from a start intersection with the lowest total time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := tsp.ParseMode(input.mode)
			if err != nil {
				return err
			}
			return runRoute(cmd, input, s, args, mode)
		},
	}
	cmd.Flags().IntVarP(&input.start, "start", "s", 0, "start intersection")
	cmd.Flags().StringVarP(&input.mode, "mode", "m", tsp.ModeExact.String(), "optimization mode (exact, heuristic)")
	cmd.Flags().StringVarP(&input.routeVehicle, "vehicle", "t", "", "only use roads this vehicle class may travel on")

	return cmd
}

func newTourCommand(input *Input, s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tour [STOP...]",
		Short: "Build a nearest-neighbor tour from the start through the stops (default: every intersection)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, input, s, args, tsp.ModeHeuristic)
		},
	}
	cmd.Flags().IntVarP(&input.start, "start", "s", 0, "start intersection")
	cmd.Flags().StringVarP(&input.routeVehicle, "vehicle", "t", "", "only use roads this vehicle class may travel on")

	return cmd
}

func runRoute(cmd *cobra.Command, input *Input, s *session, args []string, mode tsp.Mode) error {
	stops, err := parseNodes(args)
	if err != nil {
		return err
	}
	var opts []tsp.Option
	if input.routeVehicle != "" {
		v, err := vehicle.Lookup(input.routeVehicle)
		if err != nil {
			return err
		}
		opts = append(opts, tsp.WithVehicle(v))
	}

	start := core.NodeID(input.start)
	common.Logger(cmd.Context()).Debugf("planning %s route from %d over %v", mode, start, stops)
	res, err := s.service.PlanRoute(cmd.Context(), start, stops, mode, opts...)
	if err != nil {
		return err
	}
	printRoute(cmd.OutOrStdout(), start, res)
	return nil
}

func newRoadsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "roads",
		Short: "List every road with its condition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printRoads(cmd.OutOrStdout(), "Road conditions:", s.graph.Edges(), "Undamaged")
			return nil
		},
	}
}

func newVehiclesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "vehicles",
		Short:       "List the vehicle classes",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoGraph: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			printVehicles(cmd.OutOrStdout(), vehicle.Catalog())
			return nil
		},
	}
}

func newGenerateCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "generate",
		Short:       "Generate a random road network as YAML",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoGraph: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := builder.RandomRoads(input.nodes, input.roads, builder.WithSeed(input.seed))
			if err != nil {
				return err
			}
			common.Logger(cmd.Context()).WithField("roads", g.EdgeCount()).Debug("network generated")
			if input.output == "" || input.output == "-" {
				return roadfile.Encode(cmd.OutOrStdout(), g)
			}
			if err := roadfile.Save(input.output, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d intersections and %d roads to %s\n", g.NodeCount(), g.EdgeCount(), input.output)
			return nil
		},
	}
	cmd.Flags().IntVarP(&input.nodes, "nodes", "n", 10, "number of intersections")
	cmd.Flags().IntVarP(&input.roads, "roads", "r", 20, "number of roads to attempt")
	cmd.Flags().Int64Var(&input.seed, "seed", input.seed, "random seed")
	cmd.Flags().StringVarP(&input.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func parseNodes(args []string) ([]core.NodeID, error) {
	ids := make([]core.NodeID, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("intersection %q: not a number", a)
		}
		ids = append(ids, core.NodeID(n))
	}
	return ids, nil
}

