package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/pathfind"
	"github.com/katalvlaran/roadnet/tsp"
	"github.com/katalvlaran/roadnet/vehicle"
)

func num(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func joinNodes(ids []core.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, " → ")
}

func condition(damaged bool, normal string) string {
	if damaged {
		return "Damaged"
	}
	return normal
}

func printPath(w io.Writer, g *core.Graph, v vehicle.Vehicle, start, end core.NodeID, res pathfind.Result) {
	if !res.Found() {
		fmt.Fprintln(w, "No valid route exists between the selected intersections.")
		switch res.Failure {
		case pathfind.FailureNoPath:
			fmt.Fprintf(w, "Reason: There is no path connecting intersection %d to intersection %d.\n", start, end)
		case pathfind.FailureIneligible:
			fmt.Fprintf(w, "Reason: The roads available are not suitable for the %s.\n", v.Class.Title())
			fmt.Fprintln(w, "Ensure that your vehicle can travel on the available road conditions.")
			fmt.Fprintln(w)
			printRoads(w, "Nearby roads for reference:", g.EdgesTouching(start, end), "Normal")
		}
		return
	}

	fmt.Fprintf(w, "Best delivery route for %s:\n", v.Class.Title())
	fmt.Fprintf(w, "Path: %s\n", joinNodes(res.Nodes))
	fmt.Fprintf(w, "Total estimated time: %.1f minutes\n", res.TotalTime)
	if len(res.Steps) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Detailed route information:")
	for _, s := range res.Steps {
		fmt.Fprintf(w, "From %d to %d:\n", s.From, s.To)
		fmt.Fprintf(w, "  Distance: %s km\n", num(s.Distance))
		fmt.Fprintf(w, "  Traffic delay: %s minutes\n", num(s.Delay))
		fmt.Fprintf(w, "  Road condition: %s\n", condition(s.Damaged, "Normal"))
		fmt.Fprintf(w, "  Road suitable for: %s\n", s.RoadClass.Title())
		fmt.Fprintf(w, "  Your vehicle type: %s\n", s.Selected.Title())
		fmt.Fprintf(w, "  Time: %.1f minutes\n", s.Time)
		fmt.Fprintln(w)
	}
}

func printRoute(w io.Writer, start core.NodeID, res tsp.Result) {
	if !res.Complete() {
		fmt.Fprintf(w, "No %s route from intersection %d covers every stop.\n", res.Mode, start)
		fmt.Fprintf(w, "Unreachable: %s\n", joinNodes(res.Unreachable))
		return
	}
	fmt.Fprintf(w, "Best route from intersection %d to the delivery points (%s):\n", start, res.Mode)
	fmt.Fprintf(w, "Path: %s\n", joinNodes(res.Stops))
	fmt.Fprintf(w, "Total estimated time: %.1f minutes\n", res.TotalTime)
	fmt.Fprintf(w, "Total distance: %s km\n", num(res.TotalDistance))
	fmt.Fprintf(w, "Orderings evaluated: %d\n", res.Evaluated)
}

func printRoads(w io.Writer, title string, edges []core.Edge, normal string) {
	fmt.Fprintln(w, title)
	for _, e := range edges {
		fmt.Fprintf(w, "From %d to %d: %s road, Distance: %s km, Traffic delay: %s minutes\n",
			e.From, e.To, condition(e.Damaged, normal), num(e.Distance), num(e.Delay))
	}
}

func printVehicles(w io.Writer, catalog []vehicle.Vehicle) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPENALTY\tMAX DISTANCE\tDAMAGED ROADS")
	for _, v := range catalog {
		damaged := "no"
		if v.CanTravelOnDamaged {
			damaged = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Name(), num(v.PenaltyFactor), num(v.MaxDistance), damaged)
	}
	tw.Flush()
}
