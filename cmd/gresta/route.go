package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gresta/core"
	"github.com/katalvlaran/gresta/dijkstra"
)

// routeCmd reproduces the commute scenario: the direct road is pricier
// than the detour through School.
var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Plan the cheapest commute on a small road map",
	Long: `route runs Dijkstra over a weighted road map:

	Home → Work      25   (direct)
	Home → School     5
	Home → Store      3
	School → Work    13
	School → Park     2
	Store → Park      4
	Park → Work      12
	Airport → Work   30

and prints the cheapest cost and route from Home to every destination.
The Airport only has an outbound road, so no route reaches it.`,
	Args: cobra.NoArgs,
	RunE: runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	// 1) Build the road map. Node weights carry the place names.
	g := core.New[string, int]()
	home := g.AddNode("Home")
	school := g.AddNode("School")
	work := g.AddNode("Work")
	store := g.AddNode("Store")
	park := g.AddNode("Park")
	airport := g.AddNode("Airport")

	roads := []struct {
		from, to core.NodeID
		cost     int
	}{
		{home, work, 25},
		{home, school, 5},
		{home, store, 3},
		{school, work, 13},
		{school, park, 2},
		{store, park, 4},
		{park, work, 12},
		{airport, work, 30},
	}
	for _, road := range roads {
		if _, err := g.AddEdge(road.from, road.to, road.cost); err != nil {
			return fmt.Errorf("adding road: %w", err)
		}
	}
	slog.Debug("road map ready", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	// 2) Search from Home.
	res, err := dijkstra.RunNumeric(g, home)
	if err != nil {
		return fmt.Errorf("route search: %w", err)
	}

	// 3) One row per destination; the commute row is the headline.
	t := newTable("Destination", "Cost", "Route")
	for v := core.NodeID(0); int(v) < g.NodeCount(); v++ {
		if v == home {
			continue
		}
		name, _ := g.NodeWeight(v)
		if !res.IsReachable(v) {
			t.AppendRow(table.Row{name, "-", "-"})
			continue
		}
		cost, _ := res.DistanceTo(v)
		route := routeString(g, res.PathTo(v))
		if v == work {
			route = highlight(route)
		}
		t.AppendRow(table.Row{name, cost, route})
	}
	t.Render()

	return nil
}

// routeString joins the path's place names with arrows.
func routeString(g *core.Graph[string, int], path []core.NodeID) string {
	names := make([]string, 0, len(path))
	for _, v := range path {
		name, _ := g.NodeWeight(v)
		names = append(names, name)
	}

	return strings.Join(names, " → ")
}
