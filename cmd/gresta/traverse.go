package main

import (
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gresta/bfs"
	"github.com/katalvlaran/gresta/core"
	"github.com/katalvlaran/gresta/dfs"
)

const (
	algoBFS = "bfs"
	algoDFS = "dfs"
)

var (
	traverseAlgo     string
	traverseMaxDepth int
)

// traverseCmd walks a small package dependency tree and prints the
// visit order of the chosen traversal.
var traverseCmd = &cobra.Command{
	Use:   "traverse",
	Short: "Walk a dependency tree level by level or depth first",
	Long: `traverse visits a fixed package dependency tree:

	        app
	       /   \
	     api    ui
	      |    /  \
	   auth render state
	           |
	         fonts

bfs visits it level by level, dfs descends each branch before moving
to the next one.`,
	Args: cobra.NoArgs,
	RunE: runTraverse,
}

func init() {
	traverseCmd.Flags().StringVar(&traverseAlgo, "algo", algoBFS, "traversal to run: bfs or dfs")
	traverseCmd.Flags().IntVar(&traverseMaxDepth, "max-depth", 0, "deepest level to visit (0 = unlimited)")
	rootCmd.AddCommand(traverseCmd)
}

func runTraverse(cmd *cobra.Command, args []string) error {
	// 1) Build the fixture tree.
	g, err := dependencyTree()
	if err != nil {
		return err
	}
	slog.Debug("dependency tree ready", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	// 2) Run the chosen traversal from the root package.
	var (
		order  []core.NodeID
		depth  []int
		parent []core.NodeID
	)
	switch traverseAlgo {
	case algoBFS:
		var opts []bfs.Option
		if traverseMaxDepth > 0 {
			opts = append(opts, bfs.WithMaxDepth(traverseMaxDepth))
		}
		res, err := bfs.Run(g, 0, opts...)
		if err != nil {
			return fmt.Errorf("bfs: %w", err)
		}
		order, depth, parent = res.Order, res.Depth, res.Parent
	case algoDFS:
		var opts []dfs.Option
		if traverseMaxDepth > 0 {
			opts = append(opts, dfs.WithMaxDepth(traverseMaxDepth))
		}
		res, err := dfs.Run(g, 0, opts...)
		if err != nil {
			return fmt.Errorf("dfs: %w", err)
		}
		order, depth, parent = res.Order, res.Depth, res.Parent
	default:
		return fmt.Errorf("unknown algorithm %q (want %s or %s)", traverseAlgo, algoBFS, algoDFS)
	}

	// 3) One row per visited package, in visit order.
	t := newTable("#", "Package", "Depth", "Required by")
	for i, v := range order {
		name, _ := g.NodeWeight(v)
		requiredBy := "-"
		if parent[v] != v {
			requiredBy, _ = g.NodeWeight(parent[v])
		}
		t.AppendRow(table.Row{i + 1, name, depth[v], requiredBy})
	}
	t.Render()

	return nil
}

// dependencyTree builds the fixed fixture shown in the command help.
func dependencyTree() (*core.Graph[string, core.None], error) {
	g := core.New[string, core.None]()
	app := g.AddNode("app")
	api := g.AddNode("api")
	ui := g.AddNode("ui")
	auth := g.AddNode("auth")
	render := g.AddNode("render")
	state := g.AddNode("state")
	fonts := g.AddNode("fonts")

	deps := []struct{ from, to core.NodeID }{
		{app, api}, {app, ui},
		{api, auth},
		{ui, render}, {ui, state},
		{render, fonts},
	}
	for _, d := range deps {
		if _, err := g.AddEdge(d.from, d.to, core.None{}); err != nil {
			return nil, fmt.Errorf("adding dependency: %w", err)
		}
	}

	return g, nil
}
