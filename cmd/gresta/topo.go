package main

import (
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gresta/core"
	"github.com/katalvlaran/gresta/topo"
)

var (
	topoUseDFS      bool
	topoInjectCycle bool
)

// topoCmd schedules a build pipeline and prints the resulting order.
var topoCmd = &cobra.Command{
	Use:   "topo",
	Short: "Schedule a build pipeline topologically",
	Long: `topo sorts a fixed build pipeline:

	checkout → compile → test ─┐
	              │            ├→ package → release
	              └──→ lint ───┘

--cycle adds a release → compile edge, turning the pipeline into a
loop: the sort then reports the cycle and schedules only the tasks
that do not depend on it.`,
	Args: cobra.NoArgs,
	RunE: runTopo,
}

func init() {
	topoCmd.Flags().BoolVar(&topoUseDFS, "dfs", false, "use the depth-first variant instead of Kahn")
	topoCmd.Flags().BoolVar(&topoInjectCycle, "cycle", false, "add a release → compile edge")
	rootCmd.AddCommand(topoCmd)
}

func runTopo(cmd *cobra.Command, args []string) error {
	// 1) Build the pipeline, optionally closing the loop.
	g, err := buildPipeline(topoInjectCycle)
	if err != nil {
		return err
	}
	slog.Debug("pipeline ready", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "cycle", topoInjectCycle)

	// 2) Sort with the requested variant.
	var res *topo.Result
	if topoUseDFS {
		res, err = topo.SortDFS(g)
	} else {
		res, err = topo.Sort(g)
	}
	if err != nil {
		return fmt.Errorf("toposort: %w", err)
	}

	// 3) Print the schedule, then the cycle verdict.
	t := newTable("Step", "Task")
	for i, v := range res.Order {
		name, _ := g.NodeWeight(v)
		t.AppendRow(table.Row{i + 1, name})
	}
	t.Render()

	if res.HasCycles {
		stuck := g.NodeCount() - len(res.Order)
		fmt.Println(warn(fmt.Sprintf("cycles: %d tasks wait on each other", stuck)))
	} else {
		fmt.Println("cycles: none")
	}

	return nil
}

// buildPipeline builds the fixture shown in the command help. With
// injectCycle the release task feeds back into compile.
func buildPipeline(injectCycle bool) (*core.Graph[string, core.None], error) {
	g := core.New[string, core.None]()
	checkout := g.AddNode("checkout")
	compile := g.AddNode("compile")
	test := g.AddNode("test")
	lint := g.AddNode("lint")
	pack := g.AddNode("package")
	release := g.AddNode("release")

	steps := []struct{ from, to core.NodeID }{
		{checkout, compile},
		{compile, test}, {compile, lint},
		{test, pack}, {lint, pack},
		{pack, release},
	}
	if injectCycle {
		steps = append(steps, struct{ from, to core.NodeID }{release, compile})
	}
	for _, s := range steps {
		if _, err := g.AddEdge(s.from, s.to, core.None{}); err != nil {
			return nil, fmt.Errorf("adding pipeline step: %w", err)
		}
	}

	return g, nil
}
