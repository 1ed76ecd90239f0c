package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gresta/core"
	"github.com/katalvlaran/gresta/dfs"
)

// ExampleRun explores a dependency tree to full depth before moving to
// the next sibling.
func ExampleRun() {
	g := core.New[string, core.None]()
	app := g.AddNode("app")
	lib := g.AddNode("lib")
	codec := g.AddNode("codec")
	tools := g.AddNode("tools")
	g.AddEdge(app, lib, core.None{})
	g.AddEdge(app, tools, core.None{})
	g.AddEdge(lib, codec, core.None{})

	res, err := dfs.Run(g, app)
	if err != nil {
		fmt.Println("run:", err)
		return
	}

	var v core.NodeID
	for _, v = range res.Order {
		name, _ := g.NodeWeight(v)
		fmt.Println(name)
	}
	// Output:
	// app
	// lib
	// codec
	// tools
}

// ExampleWithOnExit collects nodes in finish order, the reverse
// dependency order of the tree above.
func ExampleWithOnExit() {
	g := core.NewWithNodes[core.None, core.None](3)
	g.AddEdge(0, 1, core.None{})
	g.AddEdge(1, 2, core.None{})

	var finished []core.NodeID
	_, _ = dfs.RunIterative(g, 0, dfs.WithOnExit(func(id core.NodeID) error {
		finished = append(finished, id)

		return nil
	}))
	fmt.Println(finished)
	// Output: [2 1 0]
}
