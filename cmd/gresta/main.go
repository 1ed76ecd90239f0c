// gresta is the demo CLI for the graph library: plan a route, walk a
// graph level by level or depth first, schedule a DAG, and generate
// reproducible shapes.
package main

func main() {
	Execute()
}
