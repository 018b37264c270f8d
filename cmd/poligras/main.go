// Command poligras is the CLI entry point: fit the merge engine, encode the
// summary, and maintain it under a stream of edge updates.
package main

import "github.com/katalvlaran/poligras/internal/cli"

func main() {
	cli.Execute()
}
