package main

import "github.com/katalvlaran/oocgraph/cmd/oocgraph/commands"

func main() {
	commands.Execute()
}
