package main

import "github.com/katalvlaran/pathgrid/cmd/pathgrid/commands"

func main() {
	commands.Execute()
}
