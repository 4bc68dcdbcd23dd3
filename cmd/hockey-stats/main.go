package main

import "github.com/pfrederiksen/hockey-stats/internal/cli"

func main() {
	cli.Execute()
}
