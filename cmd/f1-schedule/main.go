package main

import "github.com/pfrederiksen/f1-schedule/internal/cli"

var version = "dev"

func main() {
	cli.Version = version
	cli.Execute()
}
