package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/foxtheme/cli/cmd"
)

var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		cmd.RootCmd,
		fang.WithVersion(version),
	); err != nil {
		os.Exit(1)
	}
}
