package main

import (
	"os"

	"github.com/hbjs97/pyactivate/internal/cli"
)

func main() {
	app := cli.NewApp()
	cmd := app.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		app.Reporter().Error("%v", err)
		os.Exit(int(cli.MapExitCode(err)))
	}
}
