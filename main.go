package main

import (
	"os"

	"github.com/metaclub/clubos-pitch/cli"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
