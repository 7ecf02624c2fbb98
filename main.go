package main

import (
	"os"

	"github.com/opus10/footing-hooks/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
