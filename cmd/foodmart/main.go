package main

import (
	"os"

	"github.com/dev-mike-s/foodmart/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
