package main

import (
	"os"

	"github.com/theMomax/weatherboard/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
