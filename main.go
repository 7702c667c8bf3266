package main

import (
	"os"

	"github.com/lalithbseervi/pes-bca/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
