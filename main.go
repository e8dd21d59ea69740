package main

import (
	"os"

	"github.com/mathsinbites/bitesmith/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
