package main

import (
	"os"

	"github.com/dev-orus/wyst/cmd/wyst/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
