package main

import (
	"os"

	"github.com/abhisek/bilim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
