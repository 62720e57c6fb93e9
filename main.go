package main

import (
	"os"

	"github.com/egfinancefx/exam/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
