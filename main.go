package main

import (
	"os"

	"github.com/mathpath/mathpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
