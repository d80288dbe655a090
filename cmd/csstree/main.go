package main

import (
	"os"

	"github.com/boxesandglue/csstree/cmd/csstree/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
