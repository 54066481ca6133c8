package main

import (
	"os"

	"github.com/lixenwraith/glowfield/core"
	"github.com/lixenwraith/glowfield/internal/cli"
)

func main() {
	// Panic Recovery: restore the terminal before printing the crash report
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
