package main

import (
	"os"

	"github.com/BurtMcGurt64/owlplanner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
