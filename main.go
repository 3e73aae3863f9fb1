package main

import (
	"os"

	"github.com/pms-safya/abacus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
