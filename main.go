package main

import (
	"os"

	"github.com/serkanatas/kopya/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
