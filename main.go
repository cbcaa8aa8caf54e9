package main

import (
	"os"

	"github.com/karimf/wortspatz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
