package main

import (
	"os"

	"github.com/abhisek/mindarena/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
