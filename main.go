package main

import (
	"os"

	"github.com/satyarth/dappdojo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
