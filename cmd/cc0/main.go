package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/cc0/cmd/cc0/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
