package main

import (
	"fmt"
	"os"

	"github.com/AnyUserName/wallgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wallgen: %v\n", err)
		os.Exit(1)
	}
}
