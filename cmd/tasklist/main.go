package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/tasklist/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout, os.Stderr, nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tasklist failed: %v\n", err)
		os.Exit(1)
	}
}
