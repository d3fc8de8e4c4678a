package main

import (
	"fmt"
	"os"

	"github.com/olegyurchik/kubenv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "kubenv execution has failed: %v\n", err)
		os.Exit(1)
	}
}
