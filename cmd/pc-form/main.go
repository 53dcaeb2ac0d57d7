package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Printf("error running form application: %v\n", err)
		os.Exit(1)
	}
}
