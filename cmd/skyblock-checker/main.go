package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/skyblock-tools/skyblock-checker/internal/adapters/cli"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Any uncaught condition maps to a generic report and exit 1.
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\nUnexpected error: %v\n", r)
			code = 1
		}
	}()

	// A user-initiated interrupt is not an error, regardless of where the
	// run is blocked.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Println("\n\nInterrupted by user")
		os.Exit(0)
	}()

	cmd := cli.NewRootCommand(cli.Options{In: os.Stdin, Out: os.Stdout})
	if err := cmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}
