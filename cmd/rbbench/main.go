// Package main provides the entry point for the rbbench CLI tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/g-m-twostay/rbstat/cmd/rbbench/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := commands.NewRootCommand().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
