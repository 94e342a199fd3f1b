package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"resume-pdf/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "resumepdf:", err)
		cancel()
		os.Exit(1)
	}
}
