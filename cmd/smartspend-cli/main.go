package main

import (
	"context"
	"fmt"
	"os"

	"smartspend/internal/cli"
)

func main() {
	cli.LoadEnvFile()

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
