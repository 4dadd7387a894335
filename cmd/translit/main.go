package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/translit/internal/cli"
	"github.com/arthur-debert/translit/pkg/style"
)

func main() {
	// Interrupting stops the walk between directories; renames already done stay
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, style.NewRenderer(os.Stderr).RenderError(err))
		os.Exit(1)
	}
}
