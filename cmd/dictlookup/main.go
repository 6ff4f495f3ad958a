package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lexicon/pkg/dictionary"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if dictionary.IsNotFound(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
