package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dwikikusuma/shoping-storefront/pkg/shutdown"
)

func main() {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	root := newRootCmd(loadDeps)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}
