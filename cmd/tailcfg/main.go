// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// tailcfg inspects, validates and exports the style configuration.
//
// Usage:
//
//	tailcfg validate -c style.yaml
//	tailcfg color traqr 500
//	tailcfg animation fade-in
//	tailcfg files --root .
//	tailcfg export --format json
//	tailcfg preview
//	tailcfg watch -c style.yaml
//
// Exit codes:
//   - 0: success
//   - 1: invalid configuration or command failure
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// errReported marks failures whose details were already written to stderr.
var errReported = errors.New("reported")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
