// SPDX-License-Identifier: MIT

// Command salesman plans delivery round trips over a stop catalogue.
//
//	salesman vertices                     list pickable stops
//	salesman solve --stops 3,1,4          plan one run and print it
//	salesman serve                        start the HTTP API
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, styleError.Render(iconError+" "+err.Error()))
		os.Exit(1)
	}
}
