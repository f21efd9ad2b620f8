package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// SIGTERM and SIGHUP end the lesson. SIGINT at an answer prompt aborts that
	// exercise; the session treats one received elsewhere as the end of the lesson.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, interrupts)
	stop()
	os.Exit(code)
}
