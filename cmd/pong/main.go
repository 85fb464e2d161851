package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"pong/internal/desktop"
)

func main() {
	log.SetPrefix("pong: ")
	log.SetFlags(0)
	os.Exit(run())
}

// run returns the exit status. Errors and panics are logged and still exit 0
// once deferred cleanup has run.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("recovered: %v", r)
			code = 0
		}
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := desktop.RunDesktop(ctx); err != nil {
		log.Printf("fatal: %v", err)
	}
	return 0
}
