package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shandysiswandi/goskiplagged/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	application := app.New()                  // Initialize the application
	code := application.Run(ctx, os.Args[1:]) // Run one search and print the result
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	application.Stop(shutdownCtx) // Release resources
	cancel()

	os.Exit(code)
}
