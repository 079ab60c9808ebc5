// Command server runs the Nuestra Historia API: registration and login for
// the couple, plus the protected timeline, memories, playlist, and message
// board endpoints.
//
// Configuration comes from config.yaml (CONFIG_PATH to override) and
// environment variables. SIGINT/SIGTERM trigger graceful shutdown.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nuestra-historia/backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
