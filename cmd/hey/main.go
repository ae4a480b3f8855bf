package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/doeshing/hey-go/internal/infrastructure/cli"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	opts := cli.Options{
		Verbose: isVerbose(),
		Version: version,
		Streams: cli.StdStreams(),
	}

	code := cli.Run(ctx, opts, os.Args[1:])
	stop()
	os.Exit(code)
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("HEY_DEBUG"), "1") || strings.EqualFold(os.Getenv("HEY_DEBUG"), "true")
}
