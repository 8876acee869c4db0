package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/bft-labs/et/internal/cli"
	"github.com/bft-labs/et/pkg/log"
)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := cli.Execute(ctx, cli.Deps{
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
	}, os.Args[1:])
	stop()

	if err != nil {
		logger := log.NewZerologAdapter(os.Stderr, zerolog.ErrorLevel)
		logger.Error("command failed", log.Err(err))
		os.Exit(1)
	}
}
