// Command unquoted runs the Unquote puzzle server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/unquote/unquote/internal/config"
	"github.com/unquote/unquote/internal/puzzlegen"
	"github.com/unquote/unquote/internal/quotesource"
	"github.com/unquote/unquote/internal/server"
	"github.com/unquote/unquote/internal/store"
)

var version = "dev"

// keywords is the fixed keyword list the puzzle generator draws from for
// each day's cipher. It ships with the binary rather than living in
// config, since changing it would change every future day's puzzle.
var keywords = []string{
	"CIPHER", "PUZZLE", "QUARTZ", "ZEBRA", "GALAXY", "VORTEX", "CRYPT",
	"ENIGMA", "RIDDLE", "MYSTIC", "ORACLE", "PHOENIX", "WIZARD", "JUNGLE",
}

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("unquoted %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("starting unquoted", "version", version)

	st, err := store.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	quotes := quotesource.New(cfg.QuotesFilePath)
	gen := puzzlegen.New(quotes, keywords)

	srv := server.New(cfg, quotes, gen, st)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutting down")
		_ = srv.Shutdown(context.Background())
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
