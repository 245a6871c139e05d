package main

import (
	"log/slog"
	"os"

	"github.com/leengari/tabledom/internal/config"
	"github.com/leengari/tabledom/internal/dom/htmldom"
	"github.com/leengari/tabledom/internal/engine"
	"github.com/leengari/tabledom/internal/logging"
	"github.com/leengari/tabledom/internal/repl"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Logging.SlogLevel()
	logger, closeFn := logging.SetupLogger(cfg.Logging.SeqURL, level)
	defer closeFn()
	slog.SetDefault(logger)

	slog.Info("Starting tabledom...", "document", cfg.Document.Path, "table", cfg.Document.Table)

	// 1. Load the document
	f, err := os.Open(cfg.Document.Path)
	if err != nil {
		slog.Error("failed to open document", "error", err)
		closeFn()
		os.Exit(1)
	}
	doc, err := htmldom.Parse(f)
	f.Close()
	if err != nil {
		slog.Error("failed to parse document", "error", err)
		closeFn()
		os.Exit(1)
	}

	// 2. Construct the engine (parses the table once)
	eng, err := engine.New(doc, cfg.Document.Table, engine.WithLogger(logger))
	if err != nil {
		slog.Error("engine construction failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	eng.AddObserver(engine.NewLoggingObserver())

	t := eng.Table()
	slog.Info("table parsed", "columns", len(t.Headers), "rows", len(t.Rows), "hidden", len(t.Hidden))

	// 3. Hand over to the shell
	repl.Start(eng, doc, cfg.Document.Output)
}
