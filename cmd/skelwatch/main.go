// Command skelwatch is the interactive skeleton-capture overlay.
//
// Usage:
//
//	skelwatch -page https://example.com                 # interactive overlay, local Chrome
//	skelwatch -config skelwatch.yaml -page <url>        # interactive with config
//	skelwatch -capture https://example.com -selector "#main"  # one-shot headless capture
//	skelwatch -html fixture.html                        # synthesize from a static file
//	skelwatch -history 10 -db history.db                # print recent captures
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/skelwatch"
	"github.com/hazyhaar/skelwatch/internal/statichtml"
	"github.com/hazyhaar/skelwatch/internal/store"
	"github.com/hazyhaar/skelwatch/skeleton"
)

func main() {
	configPath := flag.String("config", "", "path to skelwatch.yaml config file")
	pageURL := flag.String("page", "", "page to overlay interactively")
	attachURL := flag.String("attach", "", "WebSocket URL of a running Chrome to attach to")
	captureURL := flag.String("capture", "", "one-shot: capture a selector on this URL and exit")
	selector := flag.String("selector", "body", "CSS selector for one-shot capture")
	htmlPath := flag.String("html", "", "synthesize a skeleton from a static HTML file and exit")
	historyN := flag.Int("history", 0, "print the N most recent captures and exit")
	dbPath := flag.String("db", "skelwatch.db", "history database path (for -history)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, options{
		configPath: *configPath,
		pageURL:    *pageURL,
		attachURL:  *attachURL,
		captureURL: *captureURL,
		selector:   *selector,
		htmlPath:   *htmlPath,
		historyN:   *historyN,
		dbPath:     *dbPath,
	}); err != nil {
		logger.Error("skelwatch: fatal", "error", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	pageURL    string
	attachURL  string
	captureURL string
	selector   string
	htmlPath   string
	historyN   int
	dbPath     string
}

func run(ctx context.Context, logger *slog.Logger, opts options) error {
	switch {
	case opts.htmlPath != "":
		return runStatic(opts.htmlPath)
	case opts.historyN > 0:
		return runHistory(ctx, opts.dbPath, opts.historyN)
	case opts.captureURL != "":
		return runCapture(ctx, logger, opts)
	case opts.pageURL != "":
		return runInteractive(ctx, logger, opts)
	}

	fmt.Fprintln(os.Stderr, "usage: skelwatch -page <url> | -capture <url> -selector <sel> | -html <file> | -history <n>")
	os.Exit(1)
	return nil
}

func loadConfig(opts options) (*skelwatch.Config, error) {
	if opts.configPath != "" {
		return skelwatch.LoadConfigFile(opts.configPath)
	}
	cfg := &skelwatch.Config{}
	cfg.ApplyDefaults()
	return cfg, nil
}

func runInteractive(ctx context.Context, logger *slog.Logger, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if opts.attachURL != "" {
		cfg.Browser.Remote = opts.attachURL
	}

	sinks, err := skelwatch.SinksFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	tool := skelwatch.New(cfg, logger, sinks...)
	defer tool.Stop()

	if err := tool.Start(ctx, opts.pageURL); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("skelwatch: shutting down")
	return nil
}

func runCapture(ctx context.Context, logger *slog.Logger, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	cfg.Browser.Headless = true
	if opts.attachURL != "" {
		cfg.Browser.Remote = opts.attachURL
	}

	sinks, err := skelwatch.SinksFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	tool := skelwatch.New(cfg, logger, sinks...)
	defer tool.Stop()

	rec, err := tool.CaptureOnce(ctx, opts.captureURL, opts.selector)
	if err != nil {
		return err
	}
	fmt.Println(rec.Markup)
	return nil
}

func runStatic(path string) error {
	view, err := statichtml.ParseFile(path)
	if err != nil {
		return err
	}
	fmt.Println(skeleton.Synthesize(*view))
	return nil
}

func runHistory(ctx context.Context, dbPath string, n int) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	captures, err := s.Recent(ctx, n)
	if err != nil {
		return err
	}
	for _, c := range captures {
		data, err := skeleton.MarshalCapture(&c)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}
	return nil
}
