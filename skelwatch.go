// Package skelwatch is a developer overlay tool for live pages: it highlights
// the element under the pointer and, on a trigger key, synthesizes placeholder
// "loading skeleton" markup approximating that element's box layout and copies
// it to the clipboard.
//
// skelwatch drives Chrome as a disposable component. A small injected shim
// forwards raw pointer and key events over a CDP binding and renders whatever
// the Go side decides; layout classification, geometry clamping, skeleton
// synthesis and capture fan-out all happen in Go (see the skeleton package).
package skelwatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hazyhaar/skelwatch/internal/browser"
	"github.com/hazyhaar/skelwatch/internal/clipboard"
	"github.com/hazyhaar/skelwatch/internal/idgen"
	"github.com/hazyhaar/skelwatch/internal/overlay"
	"github.com/hazyhaar/skelwatch/internal/sink"
	"github.com/hazyhaar/skelwatch/skeleton"
)

// Tool is the top-level orchestrator: browser, overlay session, sinks.
// Create one per skelwatch run.
type Tool struct {
	cfg     *Config
	mgr     *browser.Manager
	tab     *browser.Tab
	session *overlay.Session
	sinkR   *sink.Router
	logger  *slog.Logger
}

// New creates a Tool from configuration.
func New(cfg *Config, logger *slog.Logger, sinks ...Sink) *Tool {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.ApplyDefaults()

	mgr := browser.NewManager(browser.Config{
		RemoteURL: cfg.Browser.Remote,
		Headless:  cfg.Browser.Headless,
		Logger:    logger,
	})

	return &Tool{
		cfg:    cfg,
		mgr:    mgr,
		sinkR:  sink.NewRouter(logger, sinks...),
		logger: logger,
	}
}

// Start launches (or attaches to) the browser, opens the page and installs
// the interactive overlay. It returns once the overlay is live; events are
// handled until ctx is cancelled.
func (t *Tool) Start(ctx context.Context, pageURL string) error {
	if _, err := t.mgr.Start(); err != nil {
		return fmt.Errorf("skelwatch: start browser: %w", err)
	}

	var tab *browser.Tab
	var err error
	if t.cfg.Browser.Remote != "" {
		tab, err = browser.AttachTab(t.mgr, pageURL)
	} else {
		tab, err = browser.OpenTab(ctx, t.mgr, pageURL)
	}
	if err != nil {
		return fmt.Errorf("skelwatch: open page: %w", err)
	}
	t.tab = tab

	session, err := overlay.Attach(ctx, tab.Page, clipboard.System{}, t.sinkR, overlay.Config{
		TriggerKey:     t.cfg.Overlay.TriggerKey,
		IndicatorTTL:   t.cfg.Overlay.IndicatorTTL,
		CoalesceWindow: t.cfg.Overlay.CoalesceWindow,
		Logger:         t.logger,
	})
	if err != nil {
		return err
	}
	t.session = session

	t.logger.Info("skelwatch: overlay live", "url", tab.PageURL)
	return nil
}

// CaptureOnce navigates to a page, snapshots the first element matching the
// CSS selector, synthesizes its skeleton and emits the capture to the sinks.
// Meant for headless, non-interactive use.
func (t *Tool) CaptureOnce(ctx context.Context, pageURL, selector string) (*skeleton.Capture, error) {
	if _, err := t.mgr.Start(); err != nil {
		return nil, fmt.Errorf("skelwatch: start browser: %w", err)
	}

	tab, err := browser.OpenTab(ctx, t.mgr, pageURL)
	if err != nil {
		return nil, fmt.Errorf("skelwatch: open page: %w", err)
	}
	defer tab.Close()

	view, err := overlay.SnapshotSelector(ctx, tab.Page, selector)
	if err != nil {
		return nil, err
	}

	markup := skeleton.Synthesize(*view)
	rec := skeleton.Capture{
		ID:         idgen.New(),
		PageURL:    pageURL,
		Tag:        view.Tag,
		Markup:     markup,
		MarkupHash: skeleton.HashMarkup(markup),
		Timestamp:  time.Now().UnixMilli(),
	}

	if err := t.sinkR.Send(ctx, rec); err != nil {
		t.logger.Warn("skelwatch: sink send failed", "error", err)
	}
	return &rec, nil
}

// Stop closes the tab, the browser and the sinks.
func (t *Tool) Stop() {
	if t.tab != nil {
		t.tab.Close()
	}
	t.mgr.Close()
	if err := t.sinkR.Close(); err != nil {
		t.logger.Warn("skelwatch: close sinks", "error", err)
	}
}
