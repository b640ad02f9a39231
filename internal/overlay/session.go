// Package overlay implements the interactive session on one page: pointer
// tracking, overlay geometry, skeleton capture, clipboard publication and the
// timed "copied" indicator. All session state lives in one record mutated
// only from the session's event loop goroutine; the in-page shim renders
// whatever the loop tells it to.
package overlay

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hazyhaar/skelwatch/internal/clipboard"
	"github.com/hazyhaar/skelwatch/internal/idgen"
	"github.com/hazyhaar/skelwatch/internal/sink"
	"github.com/hazyhaar/skelwatch/skeleton"
)

// Shim is the in-page rendering collaborator. It owns mounting, listener
// registration and presentation; it makes no decisions.
type Shim interface {
	SetOverlay(r skeleton.OverlayRect) error
	SetIndicator(on bool) error
}

// ClipboardSnapshot is the transient "copied" indicator state.
type ClipboardSnapshot struct {
	Text      string
	CreatedAt time.Time
	TTL       time.Duration
}

type eventKind int

const (
	evMove eventKind = iota
	evTrigger
)

type moveEvent struct {
	Rect     skeleton.Rect     `json:"rect"`
	Scroll   skeleton.Scroll   `json:"scroll"`
	Viewport skeleton.Viewport `json:"viewport"`
}

type captureEvent struct {
	URL     string          `json:"url"`
	Element json.RawMessage `json:"element"`
}

type event struct {
	kind    eventKind
	move    moveEvent
	capture captureEvent
}

type clipResult struct {
	capture skeleton.Capture
	err     error
}

// Config for creating a Session.
type Config struct {
	// TriggerKey captures the hovered element. Default: "s".
	TriggerKey string
	// IndicatorTTL is how long the "copied" label stays up. Default: 2s.
	IndicatorTTL time.Duration
	// CoalesceWindow batches pointer moves, applying only the latest per
	// window. 0 = apply every move (the default).
	CoalesceWindow time.Duration
	// IDs generates capture IDs. Default: idgen.Default.
	IDs idgen.Generator

	Logger *slog.Logger
}

// Session drives one page. Create with New, feed it shim events (the rod
// attachment does this), read captures from the sink.
type Session struct {
	shim   Shim
	clip   clipboard.Writer
	sink   sink.Sink
	cfg    Config
	logger *slog.Logger

	events chan event
	clipCh chan clipResult

	// Loop-owned state. Touched only from run().
	tracker    tracker
	snapshot   *ClipboardSnapshot
	resetTimer *time.Timer
	resetCh    <-chan time.Time
}

// New creates a Session. snk may be nil when no capture fan-out is wanted.
func New(shim Shim, clip clipboard.Writer, snk sink.Sink, cfg Config) *Session {
	if cfg.TriggerKey == "" {
		cfg.TriggerKey = "s"
	}
	if cfg.IndicatorTTL <= 0 {
		cfg.IndicatorTTL = 2 * time.Second
	}
	if cfg.IDs == nil {
		cfg.IDs = idgen.Default
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Session{
		shim:    shim,
		clip:    clip,
		sink:    snk,
		cfg:     cfg,
		logger:  cfg.Logger,
		events:  make(chan event, 1024),
		clipCh:  make(chan clipResult, 4),
		tracker: newTracker(cfg.CoalesceWindow),
	}
}

// Start runs the event loop until ctx is cancelled.
func (s *Session) Start(ctx context.Context) {
	go s.run(ctx)
}

// post delivers a shim event into the loop. Called from the binding listener
// goroutine; everything downstream happens on the loop.
func (s *Session) post(ev event) {
	s.events <- ev
}

func (s *Session) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-s.events:
			switch ev.kind {
			case evMove:
				if mv := s.tracker.observe(ev.move); mv != nil {
					s.applyMove(*mv)
				}
			case evTrigger:
				s.handleTrigger(ctx, ev.capture)
			}

		case <-s.tracker.timerC():
			if mv := s.tracker.flush(); mv != nil {
				s.applyMove(*mv)
			}

		case res := <-s.clipCh:
			s.handleClipResult(ctx, res)

		case <-s.resetCh:
			s.clearIndicator()
		}
	}
}

// applyMove recomputes the clamped overlay rect from the latest pointer
// geometry and pushes it to the shim. Off-screen elements produce degenerate
// rects; the shim renders those invisible.
func (s *Session) applyMove(mv moveEvent) {
	r := skeleton.Clamp(mv.Rect, mv.Scroll, mv.Viewport)
	s.tracker.setTarget(mv, r)
	if err := s.shim.SetOverlay(r); err != nil {
		s.logger.Debug("overlay: set overlay failed", "error", err)
	}
}

// handleTrigger synthesizes the snapshotted subtree and starts the
// asynchronous clipboard write. A trigger without a tracked target is a
// no-op, not an error.
func (s *Session) handleTrigger(ctx context.Context, ev captureEvent) {
	if !s.tracker.hasTarget() || len(ev.Element) == 0 || string(ev.Element) == "null" {
		s.logger.Debug("overlay: trigger with no target")
		return
	}

	view, err := skeleton.DecodeElementView(ev.Element)
	if err != nil {
		s.logger.Warn("overlay: decode element snapshot", "error", err)
		return
	}

	markup := skeleton.Synthesize(*view)
	rec := skeleton.Capture{
		ID:         s.cfg.IDs(),
		PageURL:    ev.URL,
		Tag:        view.Tag,
		Markup:     markup,
		MarkupHash: skeleton.HashMarkup(markup),
		Timestamp:  time.Now().UnixMilli(),
	}

	// The write suspends off-loop; its continuation lands back on the loop
	// via clipCh.
	go func() {
		err := s.clip.Write(rec.Markup)
		select {
		case s.clipCh <- clipResult{capture: rec, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (s *Session) handleClipResult(ctx context.Context, res clipResult) {
	if res.err != nil {
		// No user-facing failure signal: the indicator simply never appears.
		s.logger.Warn("overlay: clipboard write failed", "error", res.err)
		return
	}

	s.snapshot = &ClipboardSnapshot{
		Text:      res.capture.Markup,
		CreatedAt: time.Now(),
		TTL:       s.cfg.IndicatorTTL,
	}
	if err := s.shim.SetIndicator(true); err != nil {
		s.logger.Debug("overlay: set indicator failed", "error", err)
	}

	// Single reset slot: a new copy replaces any pending reset instead of
	// racing with it.
	if s.resetTimer != nil {
		s.resetTimer.Stop()
	}
	s.resetTimer = time.NewTimer(s.cfg.IndicatorTTL)
	s.resetCh = s.resetTimer.C

	if s.sink != nil {
		if err := s.sink.Send(ctx, res.capture); err != nil {
			s.logger.Warn("overlay: sink send failed", "error", err)
		}
	}

	s.logger.Info("overlay: skeleton copied",
		"page", res.capture.PageURL, "tag", res.capture.Tag, "bytes", len(res.capture.Markup))
}

func (s *Session) clearIndicator() {
	s.snapshot = nil
	s.resetTimer = nil
	s.resetCh = nil
	if err := s.shim.SetIndicator(false); err != nil {
		s.logger.Debug("overlay: clear indicator failed", "error", err)
	}
}
