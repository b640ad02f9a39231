package overlay

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/hazyhaar/skelwatch/internal/clipboard"
	"github.com/hazyhaar/skelwatch/internal/sink"
	"github.com/hazyhaar/skelwatch/skeleton"
)

//go:embed shim.js
var shimJS string

const bindingName = "__skelwatch_binding"

// PageShim renders overlay state into a live page via injected callbacks.
type PageShim struct {
	page *rod.Page
}

func (p *PageShim) SetOverlay(r skeleton.OverlayRect) error {
	_, err := p.page.Eval(
		`(l, t, w, h) => window.__skelwatch_overlay(l, t, w, h)`,
		r.Left, r.Top, r.Width, r.Height)
	return err
}

func (p *PageShim) SetIndicator(on bool) error {
	_, err := p.page.Eval(`(on) => window.__skelwatch_indicator(on)`, on)
	return err
}

// Attach injects the shim into the page, wires its binding into the session,
// and starts the session loop. The shim forwards raw pointer and key events;
// every decision stays in Go.
func Attach(ctx context.Context, page *rod.Page, clip clipboard.Writer, snk sink.Sink, cfg Config) (*Session, error) {
	s := New(&PageShim{page: page}, clip, snk, cfg)

	if err := (proto.RuntimeAddBinding{Name: bindingName}).Call(page); err != nil {
		s.logger.Warn("overlay: add binding failed (may already exist)", "error", err)
	}

	go listenBinding(ctx, page, s, s.logger)

	if _, err := page.Eval(shimJS, s.cfg.TriggerKey); err != nil {
		return nil, fmt.Errorf("overlay: inject shim: %w", err)
	}

	s.Start(ctx)
	s.logger.Info("overlay: attached", "trigger_key", s.cfg.TriggerKey)
	return s, nil
}

// listenBinding receives shim calls via Runtime.bindingCalled and posts them
// into the session loop.
func listenBinding(ctx context.Context, page *rod.Page, s *Session, logger *slog.Logger) {
	page.Context(ctx).EachEvent(func(e *proto.RuntimeBindingCalled) {
		if e.Name != bindingName {
			return
		}

		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal([]byte(e.Payload), &head); err != nil {
			logger.Warn("overlay: parse binding payload", "error", err)
			return
		}

		switch head.Type {
		case "move":
			var mv moveEvent
			if err := json.Unmarshal([]byte(e.Payload), &mv); err != nil {
				logger.Warn("overlay: parse move event", "error", err)
				return
			}
			s.post(event{kind: evMove, move: mv})

		case "capture":
			var cp captureEvent
			if err := json.Unmarshal([]byte(e.Payload), &cp); err != nil {
				logger.Warn("overlay: parse capture event", "error", err)
				return
			}
			s.post(event{kind: evTrigger, capture: cp})
		}
	})()
}

// snapshotJS mirrors the shim's view() for one-shot capture by selector.
const snapshotJS = `(sel) => {
	const view = (el, depth) => {
		const r = el.getBoundingClientRect();
		const cs = getComputedStyle(el);
		const v = {
			tag: el.tagName.toLowerCase(),
			rect: { left: r.left, top: r.top, width: r.width, height: r.height },
			style: {
				display: cs.display,
				flexDirection: cs.flexDirection,
				gridTemplateColumns: cs.gridTemplateColumns,
			},
			children: [],
		};
		if (depth > 0) {
			for (const c of el.children) v.children.push(view(c, depth - 1));
		}
		return v;
	};
	const el = document.querySelector(sel);
	return el ? view(el, 3) : null;
}`

// SnapshotSelector builds an ElementView for the first element matching the
// CSS selector, or an error when nothing matches.
func SnapshotSelector(ctx context.Context, page *rod.Page, selector string) (*skeleton.ElementView, error) {
	res, err := page.Context(ctx).Eval(snapshotJS, selector)
	if err != nil {
		return nil, fmt.Errorf("overlay: snapshot %q: %w", selector, err)
	}
	if res.Value.Nil() {
		return nil, fmt.Errorf("overlay: no element matches %q", selector)
	}

	view, err := skeleton.DecodeElementView([]byte(res.Value.JSON("", "")))
	if err != nil {
		return nil, fmt.Errorf("overlay: decode snapshot: %w", err)
	}
	return view, nil
}
