package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Tab wraps a Rod page with skelwatch-specific setup.
type Tab struct {
	Page    *rod.Page
	PageURL string
	manager *Manager
}

// OpenTab creates a new tab and navigates to the URL. Headless tabs get the
// stealth treatment so sites that fingerprint automation still render their
// real layout.
func OpenTab(ctx context.Context, mgr *Manager, pageURL string) (*Tab, error) {
	b := mgr.Browser()
	if b == nil {
		return nil, fmt.Errorf("browser: no active browser")
	}

	var page *rod.Page
	var err error

	if mgr.cfg.Headless {
		page, err = stealth.Page(b)
	} else {
		page, err = b.Page(proto.TargetCreateTarget{URL: ""})
	}
	if err != nil {
		return nil, fmt.Errorf("browser: create tab: %w", err)
	}

	navCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		page.Close()
		return nil, fmt.Errorf("browser: navigate %s: %w", pageURL, err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		mgr.cfg.Logger.Warn("browser: wait load timeout", "url", pageURL, "error", err)
	}

	return &Tab{Page: page, PageURL: pageURL, manager: mgr}, nil
}

// AttachTab wraps an already open page whose URL matches the given prefix,
// or the first page when the prefix is empty. Used when skelwatch attaches
// to the user's running browser.
func AttachTab(mgr *Manager, urlPrefix string) (*Tab, error) {
	b := mgr.Browser()
	if b == nil {
		return nil, fmt.Errorf("browser: no active browser")
	}

	pages, err := b.Pages()
	if err != nil {
		return nil, fmt.Errorf("browser: list pages: %w", err)
	}
	for _, p := range pages {
		info, err := p.Info()
		if err != nil {
			continue
		}
		if urlPrefix == "" || strings.HasPrefix(info.URL, urlPrefix) {
			return &Tab{Page: p, PageURL: info.URL, manager: mgr}, nil
		}
	}
	return nil, fmt.Errorf("browser: no open page matches %q", urlPrefix)
}

// Close closes the tab.
func (t *Tab) Close() error {
	if t.Page != nil {
		return t.Page.Close()
	}
	return nil
}
