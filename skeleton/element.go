// Package skeleton turns a snapshot of a live page element into placeholder
// "loading skeleton" markup approximating its box layout.
// These are the public types and pure functions of skelwatch: any consumer
// (the overlay session, the one-shot CLI path, custom pipelines) imports this
// package; nothing here touches a browser.
package skeleton

import "encoding/json"

// Rect is an element bounding rectangle. Coordinates are viewport-relative
// when they come from the in-page shim (getBoundingClientRect semantics).
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Style carries the resolved style properties layout classification needs.
// Values are the computed ones, not the authored ones.
type Style struct {
	Display             string `json:"display"`
	FlexDirection       string `json:"flexDirection"`
	GridTemplateColumns string `json:"gridTemplateColumns"`
}

// ElementView is an immutable snapshot of an element subtree: tag, rect,
// resolved style, ordered direct children. The shim builds it in one pass at
// trigger time, so synthesis runs over a stable value instead of observing a
// live tree that may mutate mid-walk. Children are serialised three levels
// deep; the synthesiser's depth cutoff never reads below that.
type ElementView struct {
	Tag      string        `json:"tag"`
	Rect     Rect          `json:"rect"`
	Style    Style         `json:"style"`
	Children []ElementView `json:"children"`
}

// DecodeElementView deserialises an ElementView from the shim's JSON payload.
func DecodeElementView(data []byte) (*ElementView, error) {
	var v ElementView
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
