package skeleton

import (
	"strconv"
	"strings"
)

// SplitThreshold is the element height in CSS pixels above which children are
// ignored and the element is decomposed into stacked blocks instead.
const SplitThreshold = 800

// maxDepth caps recursion: depth 0 = root, depth 1 = children. The children's
// own call at depth 1 still renders grandchild boxes before the depth-2 call
// short-circuits, so generated nesting never exceeds three levels.
const maxDepth = 1

// Synthesize translates an element snapshot into skeleton markup: one flex
// wrapper per node, one pulsing placeholder box per direct child, recursively.
// The result is a single markup string; no intermediate tree escapes the call.
func Synthesize(v ElementView) string {
	return synth(v, 0, false)
}

func synth(v ElementView, depth int, child bool) string {
	if depth > maxDepth {
		return ""
	}

	layout := Classify(v)
	wc := widthClass(v.Tag, layout, child)

	// Oversized elements are decomposed, not recursed into.
	if v.Rect.Height > SplitThreshold {
		return wrapper(layout, wc, v.Rect.Height, Split(v.Rect.Height))
	}

	var boxes strings.Builder
	for _, c := range v.Children {
		cwc := widthClass(c.Tag, layout, true)
		boxes.WriteString(box(cwc, c.Rect.Height, synth(c, depth+1, true)))
	}

	return wrapper(layout, wc, v.Rect.Height, boxes.String())
}

// widthClass is a pure function of (tag, layout hint). Tag overrides are
// checked first; the layout default applies otherwise. The paragraph override
// only exists for child nodes.
func widthClass(tag string, layout LayoutHint, child bool) string {
	switch strings.ToLower(tag) {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return "w-1/2"
	case "span":
		return "w-1/3"
	case "p":
		if child {
			return "w-full"
		}
	}
	if layout == Row {
		return "w-1/2"
	}
	return "w-full"
}

func wrapper(layout LayoutHint, widthClass string, height float64, inner string) string {
	dir := "flex-col"
	if layout == Row {
		dir = "flex-row"
	}
	return `<div class="flex ` + dir + ` gap-2 ` + widthClass +
		`" style="height:` + px(height) + `">` + inner + `</div>`
}

func box(widthClass string, height float64, inner string) string {
	return `<div class="` + widthClass +
		` bg-gray-200 rounded animate-pulse" style="height:` + px(height) + `">` +
		inner + `</div>`
}

// px formats a CSS pixel length, keeping fractional heights exact (37.5px).
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
