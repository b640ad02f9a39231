// Package statichtml derives element snapshots from a parsed HTML document
// instead of a live page. No browser means no resolved styles: layout
// classification and heights come from inline style attributes, which is
// enough for skeleton generation from templates and fixtures in CI.
package statichtml

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/hazyhaar/skelwatch/skeleton"
)

// Parse reads an HTML document and returns the ElementView rooted at <body>,
// or at the first element when the document has no body.
func Parse(r io.Reader) (*skeleton.ElementView, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("statichtml: parse: %w", err)
	}

	root := findBody(doc)
	if root == nil {
		root = firstElement(doc)
	}
	if root == nil {
		return nil, fmt.Errorf("statichtml: document has no elements")
	}

	v := view(root)
	return &v, nil
}

// ParseFile is Parse over a file on disk.
func ParseFile(path string) (*skeleton.ElementView, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("statichtml: open: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func view(n *html.Node) skeleton.ElementView {
	style := parseInlineStyle(attr(n, "style"))

	v := skeleton.ElementView{
		Tag: strings.ToLower(n.Data),
		Rect: skeleton.Rect{
			Width:  pxValue(style["width"], attr(n, "width")),
			Height: pxValue(style["height"], attr(n, "height")),
		},
		Style: skeleton.Style{
			Display:             style["display"],
			FlexDirection:       style["flex-direction"],
			GridTemplateColumns: style["grid-template-columns"],
		},
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			v.Children = append(v.Children, view(c))
		}
	}
	return v
}

// parseInlineStyle splits a style attribute into a property map. Good enough
// for the handful of properties this package reads; not a CSS parser.
func parseInlineStyle(s string) map[string]string {
	out := map[string]string{}
	for decl := range strings.SplitSeq(s, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(prop))] = strings.TrimSpace(val)
	}
	return out
}

// pxValue returns the first parsable pixel length among the candidates.
func pxValue(candidates ...string) float64 {
	for _, c := range candidates {
		c = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(c), "px"))
		if c == "" {
			continue
		}
		if f, err := strconv.ParseFloat(c, 64); err == nil {
			return f
		}
	}
	return 0
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}

func firstElement(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c); found != nil {
			return found
		}
	}
	return nil
}
