package skeleton

import (
	"strings"
	"testing"
)

func flexRow() Style    { return Style{Display: "flex", FlexDirection: "row"} }
func blockStyle() Style { return Style{Display: "block", GridTemplateColumns: "none"} }

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		style Style
		want  LayoutHint
	}{
		{"flex row", Style{Display: "flex", FlexDirection: "row"}, Row},
		{"flex column", Style{Display: "flex", FlexDirection: "column"}, Column},
		{"flex row-reverse", Style{Display: "flex", FlexDirection: "row-reverse"}, Column},
		{"grid with columns", Style{Display: "grid", GridTemplateColumns: "1fr 1fr"}, Row},
		{"grid none", Style{Display: "grid", GridTemplateColumns: "none"}, Column},
		{"block, grid tracks resolved", Style{Display: "block", GridTemplateColumns: "100px 100px"}, Row},
		{"plain block", Style{Display: "block", GridTemplateColumns: "none"}, Column},
		{"empty style", Style{}, Column},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(ElementView{Tag: "div", Style: tc.style})
			if got != tc.want {
				t.Errorf("Classify: got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestWidthClass_Deterministic(t *testing.T) {
	cases := []struct {
		tag    string
		layout LayoutHint
		child  bool
		want   string
	}{
		{"div", Column, false, "w-full"},
		{"div", Row, false, "w-1/2"},
		{"h1", Column, false, "w-1/2"},
		{"h3", Row, true, "w-1/2"},
		{"h6", Column, true, "w-1/2"},
		{"span", Column, false, "w-1/3"},
		{"span", Row, true, "w-1/3"},
		{"p", Column, true, "w-full"},
		{"p", Row, true, "w-full"},
		{"p", Row, false, "w-1/2"}, // root paragraph falls back to layout default
		{"section", Row, true, "w-1/2"},
	}

	for _, tc := range cases {
		got := widthClass(tc.tag, tc.layout, tc.child)
		if got != tc.want {
			t.Errorf("widthClass(%s, %s, child=%v): got %s, want %s",
				tc.tag, tc.layout, tc.child, got, tc.want)
		}
	}
}

// A chain deeper than the cutoff contributes exactly three generated levels:
// root wrapper, child box, grandchild box. Deeper nodes leave no trace.
func TestSynthesize_DepthCutoff(t *testing.T) {
	leaf := ElementView{Tag: "div", Rect: Rect{Height: 50}, Style: blockStyle()}
	ggc := ElementView{Tag: "div", Rect: Rect{Height: 40}, Style: blockStyle(), Children: []ElementView{leaf}}
	gc := ElementView{Tag: "div", Rect: Rect{Height: 30}, Style: blockStyle(), Children: []ElementView{ggc}}
	child := ElementView{Tag: "div", Rect: Rect{Height: 20}, Style: blockStyle(), Children: []ElementView{gc}}
	root := ElementView{Tag: "div", Rect: Rect{Height: 10}, Style: blockStyle(), Children: []ElementView{child}}

	markup := Synthesize(root)

	for _, want := range []string{"height:10px", "height:20px", "height:30px"} {
		if !strings.Contains(markup, want) {
			t.Errorf("markup missing %q:\n%s", want, markup)
		}
	}
	for _, absent := range []string{"height:40px", "height:50px"} {
		if strings.Contains(markup, absent) {
			t.Errorf("markup leaks %q past the depth cutoff:\n%s", absent, markup)
		}
	}

	// Exactly two placeholder boxes: the child and the grandchild.
	if got := strings.Count(markup, "animate-pulse"); got != 2 {
		t.Errorf("placeholder boxes: got %d, want 2", got)
	}
}

func TestSynthesize_ColumnWithParagraphs(t *testing.T) {
	root := ElementView{
		Tag:   "div",
		Rect:  Rect{Height: 120},
		Style: blockStyle(),
		Children: []ElementView{
			{Tag: "p", Rect: Rect{Height: 40}, Style: blockStyle()},
			{Tag: "p", Rect: Rect{Height: 60}, Style: blockStyle()},
		},
	}

	markup := Synthesize(root)

	if !strings.HasPrefix(markup, `<div class="flex flex-col gap-2 w-full" style="height:120px">`) {
		t.Errorf("wrapper: got %s", markup)
	}
	for _, want := range []string{
		`<div class="w-full bg-gray-200 rounded animate-pulse" style="height:40px">`,
		`<div class="w-full bg-gray-200 rounded animate-pulse" style="height:60px">`,
	} {
		if !strings.Contains(markup, want) {
			t.Errorf("markup missing block %q:\n%s", want, markup)
		}
	}
}

func TestSynthesize_RowDefaults(t *testing.T) {
	root := ElementView{
		Tag:   "div",
		Rect:  Rect{Height: 80},
		Style: flexRow(),
		Children: []ElementView{
			{Tag: "div", Rect: Rect{Height: 80}, Style: blockStyle()},
			{Tag: "span", Rect: Rect{Height: 20}, Style: blockStyle()},
		},
	}

	markup := Synthesize(root)

	if !strings.Contains(markup, "flex flex-row") {
		t.Errorf("row layout should produce a flex-row wrapper:\n%s", markup)
	}
	if !strings.Contains(markup, `class="w-1/2 bg-gray-200`) {
		t.Errorf("row child should default to half width:\n%s", markup)
	}
	if !strings.Contains(markup, `class="w-1/3 bg-gray-200`) {
		t.Errorf("span child should be third width:\n%s", markup)
	}
}

func TestSynthesize_HeadingsAlwaysHalfWidth(t *testing.T) {
	for _, layout := range []Style{flexRow(), blockStyle()} {
		root := ElementView{Tag: "h2", Rect: Rect{Height: 32}, Style: layout}
		markup := Synthesize(root)
		if !strings.Contains(markup, "w-1/2") {
			t.Errorf("heading under %+v: markup %s, want w-1/2", layout, markup)
		}
	}
}

// Oversized elements are decomposed, not recursed into: the children leave
// no trace and the wrapper holds the split blocks.
func TestSynthesize_OversizedDecomposition(t *testing.T) {
	root := ElementView{
		Tag:   "div",
		Rect:  Rect{Height: 1000},
		Style: blockStyle(),
		Children: []ElementView{
			{Tag: "p", Rect: Rect{Height: 33}, Style: blockStyle()},
		},
	}

	markup := Synthesize(root)

	if strings.Contains(markup, "height:33px") {
		t.Errorf("oversized element must ignore its children:\n%s", markup)
	}
	if got := strings.Count(markup, "height:250px"); got != 4 {
		t.Errorf("split blocks: got %d, want 4", got)
	}
	if !strings.Contains(markup, "flex flex-col") {
		t.Errorf("decomposed wrapper should keep the node's layout direction:\n%s", markup)
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		height    float64
		wantBlock string
		wantCount int
	}{
		{1000, "height:250px", 4},
		{150, "height:37.5px", 4},
		{2400, "height:300px", 8}, // capped at 300
	}

	for _, tc := range cases {
		markup := Split(tc.height)
		if got := strings.Count(markup, tc.wantBlock); got != tc.wantCount {
			t.Errorf("Split(%v): got %d blocks of %s, want %d\n%s",
				tc.height, got, tc.wantBlock, tc.wantCount, markup)
		}
		if got := strings.Count(markup, "animate-pulse"); got != tc.wantCount {
			t.Errorf("Split(%v): got %d total blocks, want %d", tc.height, got, tc.wantCount)
		}
	}
}
