package skeleton

// LayoutHint is the binary layout classification of an element.
type LayoutHint string

const (
	Row    LayoutHint = "row"
	Column LayoutHint = "column"
)

// Classify maps an element's resolved style to a layout hint.
// Priority: explicit row flex wins, then any grid with column tracks, then
// Column as the default for everything else (block layout, column flex,
// absent grid). Deliberately binary: row-reverse, wrap and multi-track grid
// variants are not distinguished.
func Classify(v ElementView) LayoutHint {
	if v.Style.Display == "flex" && v.Style.FlexDirection == "row" {
		return Row
	}
	if v.Style.GridTemplateColumns != "" && v.Style.GridTemplateColumns != "none" {
		return Row
	}
	return Column
}
