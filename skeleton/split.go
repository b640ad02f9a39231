package skeleton

import (
	"math"
	"strings"
)

// maxSplitBlock caps the height of a single block emitted by Split.
const maxSplitBlock = 300

// Split decomposes an oversized element's height into identical stacked
// full-width pulsing blocks: block height = min(height/4, 300), block count =
// ceil(height / blockHeight). Pure function of the height alone.
func Split(height float64) string {
	if height <= 0 {
		return ""
	}

	small := math.Min(height/4, maxSplitBlock)
	count := int(math.Ceil(height / small))

	block := box("w-full", small, "")
	var b strings.Builder
	for range count {
		b.WriteString(block)
	}
	return b.String()
}
