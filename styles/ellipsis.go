package styles

import "fmt"

// EllipsisDeclaration truncates single line text to width (any CSS length,
// used verbatim). With isMax the width becomes max-width.
func EllipsisDeclaration(width string, isMax bool) Fragment {
	key := "width"
	if isMax {
		key = "max-width"
	}
	return Fragment(fmt.Sprintf("%s: %s;\nwhite-space: nowrap;\noverflow: hidden;\ntext-overflow: ellipsis;\n", key, width))
}
