package styles

import "strings"

// Fragment is generated CSS text: one or more declarations, possibly with
// nested blocks, ready to be pasted into a style block.
type Fragment string

func (f Fragment) String() string {
	return string(f)
}

const (
	// AllDescendantNoPadAndMargin zeroes padding and margin of every descendant.
	AllDescendantNoPadAndMargin Fragment = "* {\n    padding: 0;\n    margin: 0;\n}\n"
	// NoPadAndMargin zeroes padding and margin of the element itself.
	NoPadAndMargin Fragment = "padding: 0;\nmargin: 0;\n"
)

const indentUnit = "    "

// indent prefixes every non-empty line of s with one indentation unit.
// Result always ends with a new line.
func indent(s string) string {
	s = strings.Trim(s, "\n")
	if s == "" {
		return ""
	}
	var sb strings.Builder
	for line := range strings.SplitSeq(s, "\n") {
		if strings.TrimSpace(line) != "" {
			sb.WriteString(indentUnit)
			sb.WriteString(line)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// block renders "selector {\n<indented body>}\n".
func block(selector, body string) string {
	return selector + " {\n" + indent(body) + "}\n"
}
