package css

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MediaQuery represents a parsed @media query condition, e.g.
// "screen and (min-width: 768px)".
type MediaQuery struct {
	Raw      string         // Original media query string
	Type     string         // Media type if present ("screen", "print")
	Negated  bool           // true if "not" modifier was used on main type
	Features []MediaFeature // Parenthesized conditions in source order
}

// MediaFeature represents a single "(name: value)" condition.
type MediaFeature struct {
	Name  string // Feature name (e.g., "min-width")
	Value Value  // Feature value, empty for boolean features like "(color)"
}

// feature returns the first feature with given name.
func (mq MediaQuery) feature(name string) (MediaFeature, bool) {
	for _, f := range mq.Features {
		if f.Name == name {
			return f, true
		}
	}
	return MediaFeature{}, false
}

// MinWidth returns lower viewport bound in px if query has one.
func (mq MediaQuery) MinWidth() (float64, bool) {
	return mq.pxFeature("min-width")
}

// MaxWidth returns upper viewport bound in px if query has one.
func (mq MediaQuery) MaxWidth() (float64, bool) {
	return mq.pxFeature("max-width")
}

func (mq MediaQuery) pxFeature(name string) (float64, bool) {
	f, ok := mq.feature(name)
	if !ok || f.Value.Unit != "px" {
		return 0, false
	}
	return f.Value.Value, true
}

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "rem", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsNumeric returns true if the value has a numeric component.
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Keyword != "" || v.Raw == "" {
		return false
	}
	_, err := strconv.ParseFloat(v.Raw, 64)
	return err == nil
}

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    Value
}

// Rule represents a CSS rule. Nested rules keep their own selectors, "&"
// included, exactly as written.
type Rule struct {
	Selector     string
	Declarations []Declaration // In source order, duplicates preserved
	Nested       []Rule
}

// GetProperty returns the last value declared for a property.
func (r Rule) GetProperty(name string) (Value, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i].Value, true
		}
	}
	return Value{}, false
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule or MediaBlock is non-nil.
type StylesheetItem struct {
	Rule       *Rule       // A plain rule
	MediaBlock *MediaBlock // A @media block containing nested rules
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query MediaQuery
	Rules []Rule
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Unsupported features and parse problems
}

// Rules returns top-level rules in source order.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

// MediaBlocks returns all @media blocks in source order.
func (s *Stylesheet) MediaBlocks() []MediaBlock {
	var blocks []MediaBlock
	for _, item := range s.Items {
		if item.MediaBlock != nil {
			blocks = append(blocks, *item.MediaBlock)
		}
	}
	return blocks
}

// RulesBySelector returns all top-level rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, "")
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a rule and its nested rules with given indentation.
func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "%s  %s: %s;\n", indent, d.Property, d.Value.Raw)
		total += n
		if err != nil {
			return total, err
		}
	}
	for i := range rule.Nested {
		n, err = writeRule(w, &rule.Nested[i], indent+"  ")
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

// writeMediaBlock writes an @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query.Raw)
	total += n
	if err != nil {
		return total, err
	}

	for i := range mb.Rules {
		n, err = writeRule(w, &mb.Rules[i], "  ")
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules in a media block (except after last)
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
