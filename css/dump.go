package css

import "stylekit/utils/debug"

// Dump returns stylesheet structure as indented tree, problems found during
// parsing are listed last.
func (s *Stylesheet) Dump() string {
	tw := debug.NewTreeWriter()
	tw.Node(0, "stylesheet items=%d", len(s.Items))
	for _, item := range s.Items {
		switch {
		case item.MediaBlock != nil:
			dumpMediaBlock(tw, 1, item.MediaBlock)
		case item.Rule != nil:
			dumpRule(tw, 1, item.Rule)
		}
	}
	for _, w := range s.Warnings {
		tw.Field(1, "warning", w)
	}
	return tw.String()
}

func dumpMediaBlock(tw *debug.TreeWriter, depth int, mb *MediaBlock) {
	tw.Node(depth, "media rules=%d", len(mb.Rules))
	tw.Field(depth+1, "query", mb.Query.Raw)
	if w, ok := mb.Query.MinWidth(); ok {
		tw.Node(depth+1, "min-width %gpx", w)
	}
	if w, ok := mb.Query.MaxWidth(); ok {
		tw.Node(depth+1, "max-width %gpx", w)
	}
	for i := range mb.Rules {
		dumpRule(tw, depth+1, &mb.Rules[i])
	}
}

func dumpRule(tw *debug.TreeWriter, depth int, rule *Rule) {
	tw.Node(depth, "rule")
	tw.Field(depth+1, "selector", rule.Selector)
	for _, d := range rule.Declarations {
		tw.Field(depth+1, d.Property, d.Value.Raw)
	}
	for i := range rule.Nested {
		dumpRule(tw, depth+1, &rule.Nested[i])
	}
}
