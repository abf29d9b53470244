// Package styles generates CSS text fragments for component styling: px to
// rem conversion, hex color checks, border and ellipsis declarations, boolean
// prop filtering and mobile-first media query wrappers keyed by breakpoint.
//
// All helpers are pure. Invalid arguments are reported as *Error values
// carrying an ErrorKind.
package styles
