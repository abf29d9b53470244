//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName drops path and list separators and leading dots so the result
// could be used as a single file name.
func CleanFileName(in string) string {
	const forbidden = string(os.PathSeparator) + string(os.PathListSeparator)

	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if strings.ContainsRune(forbidden, sym) {
			return -1
		}
		return sym
	}, in), ".")
	if len(out) == 0 {
		return "_bad_file_name_"
	}
	return out
}

// EnableColorOutput reports if stream is a terminal.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
