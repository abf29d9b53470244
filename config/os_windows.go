//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/term"
)

// CleanFileName drops characters Windows does not allow in file names.
func CleanFileName(in string) string {
	const forbidden = `<>":/\|?*` + string(os.PathSeparator) + string(os.PathListSeparator)

	out := strings.Map(func(sym rune) rune {
		if sym == 0 || strings.ContainsRune(forbidden, sym) {
			return -1
		}
		return sym
	}, in)
	if len(out) == 0 {
		return "_bad_file_name_"
	}
	return out
}

// EnableColorOutput reports if stream is a Windows 10+ console and switches
// it to VT100 sequence processing.
func EnableColorOutput(stream *os.File) bool {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	if v, _, err := k.GetIntegerValue("CurrentMajorVersionNumber"); err != nil || v < 10 {
		return false
	}
	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	const enableVirtualTerminalProcessing uint32 = 0x4

	h := windows.Handle(stream.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|enableVirtualTerminalProcessing) == nil
}
