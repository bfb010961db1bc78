package render

import "strings"

// Sanitize strips C0 control bytes other than tab (including the ESC
// byte) from s. Every server-supplied string (author, category,
// ciphertext) passes through this before it is interpolated into a
// lipgloss-styled view, and hint letters get the same rule rune by rune
// in the client app, since an attacker-controlled string containing raw ANSI escape
// sequences could otherwise repaint or hijack the terminal.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == 0x1b || (r < 0x20 && r != '\t') {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
