// Package termformat prepares untrusted text for display in a terminal.
package termformat

import (
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789ABCDEF"

// Options configure Sanitize.
type Options struct {
	// TabWidth, if > 0, replaces each \t with that many spaces. Otherwise \t is kept.
	TabWidth int
}

// Sanitize makes s safe to write to a terminal:
//   - ASCII control characters (<= 0x1F, 0x7F) become "\xXX" (ex: ESC becomes `\x1B`), so embedded escape sequences cannot restyle or move the cursor.
//   - Line breaks are escaped too, so one line of input stays on one terminal row. Tabs are handled per opts.
//   - Invalid UTF-8 is replaced by U+FFFD.
func Sanitize(s string, opts Options) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune('�')
			i++
			continue
		}
		i += size

		switch {
		case r == '\t' && opts.TabWidth > 0:
			b.WriteString(strings.Repeat(" ", opts.TabWidth))
		case r == '\t':
			b.WriteByte('\t')
		case r < 0x20 || r == 0x7F:
			code := byte(r)
			b.WriteByte('\\')
			b.WriteByte('x')
			b.WriteByte(hexDigits[code>>4])
			b.WriteByte(hexDigits[code&0x0F])
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
