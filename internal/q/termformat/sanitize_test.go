package termformat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "hello, 世界",
			want:  "hello, 世界",
		},
		{
			name:  "tab expanded when width positive",
			input: "a\tb",
			opts:  Options{TabWidth: 3},
			want:  "a   b",
		},
		{
			name:  "tab preserved when width nonpositive",
			input: "a\tb",
			want:  "a\tb",
		},
		{
			name:  "escape sequence neutralized",
			input: "\x1b[31mred\x1b[0m",
			want:  "\\x1B[31mred\\x1B[0m",
		},
		{
			name:  "control characters escaped",
			input: "\x1bX\x00Y\x7f",
			want:  "\\x1BX\\x00Y\\x7F",
		},
		{
			name:  "line breaks escaped",
			input: "line1\r\nline2",
			want:  "line1\\x0D\\x0Aline2",
		},
		{
			name:  "invalid utf8 replaced",
			input: string([]byte{0xff, 'a', 0xc1}),
			want:  "�a�",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Sanitize(tt.input, tt.opts))
		})
	}
}
