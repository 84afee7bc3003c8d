package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPretty_ChangedPair(t *testing.T) {
	entries := ComputeDiff("x\nkeep", "y\nkeep")

	rendered := RenderPretty(entries, WithLabels("a.go", "a.go"))
	exp := "\x1b[1;36ma.go:\x1b[0m\n" +
		"\x1b[30m\x1b[48;5;224m-\x1b[0m\x1b[30m\x1b[48;5;217mx\x1b[0m\x1b[30m\x1b[48;5;224m\x1b[0m\n" +
		"\x1b[30m\x1b[48;5;194m+\x1b[0m\x1b[30m\x1b[48;5;114my\x1b[0m\x1b[30m\x1b[48;5;194m\x1b[0m"
	assert.Equal(t, exp, rendered)

	withContext := RenderPretty(entries, WithLabels("a.go", "a.go"), WithContext(1))
	assert.Equal(t, exp+"\n\x1b[30m keep\x1b[0m", withContext)
}

func TestRenderPretty_IntraLine(t *testing.T) {
	entries := ComputeDiff("return x", "return y")
	rendered := RenderPretty(entries, WithLabels("", ""))

	lines := strings.Split(rendered, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "-return x", stripANSI(lines[0]))
	assert.Equal(t, "+return y", stripANSI(lines[1]))
	// Only the changed character gets the span color.
	assert.Contains(t, lines[0], "-return \x1b[0m\x1b[30m\x1b[48;5;217mx")
	assert.Contains(t, lines[1], "+return \x1b[0m\x1b[30m\x1b[48;5;114my")
}

func TestRenderPretty_UnpairedLines(t *testing.T) {
	entries := ComputeDiff("a", "b\nc")
	rendered := RenderPretty(entries, WithLabels("", ""))

	lines := strings.Split(rendered, "\n")
	assert.Equal(t, []string{"-a", "+b", "+c"}, []string{stripANSI(lines[0]), stripANSI(lines[1]), stripANSI(lines[2])})
	assert.Equal(t, "\x1b[30m\x1b[48;5;194m+\x1b[0m\x1b[30m\x1b[48;5;114mc\x1b[0m\x1b[30m\x1b[48;5;194m\x1b[0m", lines[2])
}

func TestRenderPretty_Sanitizes(t *testing.T) {
	entries := ComputeDiff("ok\n\x1b[31mred", "ok\nplain")
	rendered := RenderPretty(entries, WithLabels("", ""))
	assert.Contains(t, rendered, `\x1B[31m`)
	assert.NotContains(t, stripANSI(rendered), "\x1b")
}

func TestRenderPretty_NoChanges(t *testing.T) {
	entries := ComputeDiff("same", "same")
	assert.Equal(t, "", RenderPretty(entries, WithLabels("", "")))
}

func TestRenderPretty_Header(t *testing.T) {
	entries := ComputeDiff("old", "new")

	cases := []struct {
		name       string
		from       string
		to         string
		wantHeader string // empty means no header expected
	}{
		{name: "no labels", from: "", to: "", wantHeader: ""},
		{name: "add file", from: "", to: "somefile.go", wantHeader: "add somefile.go:"},
		{name: "delete file", from: "somefile.go", to: "", wantHeader: "delete somefile.go:"},
		{name: "same name", from: "same.go", to: "same.go", wantHeader: "same.go:"},
		{name: "rename", from: "old.go", to: "new.go", wantHeader: "old.go -> new.go:"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := RenderPretty(entries, WithLabels(tc.from, tc.to))
			firstLine, _, _ := strings.Cut(r, "\n")
			if tc.wantHeader == "" {
				assert.Equal(t, "-old", stripANSI(firstLine))
				return
			}
			assert.Equal(t, cyanBold+tc.wantHeader+reset, firstLine)
		})
	}

	// Default labels.
	first, _, _ := strings.Cut(RenderPretty(entries), "\n")
	assert.Equal(t, "original -> modified:", stripANSI(first))
}

func TestRenderPretty_ModifyEntries(t *testing.T) {
	plain := RenderPretty(ComputeDiff("ab\ncd", "aX\ncY"), WithLabels("", ""))
	coalesced := RenderPretty(ComputeDiff("ab\ncd", "aX\ncY", WithModifyCoalescing()), WithLabels("", ""))
	assert.Equal(t, plain, coalesced)
}

func TestRenderPretty_TabWidth(t *testing.T) {
	entries := ComputeDiff("\tkeep\n\told", "\tkeep\n\tnew")

	kept := stripANSI(RenderPretty(entries, WithLabels("", ""), WithContext(1)))
	assert.Equal(t, " \tkeep\n-\told\n+\tnew", kept)

	expanded := stripANSI(RenderPretty(entries, WithLabels("", ""), WithContext(1), WithTabWidth(2)))
	assert.Equal(t, "   keep\n-  old\n+  new", expanded)
}
