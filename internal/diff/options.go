package diff

const (
	defaultOldLabel = "original"
	defaultNewLabel = "modified"
)

// Option configures the functions of this package. Each function documents which options it reads; the others are ignored.
type Option func(*options)

type options struct {
	coalesce bool
	oldLabel string
	newLabel string
	context  int
	color    bool
	markup   Markup
	tabWidth int
}

func newOptions(opts []Option) options {
	o := options{
		oldLabel: defaultOldLabel,
		newLabel: defaultNewLabel,
		markup:   HTMLMarkup,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithModifyCoalescing pairs the deletions and insertions of each changed region into OpModify entries: the k-th deletion with the k-th insertion. Unpaired
// entries stay OpDelete or OpInsert and follow the pairs. Off by default.
func WithModifyCoalescing() Option {
	return func(o *options) {
		o.coalesce = true
	}
}

// WithLabels sets the names printed in the "---" and "+++" header lines (defaults: "original" and "modified").
func WithLabels(oldLabel, newLabel string) Option {
	return func(o *options) {
		o.oldLabel = oldLabel
		o.newLabel = newLabel
	}
}

// WithContext adds up to n unchanged lines before and after each hunk. Hunks separated by at most 2n unchanged lines are merged. Negative n is treated as 0.
func WithContext(n int) Option {
	return func(o *options) {
		o.context = max(n, 0)
	}
}

// WithColor adds ANSI colors to unified reports.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

// WithMarkup sets the markup used by HighlightInline (default HTMLMarkup).
func WithMarkup(m Markup) Option {
	return func(o *options) {
		o.markup = m
	}
}

// WithTabWidth expands each tab to n spaces in RenderPretty output. With n <= 0 (the default), tabs are written as is.
func WithTabWidth(n int) Option {
	return func(o *options) {
		o.tabWidth = n
	}
}
