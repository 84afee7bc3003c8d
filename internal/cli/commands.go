package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"golang.org/x/sync/errgroup"

	"github.com/codalotl/textdiff/internal/diff"
	"github.com/codalotl/textdiff/internal/q/uni"
	"github.com/codalotl/textdiff/internal/report"
	"github.com/codalotl/textdiff/internal/simplelogger"
)

// Markup names accepted by --markup. "auto" means ansi when color is enabled, word otherwise.
const (
	markupAuto = "auto"
	markupWord = "word"
	markupHTML = "html"
	markupANSI = "ansi"
)

type diffArgs struct {
	old      string
	new      string
	context  int
	oldLabel string
	newLabel string
	modify   bool
	exitCode bool
	pretty   bool
	tabWidth int
}

func (r *runner) configureDiff(app *kingpin.Application) {
	cmd := app.Command("diff", "Print a unified diff of two files. Use - to read one side from stdin.").Default()
	cmd.Arg("old", "Old file.").Required().StringVar(&r.diff.old)
	cmd.Arg("new", "New file.").Required().StringVar(&r.diff.new)
	cmd.Flag("unified", "Lines of context around each hunk.").Short('U').Default(strconv.Itoa(r.cfg.Context)).IntVar(&r.diff.context)
	cmd.Flag("label-old", "Label for the old file in the --- header.").StringVar(&r.diff.oldLabel)
	cmd.Flag("label-new", "Label for the new file in the +++ header.").StringVar(&r.diff.newLabel)
	cmd.Flag("modify", "Pair deleted and inserted lines into modifications.").Default(strconv.FormatBool(r.cfg.CoalesceModify)).BoolVar(&r.diff.modify)
	cmd.Flag("exit-code", "Exit with status 1 if the files differ.").BoolVar(&r.diff.exitCode)
	cmd.Flag("pretty", "Colorized view with changed characters highlighted, instead of a unified diff.").BoolVar(&r.diff.pretty)
	cmd.Flag("tab-width", "Expand tabs to this many spaces in --pretty output (0 keeps tabs).").Default(strconv.Itoa(r.cfg.TabWidth)).IntVar(&r.diff.tabWidth)
}

func (r *runner) runDiff() error {
	if r.diff.context < 0 {
		return usageErrorf("--unified must be >= 0 (got %d)", r.diff.context)
	}
	if r.diff.tabWidth < 0 {
		return usageErrorf("--tab-width must be >= 0 (got %d)", r.diff.tabWidth)
	}
	oldText, newText, err := r.readPair(r.diff.old, r.diff.new)
	if err != nil {
		return err
	}
	if err := r.checkLimits(oldText, newText); err != nil {
		return err
	}

	oldLabel, newLabel := r.labels(r.diff.old, r.diff.new, r.diff.oldLabel, r.diff.newLabel)
	opts := []diff.Option{
		diff.WithContext(r.diff.context),
		diff.WithLabels(oldLabel, newLabel),
		diff.WithColor(r.useColor()),
		diff.WithTabWidth(r.diff.tabWidth),
	}
	if r.diff.modify {
		opts = append(opts, diff.WithModifyCoalescing())
	}

	entries := diff.ComputeDiff(oldText, newText, opts...)
	stats := diff.ComputeStats(entries)
	simplelogger.Log("diff: %d entries, +%d -%d ~%d", stats.TotalLines, stats.Additions, stats.Deletions, stats.Modifications)
	if !stats.Changed() {
		return nil
	}

	if r.diff.pretty {
		fmt.Fprintln(r.out, diff.RenderPretty(entries, opts...))
	} else {
		fmt.Fprintln(r.out, diff.Unified(entries, opts...))
	}
	if r.diff.exitCode {
		return errDifferences
	}
	return nil
}

type wordsArgs struct {
	old    string
	new    string
	markup string
	modify bool
}

func (r *runner) configureWords(app *kingpin.Application) {
	cmd := app.Command("words", "Print a word diff of two files inline.")
	cmd.Arg("old", "Old file.").Required().StringVar(&r.words.old)
	cmd.Arg("new", "New file.").Required().StringVar(&r.words.new)
	cmd.Flag("markup", "Markers for changed words: auto, word, html, or ansi.").Default(markupAuto).EnumVar(&r.words.markup, markupAuto, markupWord, markupHTML, markupANSI)
	cmd.Flag("modify", "Pair deleted and inserted words into modifications.").Default(strconv.FormatBool(r.cfg.CoalesceModify)).BoolVar(&r.words.modify)
}

func (r *runner) runWords() error {
	oldText, newText, err := r.readPair(r.words.old, r.words.new)
	if err != nil {
		return err
	}
	if err := r.checkLimits(oldText, newText); err != nil {
		return err
	}

	var opts []diff.Option
	if r.words.modify {
		opts = append(opts, diff.WithModifyCoalescing())
	}
	out := diff.FormatWordDiff(diff.ComputeWordDiff(oldText, newText, opts...), r.markup(r.words.markup))
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = fmt.Fprint(r.out, out)
	return err
}

type inlineArgs struct {
	old    string
	new    string
	markup string
}

func (r *runner) configureInline(app *kingpin.Application) {
	cmd := app.Command("inline", "Highlight the changed characters between two lines given as arguments.")
	cmd.Arg("old-line", "Old line.").Required().StringVar(&r.inline.old)
	cmd.Arg("new-line", "New line.").Required().StringVar(&r.inline.new)
	cmd.Flag("markup", "Markers for changed characters: auto, word, html, or ansi.").Default(markupAuto).EnumVar(&r.inline.markup, markupAuto, markupWord, markupHTML, markupANSI)
}

func (r *runner) runInline() error {
	if err := r.cfg.Limits().CheckLine(r.inline.old, r.inline.new); err != nil {
		simplelogger.Log("inline: rejected: %v", err)
		return err
	}
	oldMarked, newMarked := diff.HighlightInline(r.inline.old, r.inline.new, diff.WithMarkup(r.markup(r.inline.markup)))
	_, err := fmt.Fprintf(r.out, "%s\n%s\n", oldMarked, newMarked)
	return err
}

type statArgs struct {
	paths  []string
	modify bool
}

type statRow struct {
	oldPath string
	newPath string
	stats   diff.Stats
}

func (r *runner) configureStat(app *kingpin.Application) {
	cmd := app.Command("stat", "Print change counts for one or more pairs of files.")
	cmd.Arg("pairs", "Files, as OLD NEW [OLD NEW ...].").Required().StringsVar(&r.stat.paths)
	cmd.Flag("modify", "Pair deleted and inserted lines into modifications.").Default(strconv.FormatBool(r.cfg.CoalesceModify)).BoolVar(&r.stat.modify)
}

func (r *runner) runStat(ctx context.Context) error {
	if len(r.stat.paths)%2 != 0 {
		return usageErrorf("stat needs pairs of files, got %d paths", len(r.stat.paths))
	}
	for _, p := range r.stat.paths {
		if p == stdinPath {
			return usageErrorf("stat cannot read from stdin")
		}
	}

	var opts []diff.Option
	if r.stat.modify {
		opts = append(opts, diff.WithModifyCoalescing())
	}

	rows := make([]statRow, len(r.stat.paths)/2)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range rows {
		i := i
		oldPath, newPath := r.stat.paths[2*i], r.stat.paths[2*i+1]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			oldText, newText, err := r.readPair(oldPath, newPath)
			if err != nil {
				return err
			}
			if err := r.checkLimits(oldText, newText); err != nil {
				return fmt.Errorf("%s vs %s: %w", oldPath, newPath, err)
			}
			rows[i] = statRow{oldPath: oldPath, newPath: newPath, stats: diff.ComputeStats(diff.ComputeDiff(oldText, newText, opts...))}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writeStatTable(r.out, rows, &uni.Options{EastAsianWidth: r.cfg.EastAsianWidth})
}

func writeStatTable(w io.Writer, rows []statRow, opts *uni.Options) error {
	table := [][]string{{"OLD", "NEW", "+", "-", "~", "TOTAL"}}
	for _, row := range rows {
		table = append(table, []string{
			row.oldPath,
			row.newPath,
			strconv.Itoa(row.stats.Additions),
			strconv.Itoa(row.stats.Deletions),
			strconv.Itoa(row.stats.Modifications),
			strconv.Itoa(row.stats.TotalLines),
		})
	}

	widths := make([]int, len(table[0]))
	for _, cells := range table {
		for c, cell := range cells {
			widths[c] = max(widths[c], uni.TextWidth(cell, opts))
		}
	}

	var b strings.Builder
	for _, cells := range table {
		for c, cell := range cells {
			if c > 0 {
				b.WriteString("  ")
			}
			// Paths are left-aligned, counts right-aligned.
			if c < 2 {
				b.WriteString(uni.PadRight(cell, widths[c], opts))
			} else {
				b.WriteString(uni.PadLeft(cell, widths[c], opts))
			}
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type reportArgs struct {
	old      string
	new      string
	output   string
	context  int
	oldLabel string
	newLabel string
	modify   bool
}

func (r *runner) configureReport(app *kingpin.Application) {
	cmd := app.Command("report", "Write an HTML report of the differences between two files.")
	cmd.Arg("old", "Old file.").Required().StringVar(&r.report.old)
	cmd.Arg("new", "New file.").Required().StringVar(&r.report.new)
	cmd.Flag("output", "Write the report to this file instead of stdout.").Short('o').StringVar(&r.report.output)
	cmd.Flag("unified", "Lines of context around each hunk.").Short('U').Default(strconv.Itoa(r.cfg.Context)).IntVar(&r.report.context)
	cmd.Flag("label-old", "Label for the old file.").StringVar(&r.report.oldLabel)
	cmd.Flag("label-new", "Label for the new file.").StringVar(&r.report.newLabel)
	cmd.Flag("modify", "Pair deleted and inserted lines into modifications.").Default(strconv.FormatBool(r.cfg.CoalesceModify)).BoolVar(&r.report.modify)
}

func (r *runner) runReport() (err error) {
	if r.report.context < 0 {
		return usageErrorf("--unified must be >= 0 (got %d)", r.report.context)
	}
	oldText, newText, err := r.readPair(r.report.old, r.report.new)
	if err != nil {
		return err
	}
	if err := r.checkLimits(oldText, newText); err != nil {
		return err
	}

	oldLabel, newLabel := r.labels(r.report.old, r.report.new, r.report.oldLabel, r.report.newLabel)
	in := report.Input{OldLabel: oldLabel, NewLabel: newLabel, OldText: oldText, NewText: newText}
	opts := []diff.Option{diff.WithContext(r.report.context)}
	if r.report.modify {
		opts = append(opts, diff.WithModifyCoalescing())
	}

	if r.report.output == "" {
		return report.WriteHTML(r.out, in, opts...)
	}

	f, err := os.Create(r.resolve(r.report.output))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return report.WriteHTML(f, in, opts...)
}
