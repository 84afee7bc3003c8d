// Package cli implements the textdiff command line program.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/codalotl/textdiff/internal/config"
	"github.com/codalotl/textdiff/internal/simplelogger"
)

// Version is the textdiff version. It is a var (not a const) so build tooling can override it (for example via `-ldflags "-X .../internal/cli.Version=1.2.3"`).
var Version = "0.1.0"

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is useful for testing, as are the remaining fields.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Getenv  func(string) string // Defaults to os.Getenv.
	HomeDir string              // Defaults to os.UserHomeDir.
	WorkDir string              // Defaults to os.Getwd. Relative paths in args are resolved against it.
}

// Run runs the CLI with args (typically you'd use os.Args).
//
// It returns a recommended exit code (0, 1, or 2) and an error, if any:
//   - 0 -> err == nil
//   - 1 -> err != nil: a runtime failure, or differences were found and --exit-code was given.
//   - 2 -> err != nil: args parse error or misuse of flags, etc.
//
// Note that in cases of errors, Run has already displayed an error message to opts.Err || Stderr. Callers may use os.Exit with the exit code.
func Run(args []string, opts *RunOptions) (exitCode int, err error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	r := newRunner(opts)

	cfg, sources, err := config.Load(config.LoadOptions{HomeDir: r.homeDir, WorkDir: r.workDir, Getenv: r.getenv})
	if err != nil {
		fmt.Fprintf(r.errW, "textdiff: %v\n", err)
		return 1, err
	}
	r.cfg = cfg
	r.sources = sources

	app := r.newApp()

	// kingpin terminates the process after --help and --version; turn that into a return.
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		t, ok := rec.(terminated)
		if !ok {
			panic(rec)
		}
		exitCode, err = t.code, nil
		if t.code != 0 {
			err = fmt.Errorf("exit code %d", t.code)
		}
	}()

	selected, err := app.Parse(argv)
	if err != nil {
		fmt.Fprintf(r.errW, "textdiff: error: %v, try --help\n", err)
		return 2, err
	}

	start := time.Now()
	simplelogger.Log("textdiff %s: start (config sources: %d)", selected, len(r.sources))
	err = r.run(context.Background(), selected)
	simplelogger.Log("textdiff %s: finished in %s, err=%v", selected, time.Since(start), err)

	return r.exitCode(err)
}

type terminated struct {
	code int
}

// exitError is an error with an explicit process exit code. If err is nil, nothing is printed.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit code %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

// errDifferences is returned for --exit-code when the inputs differ.
var errDifferences = &exitError{code: 1}

func (r *runner) exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(r.errW, "textdiff: %v\n", ee.err)
		}
		return ee.code, err
	}
	fmt.Fprintf(r.errW, "textdiff: %v\n", err)
	return 1, err
}

func (r *runner) newApp() *kingpin.Application {
	app := kingpin.New("textdiff", "Compute and render differences between texts.")
	app.Version(Version)
	app.HelpFlag.Short('h')
	app.UsageWriter(r.out)
	app.ErrorWriter(r.errW)
	app.Terminate(func(code int) { panic(terminated{code: code}) })

	app.Flag("color", "Colorize output: auto, always, or never.").
		Default(r.cfg.Color).
		EnumVar(&r.color, config.ColorAuto, config.ColorAlways, config.ColorNever)

	r.configureDiff(app)
	r.configureWords(app)
	r.configureInline(app)
	r.configureStat(app)
	r.configureReport(app)
	app.Command("config", "Print the effective configuration as JSON.")

	return app
}

func (r *runner) run(ctx context.Context, selected string) error {
	r.normalizeStdinArgs()
	switch selected {
	case "diff":
		return r.runDiff()
	case "words":
		return r.runWords()
	case "inline":
		return r.runInline()
	case "stat":
		return r.runStat(ctx)
	case "report":
		return r.runReport()
	case "config":
		return config.WriteJSON(r.out, r.cfg, r.sources)
	default:
		return usageErrorf("unknown command %q", selected)
	}
}

// runner holds resolved I/O, configuration, and flag values for one Run.
type runner struct {
	in      io.Reader
	out     io.Writer
	errW    io.Writer
	getenv  func(string) string
	homeDir string
	workDir string

	cfg     config.Config
	sources []config.Source

	color string

	diff   diffArgs
	words  wordsArgs
	inline inlineArgs
	stat   statArgs
	report reportArgs
}

func newRunner(opts *RunOptions) *runner {
	r := &runner{in: os.Stdin, out: os.Stdout, errW: os.Stderr, getenv: os.Getenv}
	if opts != nil {
		if opts.In != nil {
			r.in = opts.In
		}
		if opts.Out != nil {
			r.out = opts.Out
		}
		if opts.Err != nil {
			r.errW = opts.Err
		}
		if opts.Getenv != nil {
			r.getenv = opts.Getenv
		}
		r.homeDir = opts.HomeDir
		r.workDir = opts.WorkDir
	}
	if r.homeDir == "" {
		r.homeDir, _ = os.UserHomeDir()
	}
	if r.workDir == "" {
		r.workDir, _ = os.Getwd()
	}
	return r
}
