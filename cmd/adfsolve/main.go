// Command adfsolve reads a textual Abstract Dialectical Framework (spec §6's
// parser contract), solves it for its complete two-valued and/or admissible
// three-valued interpretations, and reports their model counts -- or, with
// -to-bn, converts it to a Boolean-network text file instead of solving it.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"

	"github.com/go-adf/adfbdd/internal/model"
	"github.com/go-adf/adfbdd/internal/textadf"
	"github.com/go-adf/adfbdd/pkg/adf"
)

func main() {
	var (
		strategy   = flag.String("strategy", string(adf.StrategyNaiveGreedy), "conjunction strategy to use")
		maxOutput  = flag.Int("max-output-estimate", adf.DefaultMaxOutputEstimate, "writer refusal bound (see -to-bn)")
		timeout    = flag.Duration("timeout", 0, "abort solving after this long (0 disables)")
		toBn       = flag.Bool("to-bn", false, "convert the ADF to Boolean-network text instead of solving it")
		wantTwo    = flag.Bool("complete", true, "compute the complete two-valued model set")
		wantThree  = flag.Bool("admissible", true, "compute the admissible three-valued model set")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "adfsolve",
		Level: hclog.Warn,
	})
	if *verbose {
		logger.SetLevel(hclog.Debug)
	}

	source, filename, err := readSource(flag.Arg(0))
	if err != nil {
		logger.Error("reading input", "error", err)
		os.Exit(1)
	}

	cfg := adf.DefaultConfig()
	cfg.SolverStrategy = adf.StrategyName(*strategy)
	cfg.MaxOutputEstimate = *maxOutput
	cfg.Logger = logger

	if err := run(runOptions{
		source:    source,
		filename:  filename,
		cfg:       cfg,
		timeout:   *timeout,
		toBn:      *toBn,
		wantTwo:   *wantTwo,
		wantThree: *wantThree,
	}); err != nil {
		logger.Error("adfsolve failed", "error", err)
		os.Exit(1)
	}
}

type runOptions struct {
	source    string
	filename  string
	cfg       adf.Config
	timeout   time.Duration
	toBn      bool
	wantTwo   bool
	wantThree bool
}

func run(opts runOptions) error {
	rawAdf, err := textadf.Parse(opts.source, opts.filename)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", opts.filename, err)
	}

	if opts.toBn {
		text, err := textadf.WriteBnet(rawAdf, opts.cfg.MaxOutputEstimate)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	}

	publicAdf, err := adf.NewExpressionAdf(rawAdf.Statements(), conditionsOf(rawAdf))
	if err != nil {
		return err
	}

	symbolic, err := adf.Build(publicAdf)
	if err != nil {
		return fmt.Errorf("building symbolic encoding: %w", err)
	}

	solver, err := adf.NewSolver(opts.cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	if opts.wantTwo {
		complete, err := solver.SolveCompleteTwoValued(ctx, symbolic)
		if err != nil {
			return fmt.Errorf("solving complete two-valued interpretations: %w", err)
		}
		fmt.Printf("complete two-valued model count: %s\n", formatCount(complete.ModelCount()))
	}

	if opts.wantThree {
		admissible, err := solver.SolveAdmissible(ctx, symbolic)
		if err != nil {
			return fmt.Errorf("solving admissible three-valued interpretations: %w", err)
		}
		fmt.Printf("admissible three-valued model count: %s\n", formatCount(admissible.ModelCount()))
	}

	return nil
}

// conditionsOf rebuilds the condition map textadf.Parse already validated,
// since ExpressionAdf does not expose it directly and adf.NewExpressionAdf
// re-validates from scratch -- cheap, and keeps the public constructor the
// sole place that builds a model.ExpressionAdf.
func conditionsOf(raw *model.ExpressionAdf) map[model.Statement]*model.ConditionExpression {
	out := make(map[model.Statement]*model.ConditionExpression)
	for _, s := range raw.Statements() {
		if c := raw.Condition(s); c != nil {
			out[s] = c
		}
	}
	return out
}

// readSource returns the named file's contents, or -- if path is empty --
// either stdin piped in non-interactively or an interactive REPL session
// when stdin is a terminal (gated by x/term, since a REPL makes no sense
// when input is redirected from a file or pipe).
func readSource(path string) (source, filename string, err error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		return string(data), path, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		data, err := readAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return data, "<stdin>", nil
	}

	return repl(fd)
}

func readAll(f *os.File) (string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteByte('\n')
	}
	return b.String(), scanner.Err()
}

// repl prompts the user line by line for ADF clauses, terminated by a blank
// line, wrapping its banner to the terminal's width where available.
func repl(fd int) (source, filename string, err error) {
	width := 80
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}

	fmt.Println(strings.Repeat("-", min(width, 72)))
	fmt.Println("adfsolve interactive mode -- enter s(...)./ac(...). clauses, blank line to finish")
	fmt.Println(strings.Repeat("-", min(width, 72)))

	var b strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), "<repl>", scanner.Err()
}

func formatCount(n float64) string {
	if math.IsInf(n, 1) {
		return "+Inf"
	}
	return fmt.Sprintf("%.0f", n)
}
