// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Command decasify converts text to title, sentence, lower or upper case
// following the conventions of a locale.
//
// Words given as arguments are joined with a single space and converted
// as one line, otherwise every line read from stdin is converted on its
// own:
//
//	$ decasify -l tr ilki ılık öğlen
//	İlki Ilık Öğlen
//	$ echo 'once upon a time' | decasify -s cmos
//	Once upon a Time
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/charlievieth/decasify"
)

// Set with -ldflags "-X main.version=..."
var version = "devel"

// Environment variables that provide defaults for the corresponding flags.
const (
	envLocale    = "DECASIFY_LOCALE"
	envCase      = "DECASIFY_CASE"
	envStyle     = "DECASIFY_STYLE"
	envOverrides = "DECASIFY_OVERRIDES"
)

const maxLineSize = 1024 * 1024

var (
	_ pflag.Value = (*decasify.Locale)(nil)
	_ pflag.Value = (*decasify.Case)(nil)
	_ pflag.Value = (*decasify.StyleGuide)(nil)
)

type command struct {
	opts      decasify.Options
	overrides []string
	progress  bool
	debug     bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	log    *log.Logger
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	c := &command{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		getenv: getenv,
		log:    &log.Logger{Handler: cli.New(stderr), Level: log.WarnLevel},
	}
	cmd := &cobra.Command{
		Use:   "decasify [flags] [words...]",
		Short: "Convert text to title, sentence, lower or upper case",
		Long: "Convert text to title, sentence, lower or upper case following the\n" +
			"typesetting conventions of a locale.\n\n" +
			"Words given as arguments are joined with a single space, otherwise\n" +
			"each line read from stdin is converted.\n\n" +
			"Flag defaults may be set with the " + envLocale + ", " + envCase + ",\n" +
			envStyle + " and " + envOverrides + " environment variables.",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE:    c.run,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.VarP(&c.opts.Locale, "locale", "l",
		"locale of the input ("+strings.Join(decasify.LocaleNames(), ", ")+")")
	flags.VarP(&c.opts.Case, "case", "c",
		"target case ("+strings.Join(decasify.CaseNames(), ", ")+")")
	flags.VarP(&c.opts.Style, "style", "s",
		"title case style guide ("+strings.Join(decasify.StyleGuideNames(), ", ")+")")
	flags.StringArrayVarP(&c.overrides, "overrides", "O", nil,
		"comma separated words whose casing is preserved (may be repeated)")
	flags.BoolVar(&c.progress, "progress", false, "show progress on stderr while reading stdin")
	flags.BoolVar(&c.debug, "debug", false, "enable debug logging")

	complete := func(names []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return names, cobra.ShellCompDirectiveNoFileComp
		}
	}
	cmd.RegisterFlagCompletionFunc("locale", complete(decasify.LocaleNames()))
	cmd.RegisterFlagCompletionFunc("case", complete(decasify.CaseNames()))
	cmd.RegisterFlagCompletionFunc("style", complete(decasify.StyleGuideNames()))
	return cmd
}

// applyEnv sets the options that were not given on the command line from
// the environment.
func (c *command) applyEnv(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for _, e := range []struct {
		flag, env string
		value     interface{ Set(string) error }
	}{
		{"locale", envLocale, &c.opts.Locale},
		{"case", envCase, &c.opts.Case},
		{"style", envStyle, &c.opts.Style},
	} {
		if flags.Changed(e.flag) {
			continue
		}
		if v := c.getenv(e.env); v != "" {
			if err := e.value.Set(v); err != nil {
				return fmt.Errorf("%s: %w", e.env, err)
			}
		}
	}
	if !flags.Changed("overrides") {
		if v := c.getenv(envOverrides); v != "" {
			c.overrides = []string{v}
		}
	}
	return nil
}

func (c *command) parseOverrides() error {
	var words []string
	for _, s := range c.overrides {
		w, err := decasify.ParseOverrides(s)
		if err != nil {
			return err
		}
		words = append(words, w...)
	}
	c.opts.Overrides = words
	return nil
}

func (c *command) run(cmd *cobra.Command, args []string) error {
	if c.debug {
		c.log.Level = log.DebugLevel
	}
	decasify.SetLogger(c.log)
	defer decasify.SetLogger(nil)

	if err := c.applyEnv(cmd); err != nil {
		return err
	}
	if err := c.parseOverrides(); err != nil {
		return err
	}
	if err := c.opts.Validate(); err != nil {
		return err
	}
	// Usage is only useful for invalid arguments.
	cmd.SilenceUsage = true

	c.log.WithFields(log.Fields{
		"locale":    c.opts.Locale,
		"case":      c.opts.Case,
		"style":     c.opts.Style,
		"overrides": strings.Join(c.opts.Overrides, ","),
	}).Debug("options")

	w := bufio.NewWriter(c.stdout)
	if len(args) > 0 {
		if err := c.convertLine(w, strings.Join(args, " ")); err != nil {
			return err
		}
		return w.Flush()
	}
	if err := c.convertLines(w, c.input()); err != nil {
		return err
	}
	return w.Flush()
}

func (c *command) convertLine(w *bufio.Writer, line string) error {
	s, err := c.opts.Convert(line)
	if err != nil {
		return err
	}
	w.WriteString(s)
	return w.WriteByte('\n')
}

func (c *command) convertLines(w *bufio.Writer, r io.Reader) error {
	start := time.Now()
	lines := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines++
		if err := c.convertLine(w, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	c.log.WithFields(log.Fields{
		"lines":    lines,
		"duration": time.Since(start),
	}).Debug("done")
	return nil
}

// input returns stdin, wrapped with a progress spinner when requested and
// stderr is a terminal.
func (c *command) input() io.Reader {
	if !c.progress || !isTerminal(c.stderr) {
		return c.stdin
	}
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(c.stderr),
		progressbar.OptionSetDescription("decasify"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return &progressReader{r: io.TeeReader(c.stdin, bar), bar: bar}
}

// progressReader finishes the progress bar once the input is exhausted.
type progressReader struct {
	r   io.Reader
	bar *progressbar.ProgressBar
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if err == io.EOF {
		p.bar.Finish()
	}
	return n, err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr, os.Getenv)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
