package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/maxvaer/dirscan/internal/config"
	"github.com/maxvaer/dirscan/internal/runner"
	"github.com/maxvaer/dirscan/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const usageText = `Usage: dirscan <base_url> <wordlist>
Example: dirscan http://localhost:3000 wordlist.txt
`

type flagGroup struct {
	title string
	flags []string
}

var helpGroups = []flagGroup{
	{"OUTPUT", []string{"no-color", "verbose"}},
	{"INFO", []string{"help", "version"}},
}

// usageError marks a malformed invocation; the usage text is printed
// alongside the error.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newUsageError(format string, args ...any) error {
	return &usageError{err: &config.Error{Op: "usage", Err: fmt.Errorf(format, args...)}}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := config.Defaults()

	cmd := &cobra.Command{
		Use:     "dirscan <base_url> <wordlist>",
		Short:   "Simple directory discovery with status grouping",
		Version: version.Version,
		Long: `dirscan sends one HEAD request per wordlist entry against a base URL and
groups the paths by response status. Found (200), redirected (301/302) and
forbidden (403) paths are printed as they are discovered; every outcome is
summarised at the end. TLS certificates are not verified: the tool is meant
for lab and test environments.`,
		Example: `  dirscan http://localhost:3000 wordlist.txt
  dirscan https://10.0.0.5:8443/app/ common.txt --no-color
  dirscan http://target.lab words.txt -v`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return newUsageError("expected 2 arguments (base_url, wordlist), got %d", len(args))
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.URL = strings.TrimSpace(args[0])
			opts.WordlistPath = args[1]
			if opts.URL == "" {
				return newUsageError("base_url must not be empty")
			}
			if !isTerminal(stdout) {
				opts.NoColor = true
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return runner.Run(ctx, &opts, stdout)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log the cause of ERROR/TIMEOUT outcomes to stderr")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	// Custom help: categorized flags.
	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		w := cmd.ErrOrStderr()
		fmt.Fprint(w, helpBanner(cmd.Version))
		fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.UseLine())
		fmt.Fprintf(w, "\nExamples:\n%s\n", cmd.Example)
		fmt.Fprintf(w, "\nFlags:\n")
		for _, g := range helpGroups {
			fmt.Fprintf(w, "\n%s:\n", g.title)
			for _, name := range g.flags {
				if f := cmd.Flags().Lookup(name); f != nil {
					fmt.Fprintln(w, formatFlag(f))
				}
			}
		}
		fmt.Fprintln(w)
	})

	return cmd
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprint(stderr, usageText)
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func formatFlag(f *pflag.Flag) string {
	var left string
	if f.Shorthand != "" {
		left = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	} else {
		left = fmt.Sprintf("    --%s", f.Name)
	}

	typ := f.Value.Type()
	if typ != "bool" {
		left += " " + typ
	}

	// Pad to fixed column width for aligned descriptions.
	const col = 28
	for len(left) < col {
		left += " "
	}

	right := f.Usage
	def := f.DefValue
	if def != "" && def != "false" && def != "0" && def != "0s" && def != "[]" {
		right += fmt.Sprintf(" (default %s)", def)
	}

	return "   " + left + right
}

func helpBanner(ver string) string {
	if ver != "dev" && ver != "" && !strings.HasPrefix(ver, "v") {
		ver = "v" + ver
	}
	return fmt.Sprintf(`
     _ _
  __| (_)_ __ ___  ___ __ _ _ __
 / _`+"`"+` | | '__/ __|/ __/ _`+"`"+` | '_ \
| (_| | | |  \__ \ (_| (_| | | | |
 \__,_|_|_|  |___/\___\__,_|_| |_|   %s

`, ver)
}
