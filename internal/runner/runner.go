package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/maxvaer/dirscan/internal/config"
	"github.com/maxvaer/dirscan/internal/filter"
	"github.com/maxvaer/dirscan/internal/output"
	"github.com/maxvaer/dirscan/internal/scanner"
	"github.com/maxvaer/dirscan/internal/wordlist"
)

// Run executes the full scan pipeline and writes everything user-facing to
// out. Configuration problems are returned as *config.Error before any
// request is sent; individual probe failures never make Run fail.
func Run(ctx context.Context, opts *config.Options, out io.Writer) error {
	logger := newLogger(os.Stderr, opts.Verbose)

	// 1. Load wordlist.
	paths, err := wordlist.Load(opts.WordlistPath)
	if err != nil {
		return err
	}

	// 2. Create HTTP requester.
	req, err := scanner.NewRequester(opts)
	if err != nil {
		return err
	}

	// 3. Live output only for interesting status codes.
	live := filter.NewStatusFilter(config.InterestingStatus)

	w := output.NewTextWriter(out, opts.NoColor)
	if err := w.WriteHeader(opts.URL, opts.WordlistPath, len(paths)); err != nil {
		return err
	}

	// 4. Probe every path in order.
	var writeErr error
	results, err := scanner.Run(ctx, req, paths, func(result *scanner.Result) {
		if result.Err != nil {
			logger.Debug("probe failed",
				slog.String("path", result.Path),
				slog.String("url", result.URL),
				slog.String("outcome", result.Outcome.String()),
				slog.Duration("elapsed", result.Duration),
				slog.String("error", result.Err.Error()))
		}
		if live.ShouldFilter(result) {
			return
		}
		if err := w.WriteResult(result); err != nil && writeErr == nil {
			writeErr = err
		}
	})
	if err != nil {
		return fmt.Errorf("scan interrupted after %d of %d paths: %w", results.Total(), len(paths), err)
	}
	if writeErr != nil {
		return fmt.Errorf("writing results: %w", writeErr)
	}

	// 5. Summary and 403 advisory.
	return w.WriteFooter(results)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
