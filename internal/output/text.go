package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/maxvaer/dirscan/internal/scanner"
)

const (
	// maxExamples is how many paths per outcome the summary lists.
	maxExamples = 3

	forbiddenCode = 403
)

// TextWriter writes human-readable, optionally coloured output.
type TextWriter struct {
	w     io.Writer
	style styles
}

// NewTextWriter creates a text output writer on w. noColor forces plain
// output even on a terminal.
func NewTextWriter(w io.Writer, noColor bool) *TextWriter {
	return &TextWriter{w: w, style: newStyles(w, noColor)}
}

func (t *TextWriter) WriteHeader(target, wordlist string, pathCount int) error {
	if _, err := fmt.Fprintf(t.w, "%s Scanning %s with wordlist: %s\n",
		t.style.info.Render("[+]"), target, wordlist); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.w, "%s Loaded %d paths.\n", t.style.info.Render("[+]"), pathCount)
	return err
}

func (t *TextWriter) WriteResult(result *scanner.Result) error {
	if !result.Outcome.IsStatus() {
		return nil
	}
	cat := CategoryFor(result.Outcome.Code)
	if cat == CategoryNone {
		return nil
	}
	st := t.style.forCategory(cat)
	_, err := fmt.Fprintf(t.w, "%s %-9s %s\n",
		st.Render(fmt.Sprintf("[%d]", result.Outcome.Code)),
		cat.Label(),
		result.Path,
	)
	return err
}

func (t *TextWriter) WriteFooter(results *scanner.Results) error {
	if err := t.writeSummary(results); err != nil {
		return err
	}
	return t.writeAdvisory(results)
}

func (t *TextWriter) writeSummary(results *scanner.Results) error {
	if _, err := fmt.Fprintf(t.w, "\n%s %s\n",
		t.style.info.Render("[=]"), t.style.section.Render("Scan complete. Summary:")); err != nil {
		return err
	}
	for _, o := range results.Outcomes() {
		paths := results.Paths(o)
		examples := paths
		if len(examples) > maxExamples {
			examples = examples[:maxExamples]
		}
		label := o.String()
		if o.IsStatus() {
			label = t.style.forCategory(CategoryFor(o.Code)).Render(label)
		} else {
			label = t.style.muted.Render(label)
		}
		if _, err := fmt.Fprintf(t.w, "  %s: %d path(s) - e.g., %s\n",
			label, len(paths), strings.Join(examples, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// writeAdvisory reminds the user that a 403 is not a dead end: a sibling
// variant of the same path may still be reachable.
func (t *TextWriter) writeAdvisory(results *scanner.Results) error {
	n := results.Count(scanner.Status(forbiddenCode))
	if n == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(t.w, "\n%s Tip: %d path(s) returned 403 (Forbidden).\n",
		t.style.denied.Render("[!]"), n); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.w,
		"    A 403 on /admin can hide a 200 on /admin/; try nearby variants such as a trailing slash manually.")
	return err
}
