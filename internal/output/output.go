package output

import "github.com/maxvaer/dirscan/internal/scanner"

// Writer is implemented by each output format.
type Writer interface {
	// WriteHeader announces the target, the wordlist and how many paths
	// were loaded from it.
	WriteHeader(target, wordlist string, pathCount int) error
	// WriteResult prints a live line for an interesting result.
	WriteResult(result *scanner.Result) error
	// WriteFooter prints the grouped summary once the scan is over.
	WriteFooter(results *scanner.Results) error
}
