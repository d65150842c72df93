package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maxvaer/dirscan/internal/config"
)

// Load returns the list of paths to probe, in file order. Blank lines and
// lines starting with '#' are skipped. A file that cannot be opened yields a
// *config.Error and no entries.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &config.Error{Op: "open wordlist", Path: path, Err: err}
	}
	defer f.Close()

	paths, err := Parse(f)
	if err != nil {
		return nil, &config.Error{Op: "read wordlist", Path: path, Err: err}
	}
	return paths, nil
}

// Parse reads newline-delimited entries from r. Each line is trimmed;
// empty lines and comments are dropped. Duplicates are kept so every line
// is probed exactly once per occurrence.
func Parse(r io.Reader) ([]string, error) {
	var result []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result = append(result, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}
	return result, nil
}
