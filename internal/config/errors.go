package config

import "fmt"

// Error reports a configuration problem that prevents a scan from starting:
// a wordlist that cannot be read, an unusable base URL, or a malformed
// invocation. It is always fatal.
type Error struct {
	Op   string // "open wordlist", "parse url", "usage"
	Path string // offending file, URL or argument list
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
