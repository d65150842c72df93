package config

import "time"

const (
	// DefaultTimeout bounds every probe. There is no retry.
	DefaultTimeout = 5 * time.Second

	// DefaultUserAgent identifies the scanner to the target.
	DefaultUserAgent = "DirScan-Simple/1.0"
)

// InterestingStatus lists the status codes annotated live during a scan.
var InterestingStatus = []int{200, 301, 302, 403}

// Options holds all configuration for a dirscan run.
type Options struct {
	// Target
	URL          string
	WordlistPath string

	// HTTP
	Timeout   time.Duration
	UserAgent string

	// Output
	NoColor bool
	Verbose bool
}

// Defaults returns Options with the fixed probe settings filled in.
func Defaults() Options {
	return Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}
