package scanner

import (
	"strconv"
	"time"
)

// Kind distinguishes a completed response from the two failure sentinels.
type Kind int

const (
	KindStatus Kind = iota
	KindError
	KindTimeout
)

// Outcome is the classification of a single probe: an HTTP status code, or
// one of the ERROR / TIMEOUT sentinels. It is comparable and used directly
// as a map key.
type Outcome struct {
	Kind Kind
	Code int // only meaningful for KindStatus
}

var (
	// Error covers every failure that is not a timeout: refused
	// connections, DNS and TLS failures, malformed responses.
	Error = Outcome{Kind: KindError}
	// Timeout is recorded when a probe exceeds the client timeout.
	Timeout = Outcome{Kind: KindTimeout}
)

// Status returns the outcome for a completed response.
func Status(code int) Outcome {
	return Outcome{Kind: KindStatus, Code: code}
}

// IsStatus reports whether o carries an HTTP status code.
func (o Outcome) IsStatus() bool { return o.Kind == KindStatus }

// Less orders outcomes for the summary: status codes ascending, then ERROR,
// then TIMEOUT.
func (o Outcome) Less(other Outcome) bool {
	if o.Kind != other.Kind {
		return o.Kind < other.Kind
	}
	return o.Code < other.Code
}

func (o Outcome) String() string {
	switch o.Kind {
	case KindError:
		return "ERROR"
	case KindTimeout:
		return "TIMEOUT"
	default:
		return strconv.Itoa(o.Code)
	}
}

// Result holds the outcome of a single path probe.
type Result struct {
	Path     string
	URL      string
	Outcome  Outcome
	Err      error // cause behind ERROR / TIMEOUT, nil otherwise
	Duration time.Duration
}
