package configtype

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeInvalidType  = "invalid_type"
	CodeDuplicateKey = "duplicate_key"
	CodeParseError   = "parse_error"
)

// ErrUnsupportedType is the cause attached to every invalid_type issue, so
// callers can test with errors.Is.
var ErrUnsupportedType = errors.New("unsupported type")

// Issue represents a single generation failure.
type Issue struct {
	Path    string // JSON Pointer of the offending field (for example: /db/hosts/0).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: what was found instead.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"key": "port"}); they are
	// handed to the i18n translator as message data.
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path (nil value)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes issue causes to errors.Is and errors.As.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
