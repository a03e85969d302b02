package songcache

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ErrorKind classifies a non-fatal scan outcome per the cache format's
// error taxonomy. Only IOError rises to zerolog's error level; everything
// else is a skip worth a warning, not a scan failure.
type ErrorKind string

const (
	KindIO        ErrorKind = "io"
	KindParse     ErrorKind = "parse"
	KindInvalid   ErrorKind = "invalid_song_directory"
	KindDuplicate ErrorKind = "duplicate"
)

// Diagnostic is one recorded non-fatal event from a Scan call.
type Diagnostic struct {
	Kind ErrorKind
	Path string
	Err  error
}

// MarshalJSON renders Err as its message string, since error values have no
// exported fields for encoding/json to serialize on their own.
func (d Diagnostic) MarshalJSON() ([]byte, error) {
	msg := ""
	if d.Err != nil {
		msg = d.Err.Error()
	}
	return json.Marshal(struct {
		Kind  ErrorKind `json:"kind"`
		Path  string    `json:"path"`
		Error string    `json:"error"`
	}{d.Kind, d.Path, msg})
}

// Reporter accumulates Diagnostics and mirrors them to a structured log
// sink as they're recorded. The zero value is not usable; construct with
// NewReporter.
type Reporter struct {
	log   zerolog.Logger
	items []Diagnostic
}

// NewReporter builds a Reporter logging to w. A nil w logs to stderr.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{log: zerolog.New(w).With().Timestamp().Logger()}
}

// Diagnostics returns every non-fatal event recorded so far, in the order
// they occurred.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.items
}

func (r *Reporter) report(kind ErrorKind, path string, err error) {
	r.items = append(r.items, Diagnostic{Kind: kind, Path: path, Err: err})

	ev := r.log.Warn()
	if kind == KindIO {
		ev = r.log.Error()
	}
	ev.Str("path", path).Str("kind", string(kind)).Err(err).Msg("scan diagnostic")
}

func (r *Reporter) accepted(path string) {
	r.log.Debug().Str("path", path).Msg("accepted song entry")
}
