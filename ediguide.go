// Package ediguide decodes edi@energy EDIFACT interchanges against a MIG
// description, in three steps: resolve the UNA service string, lex the raw
// segment structure, then structurally match it against the description
// (§4-§6).
package ediguide

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/edienergy/ediguide/desc"
	"github.com/edienergy/ediguide/match"
	"github.com/edienergy/ediguide/parser"
	"github.com/edienergy/ediguide/reporter"
)

// Result is a single interchange's outcome: exactly one of Interchange or
// Err is set.
type Result struct {
	Interchange *match.Interchange
	Err         error
}

// Decode lexes input and matches it against the first of descriptions
// (§6: descriptions is a slice for forward compatibility with MIG version
// dispatch — selecting among multiple candidate descriptions by UNH
// message-type/version is not implemented by this core; callers that need
// it should pre-select and pass a single-element slice).
func Decode(descriptions []desc.Interchange, input string) (*match.Interchange, error) {
	d, err := newDecoder(descriptions)
	if err != nil {
		return nil, err
	}
	return d.decode(input)
}

// Decoder decodes repeatedly against a fixed set of candidate descriptions.
type Decoder struct {
	desc desc.Interchange
	opts DecodeOptions
}

// DecodeOptions configures a Decoder.
type DecodeOptions struct {
	// MaxParallelism bounds concurrent decodes in DecodeBatch. If zero or
	// negative, the smaller of runtime.GOMAXPROCS(-1) and runtime.NumCPU()
	// is used, mirroring the teacher compiler's default parallelism policy.
	MaxParallelism int
	// Logger receives structured debug events at each pipeline stage. A nil
	// Logger disables logging.
	Logger *slog.Logger
	// StrictUNA rejects an interchange that opens without an explicit UNA
	// service-string advice instead of falling back to raw.DefaultUNA.
	StrictUNA bool
}

func newDecoder(descriptions []desc.Interchange) (*Decoder, error) {
	if len(descriptions) == 0 {
		return nil, fmt.Errorf("ediguide: no description supplied")
	}
	return &Decoder{desc: descriptions[0]}, nil
}

// NewDecoder builds a Decoder for the first of descriptions (see Decode for
// why descriptions is a slice).
func NewDecoder(descriptions []desc.Interchange, opts DecodeOptions) (*Decoder, error) {
	d, err := newDecoder(descriptions)
	if err != nil {
		return nil, err
	}
	d.opts = opts
	return d, nil
}

func (d *Decoder) logger() *slog.Logger {
	if d.opts.Logger == nil {
		return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}
	return d.opts.Logger
}

func (d *Decoder) decode(input string) (*match.Interchange, error) {
	log := d.logger()

	rawInterchange, err := parser.Parse(input)
	if err != nil {
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			err = reporter.Error(perr.GetPosition(), err)
		}
		log.Debug("lex failed", "error", err)
		return nil, fmt.Errorf("ediguide: lex: %w", err)
	}
	log.Debug("lexed interchange", "segments", len(rawInterchange.Segments))

	if d.opts.StrictUNA && !explicitUNA(input) {
		return nil, fmt.Errorf("ediguide: %w: no UNA service string advice", parser.ErrSyntax)
	}

	matched, ierr := match.Match(d.desc, *rawInterchange)
	if ierr != nil {
		log.Debug("structural match failed", "leaf_errors", leafCount(*ierr))
		return nil, fmt.Errorf("ediguide: %w", *ierr)
	}
	log.Debug("structural match succeeded", "trailing_segments", matched.TrailingSegments)
	return &matched, nil
}

func explicitUNA(input string) bool {
	return len(input) >= 3 && input[0:3] == "UNA"
}

func leafCount(ierr reporter.InterchangeError) int {
	n := 0
	for _, s := range ierr.Segments {
		n += s.LeafCount()
	}
	for _, s := range ierr.Message.Segments {
		n += s.LeafCount()
	}
	return n
}

// discard is an io.Writer that drops everything, used to build a no-op
// slog.Logger when the caller supplies none.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
