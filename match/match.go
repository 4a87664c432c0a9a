package match

import (
	"github.com/edienergy/ediguide/desc"
	"github.com/edienergy/ediguide/raw"
	"github.com/edienergy/ediguide/reporter"
)

// Match aligns a raw.Interchange against a desc.Interchange, implementing
// the §4.3 algorithm: the expected interchange is conceptually flattened
// into UNB, UNH, message body, UNT, UNZ and walked against the raw segment
// stack in that order. UNB/UNH/UNT/UNZ are singleton, non-repeating, tag-
// only envelope segments, so they are matched directly here rather than
// through the counter-run machinery that handles the repeatable body.
//
// A nil *reporter.InterchangeError means the match succeeded; a non-nil one
// carries the structured error tree (§3, §7).
func Match(d desc.Interchange, r raw.Interchange) (Interchange, *reporter.InterchangeError) {
	stack := newSegStack(r.Segments)
	var ierr reporter.InterchangeError

	header, hErr, _ := matchEnvelopeSegment(stack, d.Header)
	if hErr != nil {
		ierr.Segments = append(ierr.Segments, *hErr)
	}

	msgHeader, mhErr, _ := matchEnvelopeSegment(stack, d.Message.Header)
	if mhErr != nil {
		ierr.Message.Segments = append(ierr.Message.Segments, *mhErr)
	}

	bodyMatched, bodyErrs := matchBodySequence(d.Message.Body, stack)
	ierr.Message.Segments = append(ierr.Message.Segments, bodyErrs...)

	msgTrailer, mtErr, _ := matchEnvelopeSegment(stack, d.Message.Trailer)
	if mtErr != nil {
		ierr.Message.Segments = append(ierr.Message.Segments, *mtErr)
	}

	trailer, tErr, _ := matchEnvelopeSegment(stack, d.Trailer)
	if tErr != nil {
		ierr.Segments = append(ierr.Segments, *tErr)
	}

	matched := Interchange{
		Header: header,
		Message: Message{
			Header:  msgHeader,
			Body:    bodyMatched,
			Trailer: msgTrailer,
		},
		Trailer:          trailer,
		TrailingSegments: stack.remaining(),
	}

	if ierr.Empty() {
		return matched, nil
	}
	return matched, &ierr
}

// matchEnvelopeSegment matches a single non-repeating, tag-only description
// (UNB, UNH, UNT or UNZ) against the next raw segment on the stack. If it
// doesn't match, the raw segment is pushed back untouched and the envelope
// segment is left unmatched without error — the same "push back and advance
// to the next counter run" leniency a length-1 run gets in matchBodySequence,
// applied directly since these four segments never repeat and never share a
// tag with a sibling.
func matchEnvelopeSegment(stack *segStack, d desc.Segment) (Segment, *reporter.SegmentError, bool) {
	v, ok := stack.pop()
	if !ok {
		return Segment{}, nil, false
	}
	if !matchesSegment(d, v, false) {
		stack.push(v)
		return Segment{}, nil, false
	}
	m, serr := matchSegment(d, v)
	if serr.Empty() {
		return m, nil, true
	}
	return m, &serr, true
}
