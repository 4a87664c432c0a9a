package reporter

import "github.com/edienergy/ediguide/raw"

// DataElementError is a leaf: the syntax error found at one data element
// position, plus the position itself for user-facing diagnostics.
type DataElementError struct {
	Pos   raw.Position
	Cause SyntaxError
}

func (e DataElementError) Error() string {
	return Error(e.Pos, e.Cause).Error()
}

// CompositeError aggregates the per-component DataElementErrors found while
// matching one composite slot, plus an optional structural error (e.g. the
// composite itself was required but empty).
type CompositeError struct {
	Syntax   *SyntaxError
	Elements []DataElementError
}

func (e CompositeError) Empty() bool {
	return e.Syntax == nil && len(e.Elements) == 0
}

// ElementError is the Either<CompositeError, DataElementError> found at one
// position within a segment, modeled as a sum type per the design notes
// rather than via inheritance.
type ElementError struct {
	IsComposite bool
	Composite   CompositeError
	Data        DataElementError
}

// SegmentError aggregates every per-slot ElementError found while matching
// one segment, plus an optional structural error (too_many_parts, etc.).
type SegmentError struct {
	Tag      string
	Pos      raw.Position
	Syntax   *SyntaxError
	Elements []ElementError
}

func (e SegmentError) Empty() bool {
	return e.Syntax == nil && len(e.Elements) == 0
}

// LeafCount returns the number of leaf SyntaxErrors contained transitively
// in this segment error - the quantity the "error aggregation" testable
// property of §8 constrains.
func (e SegmentError) LeafCount() int {
	n := 0
	if e.Syntax != nil {
		n++
	}
	for _, el := range e.Elements {
		if el.IsComposite {
			if el.Composite.Syntax != nil {
				n++
			}
			n += len(el.Composite.Elements)
		} else {
			n++
		}
	}
	return n
}

// MessageError aggregates every SegmentError found while matching one
// message body, plus an optional structural error (e.g. header/trailer
// mismatch).
type MessageError struct {
	Syntax   *SyntaxError
	Segments []SegmentError
}

func (e MessageError) Empty() bool {
	return e.Syntax == nil && len(e.Segments) == 0
}

// InterchangeError is the root of the error tree returned by the matcher
// when a raw.Interchange fails to match a desc.Interchange (§3, §7). It
// mirrors the shape of the attempted match so a consumer can point a user at
// the exact segment/composite/data-element slot that failed.
type InterchangeError struct {
	Message  MessageError
	Segments []SegmentError // errors from UNB/UNZ envelope segments
}

func (e InterchangeError) Error() string {
	return ErrInvalidInterchange.Error()
}

func (e InterchangeError) Unwrap() error {
	return ErrInvalidInterchange
}

func (e InterchangeError) Empty() bool {
	if !e.Message.Empty() {
		return false
	}
	for _, s := range e.Segments {
		if !s.Empty() {
			return false
		}
	}
	return true
}
