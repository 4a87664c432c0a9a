// Package match implements the structural matcher (§4.3) and the syntax
// checker it invokes per data element (§4.4): the heart of the system,
// aligning a raw.Interchange against a desc.Interchange and producing either
// a MatchedInterchange or a reporter.InterchangeError.
package match

import (
	"github.com/edienergy/ediguide/desc"
	"github.com/edienergy/ediguide/raw"
)

// ValueKind distinguishes how a matched data element's value was typed.
// Only ValueText is ever produced by this core (§9 open question 3): Usage
// Integer/Decimal typing is declared in the description model but not
// materialized.
type ValueKind int

const (
	ValueText ValueKind = iota
	ValueInteger
	ValueDecimal
)

// Value is a matched data element's typed value.
type Value struct {
	Kind ValueKind
	Text string
}

// DataElement is a matched leaf: the raw value, its originating description,
// and its typed Value.
type DataElement struct {
	Desc  *desc.DataElement
	Raw   raw.DataElement
	Value Value
}

// Composite is a matched element slot built from more than one data
// element.
type Composite struct {
	Desc     *desc.Composite
	Elements []DataElement
}

// Slot is the Either<Composite, DataElement> found at one matched position
// within a segment.
type Slot struct {
	IsComposite bool
	Composite   Composite
	Data        DataElement
}

// Segment is a matched segment occurrence.
type Segment struct {
	Desc  *desc.Segment
	Raw   raw.Segment
	Slots []Slot
}

// Body is one matched element of a segment group's body.
type Body struct {
	IsGroup bool
	Group   SegmentGroup
	Segment Segment
}

// SegmentGroup is a matched, repeatable nested cluster.
type SegmentGroup struct {
	Desc *desc.SegmentGroup
	Body []Body
}

// Message is a matched UNH...UNT envelope.
type Message struct {
	Header  Segment
	Body    []Body
	Trailer Segment
}

// Interchange is the root of a successful match: a UNB...UNZ envelope
// wrapping a matched message.
//
// TrailingSegments records how many raw segments remained unconsumed on the
// stack when the walk completed. The specified core tolerates this
// silently (§9 open question 1); the count is surfaced here so a caller can
// observe the leniency without the matcher itself treating it as an error.
type Interchange struct {
	Header           Segment
	Message          Message
	Trailer          Segment
	TrailingSegments int
}
