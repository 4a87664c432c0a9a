// Package desc models the Message Integration Guide (MIG) schema that the
// structural matcher validates a parsed interchange against. Description
// entities are read-only inputs: they are constructed once (typically by
// unmarshaling JSON produced elsewhere) and shared, unmodified, across many
// decode calls.
package desc

import (
	"strconv"
	"strings"
)

// Status is the M/R/O/D/C/N classification governing whether a slot must,
// may, or must not be present.
type Status string

const (
	StatusMandatory Status = "M"
	StatusRequired  Status = "R"
	StatusOptional  Status = "O"
	StatusDependent Status = "D"
	StatusCond      Status = "C"
	StatusNotUsed   Status = "N"
)

// IsRequired reports whether st belongs to the {M, R} required class.
func (st Status) IsRequired() bool {
	return st == StatusMandatory || st == StatusRequired
}

// IsOptional reports whether st belongs to the {O, D, C} optional class.
func (st Status) IsOptional() bool {
	return st == StatusOptional || st == StatusDependent || st == StatusCond
}

// IsNotUsed reports whether st is N.
func (st Status) IsNotUsed() bool {
	return st == StatusNotUsed
}

// SizeKind distinguishes a fixed-length format from a bounded one.
type SizeKind int

const (
	SizeExactly SizeKind = iota
	SizeAtMost
)

// Class is the character-class constraint a Format declares. The specified
// core never enforces this (see package match's format checker); it is kept
// here purely as a declared constraint for future use and for round-tripping
// the MIG's format strings.
type Class int

const (
	ClassAlphanumeric Class = iota
	ClassAlpha
	ClassNumeric
)

// Format is a data element's declared character class and length bound, e.g.
// "an..35" (alphanumeric, at most 35) or "a3" (alpha, exactly 3).
type Format struct {
	Class  Class
	Size   SizeKind
	Length int
}

// String renders the format using the edi@energy MIG notation: an, a, n
// optionally suffixed with ".." for a bounded (rather than exact) size,
// followed by the declared length.
func (f Format) String() string {
	var sb strings.Builder
	switch f.Class {
	case ClassAlphanumeric:
		sb.WriteString("an")
	case ClassAlpha:
		sb.WriteString("a")
	case ClassNumeric:
		sb.WriteString("n")
	}
	if f.Size == SizeAtMost {
		sb.WriteString("..")
	}
	sb.WriteString(strconv.Itoa(f.Length))
	return sb.String()
}

// Choice is one admissible value of a OneOf usage.
type Choice struct {
	Value   string `json:"value"`
	Comment string `json:"comment,omitempty"`
}

// Usage describes how a data element's value is interpreted: free text, a
// typed number, a closed enumeration of choices, or a single fixed literal.
// At most one field besides Kind is meaningful for a given Kind: Choices for
// OneOf, Static for Static, none for Text, Integer and Decimal.
type Usage struct {
	Kind    UsageKind
	Choices []Choice // Kind == UsageOneOf
	Static  string   // Kind == UsageStatic
}

type UsageKind int

const (
	UsageText UsageKind = iota
	UsageInteger
	UsageDecimal
	UsageOneOf
	UsageStatic
)

// Admits reports whether value is an admissible value for this usage, per
// the qualifier-dispatch rule of the structural matcher: OneOf admits any of
// its choices' values, Static admits exactly its one value, and every other
// usage admits nothing (a segment flagged as qualifier-bearing must declare
// a OneOf or Static usage).
func (u Usage) Admits(value string) bool {
	switch u.Kind {
	case UsageOneOf:
		for _, c := range u.Choices {
			if c.Value == value {
				return true
			}
		}
		return false
	case UsageStatic:
		return u.Static == value
	default:
		return false
	}
}

// DataElement describes one atomic value within a slot.
type DataElement struct {
	Label  string `json:"label,omitempty"`
	Name   string `json:"name,omitempty"`
	Status Status `json:"status,omitempty"`
	Format Format `json:"format"`
	Usage  Usage  `json:"usage"`
}

// IsQualifier reports whether this data element discriminates between
// otherwise tag-equal segment definitions. This is a heuristic inherited
// from the MIG description language: a case-sensitive substring match for
// "Qualifier" or "qualifier" in the element's name. It must be preserved
// exactly, since MIGs rely on it for correct qualifier dispatch.
func (d DataElement) IsQualifier() bool {
	return strings.Contains(d.Name, "Qualifier") || strings.Contains(d.Name, "qualifier")
}

// Composite describes an element slot built from more than one data element.
type Composite struct {
	Label    string        `json:"label,omitempty"`
	Name     string        `json:"name,omitempty"`
	Status   Status        `json:"status,omitempty"`
	Elements []DataElement `json:"elements"`
}

// Slot is the Either<Composite, DataElement> found at one position within a
// segment's declared element list.
type Slot struct {
	Composite   Composite
	Data        DataElement
	IsComposite bool
}

// FirstDataElement returns the slot's first data element, used for qualifier
// detection: a bare slot's own element, or a composite's first component.
func (s Slot) FirstDataElement() (DataElement, bool) {
	if !s.IsComposite {
		return s.Data, true
	}
	if len(s.Composite.Elements) == 0 {
		return DataElement{}, false
	}
	return s.Composite.Elements[0], true
}

// Segment describes one permissible segment occurrence: its tag, status,
// repetition bound, nesting, and element slots.
type Segment struct {
	Counter int
	Ordinal int
	Tag     string
	Status  Status
	MaxReps int
	Level   int
	Name    string
	Comment string
	Slots   []Slot
}

// FirstQualifier returns the leading data element of seg's first slot if
// that element is a qualifier, used to discriminate tag-equal alternatives
// within a counter run. Later slots are not searched.
func (seg Segment) FirstQualifier() (DataElement, bool) {
	for _, slot := range seg.Slots {
		el, ok := slot.FirstDataElement()
		if !ok {
			continue
		}
		if el.IsQualifier() {
			return el, true
		}
		// Only the very first slot is ever consulted for qualifier
		// dispatch: the matcher looks at "the first data element of the
		// raw segment", not an arbitrary later one.
		break
	}
	return DataElement{}, false
}

// Body is one element of a segment group's nested body: either a further
// nested segment group or a leaf segment.
type Body struct {
	Group   SegmentGroup
	Segment Segment
	IsGroup bool
}

// SegmentGroup describes a repeatable, nested cluster of segments/groups.
type SegmentGroup struct {
	Counter int
	Label   string
	Status  Status
	MaxReps int
	Level   int
	Name    string
	Comment string
	Body    []Body
}

// Message describes a UNH...UNT envelope: its header/trailer segments and
// the body of segment groups and segments between them.
type Message struct {
	Header  Segment `json:"header"`
	Body    []Body  `json:"body"`
	Trailer Segment `json:"trailer"`
}

// Interchange describes a UNB...UNZ envelope wrapping a single message.
type Interchange struct {
	Header  Segment `json:"header"`
	Message Message `json:"message"`
	Trailer Segment `json:"trailer"`
}
