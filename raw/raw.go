package raw

// UNA holds the six EDIFACT service characters. The reserved position has no
// defined role in this implementation; it is retained only so a caller can
// display or round-trip the original service-string advice.
type UNA struct {
	ComponentSep rune
	ElementSep   rune
	DecimalMark  rune
	Escape       rune
	Reserved     rune
	SegmentSep   rune
}

// DefaultUNA is used whenever an interchange carries no explicit UNA
// service-string advice.
var DefaultUNA = UNA{
	ComponentSep: ':',
	ElementSep:   '+',
	DecimalMark:  '.',
	Escape:       '?',
	Reserved:     ' ',
	SegmentSep:   '\'',
}

// DataElement is a decoded value together with the source span it was lexed
// from. Escape characters are consumed during lexing and never appear in
// Value; empty values are legal.
type DataElement struct {
	Value      string
	Start, End Position
}

// Composite is an ordered sequence of at least two data elements found in a
// single element slot, separated by the component separator.
type Composite struct {
	Elements []DataElement
}

// Start returns the position of the first component, or the zero Position if
// the composite has no components.
func (c Composite) Start() Position {
	if len(c.Elements) == 0 {
		return Position{}
	}
	return c.Elements[0].Start
}

// End returns the position of the last component, or the zero Position if the
// composite has no components.
func (c Composite) End() Position {
	if len(c.Elements) == 0 {
		return Position{}
	}
	return c.Elements[len(c.Elements)-1].End
}

// Slot is the Either<Composite, DataElement> found at one position within a
// segment's element list. Exactly one of Composite/Data is set; IsComposite
// reports which.
type Slot struct {
	Composite   Composite
	Data        DataElement
	IsComposite bool
}

// AsDataElement returns the slot's single value when it is not a composite.
// It panics if called on a composite slot; callers should check IsComposite
// first.
func (s Slot) AsDataElement() DataElement {
	if s.IsComposite {
		panic("raw: AsDataElement called on composite slot")
	}
	return s.Data
}

// FirstDataElement returns the slot's first data element: its own value if
// bare, or the first component if composite. It reports false only for an
// empty composite.
func (s Slot) FirstDataElement() (DataElement, bool) {
	if !s.IsComposite {
		return s.Data, true
	}
	if len(s.Composite.Elements) == 0 {
		return DataElement{}, false
	}
	return s.Composite.Elements[0], true
}

// Segment is a tag followed by an ordered sequence of element slots. The tag
// is itself a bare data element; the lexer does not enforce that it is three
// capital ASCII letters.
type Segment struct {
	Tag   DataElement
	Slots []Slot
}

// Interchange is the flat result of lexing: the resolved service characters
// plus the ordered sequence of segments found in the body.
type Interchange struct {
	UNA      UNA
	Segments []Segment
}
