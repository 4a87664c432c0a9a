package match

import (
	"github.com/edienergy/ediguide/desc"
	"github.com/edienergy/ediguide/raw"
	"github.com/edienergy/ediguide/reporter"
)

// matchDataElement implements match_data_element (§4.3): the status check,
// then (only if it passed) the format-and-length check.
func matchDataElement(d desc.DataElement, v raw.DataElement) (DataElement, *reporter.DataElementError) {
	if synErr := checkStatus(d.Status, v.Value); synErr != nil {
		return DataElement{}, &reporter.DataElementError{Pos: v.Start, Cause: *synErr}
	}
	if synErr := checkFormat(d.Format, d.Status, v.Value); synErr != nil {
		return DataElement{}, &reporter.DataElementError{Pos: v.Start, Cause: *synErr}
	}
	return DataElement{Desc: &d, Raw: v, Value: Value{Kind: ValueText, Text: v.Value}}, nil
}

// matchComposite implements match_composite (§4.3): a required-but-empty
// composite is a missing structural error; otherwise its data elements are
// zipped against the description's data elements exactly as at segment
// level, but restricted to bare-vs-bare since composites nest no further.
func matchComposite(d desc.Composite, v raw.Composite) (Composite, reporter.CompositeError) {
	if d.Status.IsRequired() && len(v.Elements) == 0 {
		err := reporter.ErrMissing
		return Composite{Desc: &d}, reporter.CompositeError{Syntax: &err}
	}

	matched := Composite{Desc: &d}
	var cerr reporter.CompositeError

	n := len(d.Elements)
	if len(v.Elements) > n {
		n = len(v.Elements)
	}
	for i := 0; i < n; i++ {
		var dEl *desc.DataElement
		if i < len(d.Elements) {
			dEl = &d.Elements[i]
		}
		var vEl *raw.DataElement
		if i < len(v.Elements) {
			vEl = &v.Elements[i]
		}
		switch {
		case dEl == nil && vEl == nil:
			// unreachable given loop bound, kept for symmetry with match_segment
		case dEl == nil && vEl != nil:
			err := reporter.ErrTooManyParts
			cerr.Syntax = &err
			return matched, cerr
		case dEl != nil && vEl == nil:
			if dEl.Status.IsRequired() {
				cerr.Elements = append(cerr.Elements, reporter.DataElementError{Pos: v.End(), Cause: reporter.ErrMissing})
			}
		default:
			m, derr := matchDataElement(*dEl, *vEl)
			matched.Elements = append(matched.Elements, m)
			if derr != nil {
				cerr.Elements = append(cerr.Elements, *derr)
			}
		}
	}
	return matched, cerr
}

// matchSegmentBody implements the element-slot zip of match_segment (§4.3).
func matchSegmentBody(descSlots []desc.Slot, rawSlots []raw.Slot, fallbackPos raw.Position) ([]Slot, []reporter.ElementError, *reporter.SyntaxError) {
	var matched []Slot
	var errs []reporter.ElementError

	n := len(descSlots)
	if len(rawSlots) > n {
		n = len(rawSlots)
	}
	for i := 0; i < n; i++ {
		var dSlot *desc.Slot
		if i < len(descSlots) {
			dSlot = &descSlots[i]
		}
		var rSlot *raw.Slot
		if i < len(rawSlots) {
			rSlot = &rawSlots[i]
		}

		switch {
		case dSlot == nil && rSlot == nil:
			// terminate successfully
		case dSlot == nil && rSlot != nil:
			err := reporter.ErrTooManyParts
			return matched, errs, &err
		case dSlot != nil && rSlot == nil:
			if dSlot.IsComposite {
				if dSlot.Composite.Status.IsRequired() {
					errs = append(errs, reporter.ElementError{
						IsComposite: true,
						Composite:   reporter.CompositeError{Syntax: missingPtr()},
					})
				}
			} else if dSlot.Data.Status.IsRequired() {
				errs = append(errs, reporter.ElementError{
					Data: reporter.DataElementError{Pos: fallbackPos, Cause: reporter.ErrMissing},
				})
			}
		case dSlot.IsComposite && !rSlot.IsComposite:
			if rSlot.Data.Value == "" && dSlot.Composite.Status.IsNotUsed() {
				// accept nothing
			} else {
				wrapped := raw.Composite{Elements: []raw.DataElement{rSlot.Data}}
				m, cerr := matchComposite(dSlot.Composite, wrapped)
				matched = append(matched, Slot{IsComposite: true, Composite: m})
				if !cerr.Empty() {
					errs = append(errs, reporter.ElementError{IsComposite: true, Composite: cerr})
				}
			}
		case !dSlot.IsComposite && rSlot.IsComposite:
			errs = append(errs, reporter.ElementError{
				Data: reporter.DataElementError{Pos: rSlot.Composite.Start(), Cause: reporter.ErrInvalidValue},
			})
		case dSlot.IsComposite && rSlot.IsComposite:
			m, cerr := matchComposite(dSlot.Composite, rSlot.Composite)
			matched = append(matched, Slot{IsComposite: true, Composite: m})
			if !cerr.Empty() {
				errs = append(errs, reporter.ElementError{IsComposite: true, Composite: cerr})
			}
		default:
			m, derr := matchDataElement(dSlot.Data, rSlot.Data)
			matched = append(matched, Slot{Data: m})
			if derr != nil {
				errs = append(errs, reporter.ElementError{Data: *derr})
			}
		}
	}
	return matched, errs, nil
}

func missingPtr() *reporter.SyntaxError {
	err := reporter.ErrMissing
	return &err
}

// matchSegment zips a described segment against a raw one (match_segment,
// §4.3) and reports a SegmentError whenever the zip produced any element
// error or a structural syntax error.
func matchSegment(d desc.Segment, v raw.Segment) (Segment, reporter.SegmentError) {
	slots, elemErrs, syntax := matchSegmentBody(d.Slots, v.Slots, v.Tag.End)
	return Segment{Desc: &d, Raw: v, Slots: slots}, reporter.SegmentError{
		Tag:      d.Tag,
		Pos:      v.Tag.Start,
		Syntax:   syntax,
		Elements: elemErrs,
	}
}

// matchesSegment implements the match predicate for a segment (§4.3): tags
// must agree, and, only when check_qualifier is requested, the description's
// first qualifier-typed data element must admit the raw segment's first
// data element value.
func matchesSegment(d desc.Segment, v raw.Segment, checkQualifier bool) bool {
	if d.Tag != v.Tag.Value {
		return false
	}
	if !checkQualifier {
		return true
	}
	qual, ok := d.FirstQualifier()
	if !ok {
		return false
	}
	if len(v.Slots) == 0 {
		return false
	}
	first, ok := v.Slots[0].FirstDataElement()
	if !ok {
		return false
	}
	return qual.Usage.Admits(first.Value)
}

// matchesItem generalizes matchesSegment to an arbitrary desc.Body: a
// segment group matches v iff v could begin the group, i.e. one of the
// group's leading (same-counter) leaf segments matches v.
func matchesItem(b desc.Body, v raw.Segment, checkQualifier bool) bool {
	for _, leaf := range entryLeaves(b) {
		if matchesSegment(leaf, v, checkQualifier) {
			return true
		}
	}
	return false
}

// firstRawValue returns the value of the first data element of v's first
// slot, or "" if v has no slots — the value qualifier dispatch compares the
// description's admissible qualifier values against.
func firstRawValue(v raw.Segment) string {
	if len(v.Slots) == 0 {
		return ""
	}
	first, ok := v.Slots[0].FirstDataElement()
	if !ok {
		return ""
	}
	return first.Value
}
