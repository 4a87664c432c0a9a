package desc

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// wire mirrors the JSON shape of §6: Usage variants are tagged with a
// discriminator field named "type"; Format is a literal MIG-notation string;
// Either variants (Body, Slot) are untagged and distinguished structurally by
// the presence of an "elements"/"body" field.

type usageWire struct {
	Type    string   `json:"type"`
	Choices []Choice `json:"choices,omitempty"`
	Value   string   `json:"value,omitempty"`
}

func (u Usage) MarshalJSON() ([]byte, error) {
	w := usageWire{}
	switch u.Kind {
	case UsageText:
		w.Type = "Text"
	case UsageInteger:
		w.Type = "Integer"
	case UsageDecimal:
		w.Type = "Decimal"
	case UsageOneOf:
		w.Type = "OneOf"
		w.Choices = u.Choices
	case UsageStatic:
		w.Type = "Static"
		w.Value = u.Static
	default:
		return nil, fmt.Errorf("desc: unknown usage kind %d", u.Kind)
	}
	return json.Marshal(w)
}

func (u *Usage) UnmarshalJSON(data []byte) error {
	var w usageWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Type {
	case "Text":
		*u = Usage{Kind: UsageText}
	case "Integer":
		*u = Usage{Kind: UsageInteger}
	case "Decimal":
		*u = Usage{Kind: UsageDecimal}
	case "OneOf":
		*u = Usage{Kind: UsageOneOf, Choices: w.Choices}
	case "Static":
		*u = Usage{Kind: UsageStatic, Static: w.Value}
	default:
		return fmt.Errorf("desc: unrecognized usage type %q", w.Type)
	}
	return nil
}

func (f Format) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Format) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFormat parses the MIG notation for a Format: a class prefix (an, a,
// n), an optional ".." marking a bounded (rather than exact) size, and a
// decimal length, e.g. "an..35", "a3", "n..6".
func ParseFormat(s string) (Format, error) {
	var f Format
	rest := s
	switch {
	case hasPrefix(rest, "an"):
		f.Class = ClassAlphanumeric
		rest = rest[2:]
	case hasPrefix(rest, "a"):
		f.Class = ClassAlpha
		rest = rest[1:]
	case hasPrefix(rest, "n"):
		f.Class = ClassNumeric
		rest = rest[1:]
	default:
		return Format{}, fmt.Errorf("desc: invalid format %q", s)
	}
	if hasPrefix(rest, "..") {
		f.Size = SizeAtMost
		rest = rest[2:]
	} else {
		f.Size = SizeExactly
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return Format{}, fmt.Errorf("desc: invalid format length in %q: %w", s, err)
	}
	f.Length = n
	return f, nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// slotWire is the untagged, structurally-distinguished wire shape for Slot:
// a composite carries an "elements" array, a bare data element does not.
type slotWire struct {
	Label    string        `json:"label,omitempty"`
	Name     string        `json:"name,omitempty"`
	Status   Status        `json:"status,omitempty"`
	Format   *Format       `json:"format,omitempty"`
	Usage    *Usage        `json:"usage,omitempty"`
	Elements []DataElement `json:"elements,omitempty"`
}

func (s Slot) MarshalJSON() ([]byte, error) {
	if s.IsComposite {
		return json.Marshal(slotWire{
			Label:    s.Composite.Label,
			Name:     s.Composite.Name,
			Status:   s.Composite.Status,
			Elements: s.Composite.Elements,
		})
	}
	return json.Marshal(slotWire{
		Label:  s.Data.Label,
		Name:   s.Data.Name,
		Status: s.Data.Status,
		Format: &s.Data.Format,
		Usage:  &s.Data.Usage,
	})
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	var w slotWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Elements != nil {
		*s = Slot{IsComposite: true, Composite: Composite{
			Label:    w.Label,
			Name:     w.Name,
			Status:   w.Status,
			Elements: w.Elements,
		}}
		return nil
	}
	var format Format
	var usage Usage
	if w.Format != nil {
		format = *w.Format
	}
	if w.Usage != nil {
		usage = *w.Usage
	}
	*s = Slot{Data: DataElement{
		Label:  w.Label,
		Name:   w.Name,
		Status: w.Status,
		Format: format,
		Usage:  usage,
	}}
	return nil
}

// bodyWire is the untagged, structurally-distinguished wire shape for Body:
// a segment group carries a "body" array, a leaf segment does not.
type bodyWire struct {
	Counter int    `json:"counter"`
	Label   string `json:"label,omitempty"`
	Status  Status `json:"status,omitempty"`
	MaxReps int    `json:"maxReps,omitempty"`
	Level   int    `json:"level,omitempty"`
	Name    string `json:"name,omitempty"`
	Comment string `json:"comment,omitempty"`
	Ordinal int    `json:"ordinal,omitempty"`
	Tag     string `json:"tag,omitempty"`
	Slots   []Slot `json:"slots,omitempty"`
	Body    []Body `json:"body,omitempty"`
}

func (b Body) MarshalJSON() ([]byte, error) {
	if b.IsGroup {
		g := b.Group
		return json.Marshal(bodyWire{
			Counter: g.Counter,
			Label:   g.Label,
			Status:  g.Status,
			MaxReps: g.MaxReps,
			Level:   g.Level,
			Name:    g.Name,
			Comment: g.Comment,
			Body:    g.Body,
		})
	}
	s := b.Segment
	return json.Marshal(bodyWire{
		Counter: s.Counter,
		Status:  s.Status,
		MaxReps: s.MaxReps,
		Level:   s.Level,
		Name:    s.Name,
		Comment: s.Comment,
		Ordinal: s.Ordinal,
		Tag:     s.Tag,
		Slots:   s.Slots,
	})
}

func (b *Body) UnmarshalJSON(data []byte) error {
	var w bodyWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Body != nil {
		*b = Body{IsGroup: true, Group: SegmentGroup{
			Counter: w.Counter,
			Label:   w.Label,
			Status:  w.Status,
			MaxReps: w.MaxReps,
			Level:   w.Level,
			Name:    w.Name,
			Comment: w.Comment,
			Body:    w.Body,
		}}
		return nil
	}
	*b = Body{Segment: Segment{
		Counter: w.Counter,
		Ordinal: w.Ordinal,
		Tag:     w.Tag,
		Status:  w.Status,
		MaxReps: w.MaxReps,
		Level:   w.Level,
		Name:    w.Name,
		Comment: w.Comment,
		Slots:   w.Slots,
	}}
	return nil
}
