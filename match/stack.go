package match

import "github.com/edienergy/ediguide/raw"

// segStack is the raw segment stack the matcher walks the expected
// grammar against: peek by pop, decide, and push back on miss (§4.3). It is
// backed by an owned slice whose back is the cursor, the representation
// the design notes call out as sufficient (§9).
type segStack struct {
	items []raw.Segment
}

// newSegStack seeds the stack so that the first segment of in is the first
// one popped.
func newSegStack(segments []raw.Segment) *segStack {
	items := make([]raw.Segment, len(segments))
	for i, s := range segments {
		items[len(segments)-1-i] = s
	}
	return &segStack{items: items}
}

func (s *segStack) empty() bool {
	return len(s.items) == 0
}

func (s *segStack) pop() (raw.Segment, bool) {
	if s.empty() {
		return raw.Segment{}, false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, true
}

func (s *segStack) push(seg raw.Segment) {
	s.items = append(s.items, seg)
}

func (s *segStack) remaining() int {
	return len(s.items)
}
