package match

import (
	"fmt"

	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/edienergy/ediguide/desc"
)

// bodyIndex speeds up "find the first dᵢ in the current counter run that
// matches v" (§4.3) for bodies with many tag-sharing, qualifier-discriminated
// alternatives (edi@energy UTILMD/MSCONS MIGs routinely declare dozens of
// such RFF/NAD/SEQ alternatives under one counter). It mirrors the symbol
// table in linker/linker.go: a radix tree keyed by a short string, built
// each time a body is walked and consulted for every incoming raw segment of
// that walk.
//
// The index is a performance pre-filter only: a lookup under a single
// (counter, tag, qualifier-value) key only decides whether the current run
// is scanned at all; the match itself is then found by matchesItem over the
// current run in declaration order, so correctness never depends on the
// index being perfectly precise.
type bodyIndex struct {
	tree art.Tree
}

func key(counter int, tag, qualifierValue string) art.Key {
	return art.Key(fmt.Sprintf("%d|%s|%s", counter, tag, qualifierValue))
}

// buildBodyIndex indexes every item of body by the (counter, tag,
// qualifier-value) combinations it could be dispatched under: one entry
// per Static value, one entry per OneOf choice, and always a tag-only entry
// (empty qualifier value) used when the counter run has no qualifier to
// check at all.
func buildBodyIndex(body []desc.Body) *bodyIndex {
	idx := &bodyIndex{tree: art.New()}
	for _, b := range body {
		counter := counterOf(b)
		for _, leaf := range entryLeaves(b) {
			if qual, ok := leaf.FirstQualifier(); ok {
				switch qual.Usage.Kind {
				case desc.UsageStatic:
					idx.insert(counter, leaf.Tag, qual.Usage.Static, b)
				case desc.UsageOneOf:
					for _, c := range qual.Usage.Choices {
						idx.insert(counter, leaf.Tag, c.Value, b)
					}
				}
			}
			idx.insert(counter, leaf.Tag, "", b)
		}
	}
	return idx
}

func (idx *bodyIndex) insert(counter int, tag, qualifierValue string, b desc.Body) {
	k := key(counter, tag, qualifierValue)
	var bucket []desc.Body
	if v, found := idx.tree.Search(k); found {
		bucket = v.([]desc.Body)
	}
	bucket = append(bucket, b)
	idx.tree.Insert(k, bucket)
}

// lookup returns the candidates indexed under the given key, in the order
// they were declared.
func (idx *bodyIndex) lookup(counter int, tag, qualifierValue string) []desc.Body {
	v, found := idx.tree.Search(key(counter, tag, qualifierValue))
	if !found {
		return nil
	}
	return v.([]desc.Body)
}

// entryLeaves returns the leaf segment descriptions that could be the first
// segment consumed if b is entered: b itself if it is a segment, or the
// leading (same-counter) run of b's body, recursively, if b is a group —
// every desc.SegmentGroup has at least one descendant segment (§3
// invariant), so this always returns at least one leaf.
func entryLeaves(b desc.Body) []desc.Segment {
	if !b.IsGroup {
		return []desc.Segment{b.Segment}
	}
	return leadingLeaves(b.Group.Body)
}

func leadingLeaves(body []desc.Body) []desc.Segment {
	if len(body) == 0 {
		return nil
	}
	counter := counterOf(body[0])
	var leaves []desc.Segment
	for _, b := range body {
		if counterOf(b) != counter {
			break
		}
		leaves = append(leaves, entryLeaves(b)...)
	}
	return leaves
}

func counterOf(b desc.Body) int {
	if b.IsGroup {
		return b.Group.Counter
	}
	return b.Segment.Counter
}

func maxRepsOf(b desc.Body) int {
	if b.IsGroup {
		return b.Group.MaxReps
	}
	return b.Segment.MaxReps
}
