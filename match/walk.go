package match

import (
	"github.com/edienergy/ediguide/desc"
	"github.com/edienergy/ediguide/raw"
	"github.com/edienergy/ediguide/reporter"
)

// partitionByCounter groups consecutive body items sharing the same counter
// into runs, preserving declaration order (§4.3, §9: counter-grouping must
// not reorder siblings).
func partitionByCounter(body []desc.Body) [][]desc.Body {
	var runs [][]desc.Body
	i := 0
	for i < len(body) {
		counter := counterOf(body[i])
		j := i + 1
		for j < len(body) && counterOf(body[j]) == counter {
			j++
		}
		runs = append(runs, body[i:j])
		i = j
	}
	return runs
}

// findMatch is the authoritative (if slower) implementation of "find the
// first dᵢ ∈ R that matches v" (§4.3 step 1): a linear scan over the
// current run in declaration order. It is always correct, including after
// items have been removed from the run for single-occurrence descriptions.
func findMatch(items []desc.Body, v raw.Segment, checkQualifier bool) int {
	for i, item := range items {
		if matchesItem(item, v, checkQualifier) {
			return i
		}
	}
	return -1
}

// matchBodySequence walks one body (the top-level message body, or a nested
// segment group's body) against the shared raw segment stack, implementing
// the counter-grouped-alternatives algorithm of §4.3.
func matchBodySequence(body []desc.Body, stack *segStack) ([]Body, []reporter.SegmentError) {
	idx := buildBodyIndex(body)
	runs := partitionByCounter(body)

	var matched []Body
	var errs []reporter.SegmentError

	for _, run := range runs {
		if stack.empty() {
			break
		}
		items := append([]desc.Body(nil), run...)
		counter := counterOf(run[0])

		for !stack.empty() {
			v, _ := stack.pop()
			checkQualifier := len(items) > 1

			if !indexSuggestsMatch(idx, counter, v, checkQualifier) {
				stack.push(v)
				break
			}

			pos := findMatch(items, v, checkQualifier)
			if pos < 0 {
				stack.push(v)
				break
			}

			item := items[pos]
			if item.IsGroup {
				// v begins the group: put it back so the group's own walk
				// consumes it.
				stack.push(v)
				before := stack.remaining()
				subMatched, subErrs := matchBodySequence(item.Group.Body, stack)
				if stack.remaining() == before {
					// the group's body accepted nothing; leave v for a later run
					break
				}
				g := item.Group
				matched = append(matched, Body{IsGroup: true, Group: SegmentGroup{Desc: &g, Body: subMatched}})
				errs = append(errs, subErrs...)
			} else {
				m, serr := matchSegment(item.Segment, v)
				matched = append(matched, Body{Segment: m})
				if !serr.Empty() {
					errs = append(errs, serr)
				}
			}

			if maxRepsOf(item) == 1 {
				items = append(items[:pos], items[pos+1:]...)
				if len(items) == 0 {
					break
				}
			}
		}
	}

	return matched, errs
}

// indexSuggestsMatch is the fast pre-filter: if the radix-tree index has no
// entry at all for this (counter, tag[, qualifier value]) combination, there
// is no point scanning the run at all.
func indexSuggestsMatch(idx *bodyIndex, counter int, v raw.Segment, checkQualifier bool) bool {
	if checkQualifier {
		return len(idx.lookup(counter, v.Tag.Value, firstRawValue(v))) > 0
	}
	return len(idx.lookup(counter, v.Tag.Value, "")) > 0
}
