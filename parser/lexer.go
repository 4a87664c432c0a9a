// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser implements the UNA resolver and the lexical parser of
// §4.1/§4.2: it turns already-decoded EDIFACT text into a flat
// raw.Interchange, or a single *ParseError if the grammar rejects the input.
package parser

import (
	"github.com/edienergy/ediguide/raw"
)

// cursor scans a rune slice, tracking a 1-based (line, column) position as it
// goes. It only moves forward: the lexer never backtracks, and a production
// that fails returns a *ParseError at the cursor's current position.
type cursor struct {
	data      []rune
	pos       int
	line, col int
}

func newCursor(data []rune, startPos int) *cursor {
	return &cursor{data: data, pos: startPos, line: 1, col: startPos + 1}
}

func (c *cursor) position() raw.Position {
	return raw.Position{Line: c.line, Col: c.col}
}

func (c *cursor) atEOF() bool {
	return c.pos >= len(c.data)
}

func (c *cursor) peek() (rune, bool) {
	if c.atEOF() {
		return 0, false
	}
	return c.data[c.pos], true
}

// advance consumes and returns the next rune, updating the running line/
// column the way FileInfo.AddLine records a new line boundary as the lexer
// passes over it.
func (c *cursor) advance() (rune, bool) {
	r, ok := c.peek()
	if !ok {
		return 0, false
	}
	c.pos++
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return r, true
}

func isSeparator(r rune, una raw.UNA) bool {
	return r == una.ComponentSep || r == una.ElementSep || r == una.SegmentSep
}

// lexValue reads the longest prefix of characters that are neither the
// escape character nor any of the three separators, per §4.2's tokenization
// rules. The escape character followed by any single next character
// contributes that character literally and continues the value; the escaped
// character is preserved verbatim and does not itself terminate the value
// even if it is a separator or another escape. The reserved character is an
// ordinary, non-separator character for lexing.
func lexValue(c *cursor, una raw.UNA) (raw.DataElement, error) {
	start := c.position()
	var sb []rune
	for {
		r, ok := c.peek()
		if !ok {
			break
		}
		if r == una.Escape {
			c.advance()
			literal, ok := c.advance()
			if !ok {
				return raw.DataElement{}, newParseError(c.position(), "character following escape")
			}
			sb = append(sb, literal)
			continue
		}
		if isSeparator(r, una) {
			break
		}
		c.advance()
		sb = append(sb, r)
	}
	end := c.position()
	return raw.DataElement{Value: string(sb), Start: start, End: end}, nil
}

// lexSlot reads one element slot: one or more data-element values joined by
// the component separator. More than one value makes it a composite;
// exactly one makes it a bare data element.
func lexSlot(c *cursor, una raw.UNA) (raw.Slot, error) {
	var elements []raw.DataElement
	for {
		el, err := lexValue(c, una)
		if err != nil {
			return raw.Slot{}, err
		}
		elements = append(elements, el)
		r, ok := c.peek()
		if ok && r == una.ComponentSep {
			c.advance()
			continue
		}
		break
	}
	if len(elements) == 1 {
		return raw.Slot{Data: elements[0]}, nil
	}
	return raw.Slot{IsComposite: true, Composite: raw.Composite{Elements: elements}}, nil
}

// skipWhitespace tolerates the trailing whitespace §3 allows between
// segments (and at the very end of the interchange).
func skipWhitespace(c *cursor) {
	for {
		r, ok := c.peek()
		if !ok {
			return
		}
		switch r {
		case ' ', '\t', '\r', '\n':
			c.advance()
		default:
			return
		}
	}
}

// lexSegment reads: a tag, the element separator, zero or more
// element slots joined by the element separator, the segment separator, then
// optional whitespace.
func lexSegment(c *cursor, una raw.UNA) (raw.Segment, error) {
	tag, err := lexValue(c, una)
	if err != nil {
		return raw.Segment{}, err
	}
	r, ok := c.peek()
	if !ok || r != una.ElementSep {
		return raw.Segment{}, newParseError(c.position(), "element separator")
	}
	c.advance()

	var slots []raw.Slot
	for {
		slot, err := lexSlot(c, una)
		if err != nil {
			return raw.Segment{}, err
		}
		slots = append(slots, slot)

		r, ok := c.peek()
		if !ok {
			return raw.Segment{}, newParseError(c.position(), "segment separator")
		}
		if r == una.ElementSep {
			c.advance()
			continue
		}
		if r == una.SegmentSep {
			c.advance()
			break
		}
		return raw.Segment{}, newParseError(c.position(), "element separator", "segment separator")
	}

	skipWhitespace(c)
	return raw.Segment{Tag: tag, Slots: slots}, nil
}

// Parse implements the contract of §4.2: given already-decoded EDIFACT text,
// it resolves the leading UNA (if any) and lexes the remainder into a flat
// raw.Interchange. Parsing is greedy and total: it either consumes the whole
// input (modulo trailing whitespace) and returns a complete tree, or returns
// a single *ParseError with no partial tree.
func Parse(input string) (*raw.Interchange, error) {
	data := []rune(input)
	una, consumed := ResolveUNA(data)
	c := newCursor(data, consumed)
	skipWhitespace(c)

	var segments []raw.Segment
	for !c.atEOF() {
		seg, err := lexSegment(c, una)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
		skipWhitespace(c)
	}

	return &raw.Interchange{UNA: una, Segments: segments}, nil
}
