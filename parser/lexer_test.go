package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edienergy/ediguide/raw"
)

func TestResolveUNA_Explicit(t *testing.T) {
	input := []rune("UNA:+.? '" + "UNB+...")
	una, consumed := ResolveUNA(input)
	require.Equal(t, 9, consumed)
	assert.Equal(t, raw.UNA{
		ComponentSep: ':',
		ElementSep:   '+',
		DecimalMark:  '.',
		Escape:       '?',
		Reserved:     ' ',
		SegmentSep:   '\'',
	}, una)
}

func TestResolveUNA_Default(t *testing.T) {
	input := []rune("UNB+...")
	una, consumed := ResolveUNA(input)
	require.Equal(t, 0, consumed)
	assert.Equal(t, raw.DefaultUNA, una)
}

func TestResolveUNA_TooShortNeverPanics(t *testing.T) {
	una, consumed := ResolveUNA([]rune("UNA:+"))
	assert.Equal(t, 0, consumed)
	assert.Equal(t, raw.DefaultUNA, una)
}

func TestParse_SimpleInterchange(t *testing.T) {
	input := "UNB+UNOC:3+SENDER+RECEIVER+210101:1200+1'UNH+1+APERAK:D:07A:UN:EAN007'UNT+2+1'UNZ+1+1'"
	itc, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, itc.Segments, 4)
	assert.Equal(t, "UNB", itc.Segments[0].Tag.Value)
	assert.Equal(t, "UNZ", itc.Segments[3].Tag.Value)
}

func TestParse_EscapeIsTransparent(t *testing.T) {
	itc, err := Parse("UNH+1?'2+x'")
	require.NoError(t, err)
	require.Len(t, itc.Segments, 1)
	first, ok := itc.Segments[0].Slots[0].FirstDataElement()
	require.True(t, ok)
	assert.Equal(t, "1'2", first.Value)
}

func TestParse_EscapeAtEndOfInputIsSyntaxError(t *testing.T) {
	_, err := Parse("UNH+1?")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParse_CompositeSlot(t *testing.T) {
	itc, err := Parse("UNH+1+APERAK:D:07A'")
	require.NoError(t, err)
	slot := itc.Segments[0].Slots[1]
	require.True(t, slot.IsComposite)
	assert.Len(t, slot.Composite.Elements, 3)
}

func TestParse_MissingSegmentSeparatorIsSyntaxError(t *testing.T) {
	_, err := Parse("UNH+1+x")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Expected, "segment separator")
}

func TestParse_PositionsAreMonotonic(t *testing.T) {
	itc, err := Parse("UNH+1'UNT+1+1'")
	require.NoError(t, err)
	var prev raw.Position
	for _, seg := range itc.Segments {
		assert.True(t, prev.Less(seg.Tag.Start) || prev == seg.Tag.Start)
		prev = seg.Tag.Start
	}
}

func TestParse_TrailingWhitespaceTolerated(t *testing.T) {
	itc, err := Parse("UNH+1'\n\n  ")
	require.NoError(t, err)
	assert.Len(t, itc.Segments, 1)
}
