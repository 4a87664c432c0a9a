package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edienergy/ediguide/desc"
	"github.com/edienergy/ediguide/parser"
)

func envelopeSlot() desc.Slot {
	return desc.Slot{Data: desc.DataElement{
		Name:   "Id",
		Status: desc.StatusOptional,
		Format: desc.Format{Class: desc.ClassAlphanumeric, Size: desc.SizeAtMost, Length: 10},
	}}
}

func simpleDescription() desc.Interchange {
	return desc.Interchange{
		Header: desc.Segment{Tag: "UNB", Status: desc.StatusMandatory, Slots: []desc.Slot{envelopeSlot()}},
		Message: desc.Message{
			Header: desc.Segment{Tag: "UNH", Status: desc.StatusMandatory, Slots: []desc.Slot{envelopeSlot()}},
			Body: []desc.Body{
				{Segment: desc.Segment{
					Counter: 1,
					Tag:     "NAD",
					Status:  desc.StatusRequired,
					MaxReps: 1,
					Slots: []desc.Slot{
						{Data: desc.DataElement{
							Name:   "Party qualifier",
							Status: desc.StatusMandatory,
							Format: desc.Format{Class: desc.ClassAlphanumeric, Size: desc.SizeAtMost, Length: 3},
							Usage:  desc.Usage{Kind: desc.UsageOneOf, Choices: []desc.Choice{{Value: "MS"}}},
						}},
					},
				}},
				{Segment: desc.Segment{
					Counter: 1,
					Tag:     "NAD",
					Status:  desc.StatusOptional,
					MaxReps: 1,
					Slots: []desc.Slot{
						{Data: desc.DataElement{
							Name:   "Party qualifier",
							Status: desc.StatusMandatory,
							Format: desc.Format{Class: desc.ClassAlphanumeric, Size: desc.SizeAtMost, Length: 3},
							Usage:  desc.Usage{Kind: desc.UsageOneOf, Choices: []desc.Choice{{Value: "DP"}}},
						}},
					},
				}},
			},
			Trailer: desc.Segment{Tag: "UNT", Status: desc.StatusMandatory, Slots: []desc.Slot{envelopeSlot()}},
		},
		Trailer: desc.Segment{Tag: "UNZ", Status: desc.StatusMandatory, Slots: []desc.Slot{envelopeSlot()}},
	}
}

func TestMatch_SuccessfulInterchange(t *testing.T) {
	input := "UNB+x'UNH+1'NAD+MS'UNT+1'UNZ+1'"
	raw, err := parser.Parse(input)
	require.NoError(t, err)

	matched, ierr := Match(simpleDescription(), *raw)
	require.Nil(t, ierr)
	require.Len(t, matched.Message.Body, 1)
	require.False(t, matched.Message.Body[0].IsGroup)
	require.Equal(t, "NAD", matched.Message.Body[0].Segment.Raw.Tag.Value)
	require.Equal(t, 0, matched.TrailingSegments)
}

func TestMatch_MissingRequiredSegmentSurfacesNoHardError(t *testing.T) {
	// NAD is required, but the matcher does not check segment-level status,
	// so its absence alone does not fail the match: nothing consumes its
	// slot and no segment error is recorded for it, only for structural
	// mismatches in what *is* present.
	input := "UNB+x'UNH+1'UNT+1'UNZ+1'"
	raw, err := parser.Parse(input)
	require.NoError(t, err)

	matched, ierr := Match(simpleDescription(), *raw)
	require.Nil(t, ierr)
	require.Len(t, matched.Message.Body, 0)
}

func TestMatch_InvalidQualifierValueIsTolerantlySkipped(t *testing.T) {
	// NAD+ZZ admits neither alternative's party qualifier, so it never
	// matches the NAD counter run at all; it, and everything after it, is
	// left on the stack rather than being force-matched against UNT/UNZ.
	input := "UNB+x'UNH+1'NAD+ZZ'UNT+1'UNZ+1'"
	raw, err := parser.Parse(input)
	require.NoError(t, err)

	matched, ierr := Match(simpleDescription(), *raw)
	require.Nil(t, ierr)
	require.Equal(t, 3, matched.TrailingSegments)
}

func TestMatch_TooManyPartsIsReported(t *testing.T) {
	input := "UNB+x'UNH+1'NAD+MS+EXTRA'UNT+1'UNZ+1'"
	raw, err := parser.Parse(input)
	require.NoError(t, err)

	_, ierr := Match(simpleDescription(), *raw)
	require.NotNil(t, ierr)
	require.Len(t, ierr.Message.Segments, 1)
	require.NotNil(t, ierr.Message.Segments[0].Syntax)
	require.Equal(t, "too_many_parts", ierr.Message.Segments[0].Syntax.Name())
}
