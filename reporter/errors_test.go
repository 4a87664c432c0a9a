package reporter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edienergy/ediguide/raw"
)

func TestError_UnwrapsToUnderlying(t *testing.T) {
	underlying := errors.New("boom")
	pos := raw.Position{Line: 3, Col: 7}
	err := Error(pos, underlying)

	assert.Equal(t, pos, err.GetPosition())
	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "3:7")
}

func TestNewSyntaxError_PanicsOnUnknownCode(t *testing.T) {
	assert.Panics(t, func() {
		NewSyntaxError(Code(999))
	})
}

func TestSyntaxError_NameAndMessage(t *testing.T) {
	err := NewSyntaxError(CodeMissing)
	assert.Equal(t, "missing", err.Name())
	assert.NotEmpty(t, err.Message())
}

func TestSegmentError_LeafCount(t *testing.T) {
	syntax := ErrTooManyParts
	e := SegmentError{
		Syntax: &syntax,
		Elements: []ElementError{
			{Data: DataElementError{Cause: ErrMissing}},
			{IsComposite: true, Composite: CompositeError{
				Elements: []DataElementError{{Cause: ErrInvalidValue}, {Cause: ErrInvalidValue}},
			}},
		},
	}
	require.Equal(t, 4, e.LeafCount())
}

func TestInterchangeError_EmptyRequiresEveryBranchEmpty(t *testing.T) {
	var ierr InterchangeError
	require.True(t, ierr.Empty())

	ierr.Message.Segments = append(ierr.Message.Segments, SegmentError{Syntax: &ErrMissing})
	require.False(t, ierr.Empty())
	assert.ErrorIs(t, ierr, ErrInvalidInterchange)
}
