package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edienergy/ediguide/desc"
)

func TestCheckStatus(t *testing.T) {
	cases := []struct {
		name   string
		status desc.Status
		value  string
		want   string // catalogue name, or "" for no error
	}{
		{"mandatory present", desc.StatusMandatory, "x", ""},
		{"mandatory empty", desc.StatusMandatory, "", "missing"},
		{"required empty", desc.StatusRequired, "", "missing"},
		{"optional empty", desc.StatusOptional, "", ""},
		{"not used empty", desc.StatusNotUsed, "", ""},
		{"not used present", desc.StatusNotUsed, "x", "invalid_value"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := checkStatus(c.status, c.value)
			if c.want == "" {
				assert.Nil(t, err)
				return
			}
			assert.Equal(t, c.want, err.Name())
		})
	}
}

func TestCheckStatus_Idempotent(t *testing.T) {
	// §8: check_st applied twice to a value it already accepted must agree.
	for _, status := range []desc.Status{desc.StatusMandatory, desc.StatusOptional, desc.StatusNotUsed} {
		for _, value := range []string{"", "x"} {
			first := checkStatus(status, value)
			second := checkStatus(status, value)
			assert.Equal(t, first, second)
		}
	}
}

func TestCheckFormat_Exactly(t *testing.T) {
	format := desc.Format{Class: desc.ClassAlpha, Size: desc.SizeExactly, Length: 3}

	assert.Nil(t, checkFormat(format, desc.StatusMandatory, "abc"))

	err := checkFormat(format, desc.StatusMandatory, "ab")
	assert.Equal(t, "data_element_too_short", err.Name())

	err = checkFormat(format, desc.StatusMandatory, "abcd")
	assert.Equal(t, "data_element_too_long", err.Name())

	assert.Nil(t, checkFormat(format, desc.StatusOptional, ""))
	assert.Nil(t, checkFormat(format, desc.StatusNotUsed, ""))
}

func TestCheckFormat_AtMost(t *testing.T) {
	format := desc.Format{Class: desc.ClassAlphanumeric, Size: desc.SizeAtMost, Length: 35}

	assert.Nil(t, checkFormat(format, desc.StatusOptional, ""))
	assert.Nil(t, checkFormat(format, desc.StatusMandatory, "short"))

	long := make([]byte, 36)
	for i := range long {
		long[i] = 'a'
	}
	err := checkFormat(format, desc.StatusMandatory, string(long))
	assert.Equal(t, "data_element_too_long", err.Name())
}
