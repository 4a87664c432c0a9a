package desc

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFormat_StringAndParseRoundTrip(t *testing.T) {
	cases := []Format{
		{Class: ClassAlphanumeric, Size: SizeAtMost, Length: 35},
		{Class: ClassAlpha, Size: SizeExactly, Length: 3},
		{Class: ClassNumeric, Size: SizeAtMost, Length: 6},
	}
	for _, f := range cases {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		require.Equal(t, f, parsed)
	}
}

func TestUsage_MarshalJSON_Discriminator(t *testing.T) {
	u := Usage{Kind: UsageOneOf, Choices: []Choice{{Value: "E03", Comment: "Messstellenbetreiber"}}}
	b, err := json.Marshal(u)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Equal(t, "OneOf", raw["type"])

	var back Usage
	require.NoError(t, json.Unmarshal(b, &back))
	if diff := cmp.Diff(u, back); diff != "" {
		t.Errorf("Usage round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUsage_Admits(t *testing.T) {
	oneOf := Usage{Kind: UsageOneOf, Choices: []Choice{{Value: "E03"}, {Value: "E02"}}}
	require.True(t, oneOf.Admits("E03"))
	require.False(t, oneOf.Admits("E99"))

	static := Usage{Kind: UsageStatic, Static: "UTILMD"}
	require.True(t, static.Admits("UTILMD"))
	require.False(t, static.Admits("MSCONS"))

	require.False(t, Usage{Kind: UsageText}.Admits("anything"))
}

func TestSlot_MarshalJSON_UntaggedShape(t *testing.T) {
	bare := Slot{Data: DataElement{Name: "Qualifier", Format: Format{Class: ClassAlphanumeric, Size: SizeAtMost, Length: 3}}}
	composite := Slot{IsComposite: true, Composite: Composite{
		Elements: []DataElement{{Name: "A"}, {Name: "B"}},
	}}

	for _, s := range []Slot{bare, composite} {
		b, err := json.Marshal(s)
		require.NoError(t, err)
		var back Slot
		require.NoError(t, json.Unmarshal(b, &back))
		if diff := cmp.Diff(s, back); diff != "" {
			t.Errorf("Slot round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestBody_MarshalJSON_UntaggedShape(t *testing.T) {
	leaf := Body{Segment: Segment{Counter: 1, Tag: "NAD", Status: StatusRequired}}
	group := Body{IsGroup: true, Group: SegmentGroup{
		Counter: 2,
		Body:    []Body{{Segment: Segment{Counter: 1, Tag: "RFF"}}},
	}}

	for _, b := range []Body{leaf, group} {
		data, err := json.Marshal(b)
		require.NoError(t, err)
		var back Body
		require.NoError(t, json.Unmarshal(data, &back))
		if diff := cmp.Diff(b, back); diff != "" {
			t.Errorf("Body round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDataElement_IsQualifier(t *testing.T) {
	require.True(t, DataElement{Name: "Status description code qualifier"}.IsQualifier())
	require.True(t, DataElement{Name: "PartyQualifier"}.IsQualifier())
	require.False(t, DataElement{Name: "Name"}.IsQualifier())
}

func TestStatus_Classes(t *testing.T) {
	require.True(t, StatusMandatory.IsRequired())
	require.True(t, StatusRequired.IsRequired())
	require.True(t, StatusOptional.IsOptional())
	require.True(t, StatusDependent.IsOptional())
	require.True(t, StatusCond.IsOptional())
	require.True(t, StatusNotUsed.IsNotUsed())
	require.False(t, StatusMandatory.IsOptional())
}
