package facade

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var groupCodes = CodeTable{
	"CO": "Contractual Obligations",
	"PR": "Patient Responsibility",
}

func TestEnumStrict(t *testing.T) {
	decode := Enum(groupCodes)

	c, err := decode("CO")
	require.NoError(t, err)
	assert.Equal(t, Coded{Code: "CO", Label: "Contractual Obligations", Labeled: true}, c)
	assert.Equal(t, "CO (Contractual Obligations)", c.String())

	_, err = decode("ZZ")
	assert.True(t, errors.Is(err, UnknownCode))
}

func TestEnumRawUnknowns(t *testing.T) {
	c, err := Enum(groupCodes, RawUnknowns())("ZZ")
	require.NoError(t, err)
	assert.Equal(t, Coded{Code: "ZZ"}, c)
	assert.False(t, c.Labeled)
	assert.Equal(t, "ZZ", c.String())
}

func TestRegistryWithLeavesOriginalUntouched(t *testing.T) {
	base := NewRegistry(NamedTable{Name: "group", Codes: groupCodes})
	effective := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	next := base.With(
		NamedTable{Name: "group", Effective: effective, Codes: CodeTable{"OA": "Other Adjustments", "CO": "Contractual"}},
		NamedTable{Name: "remark", Codes: CodeTable{"N1": "Alert"}},
	)

	orig, ok := base.Table("group")
	require.True(t, ok)
	assert.Len(t, orig.Codes, 2)
	assert.Equal(t, "Contractual Obligations", orig.Codes["CO"])
	_, ok = base.Table("remark")
	assert.False(t, ok)

	merged, ok := next.Table("group")
	require.True(t, ok)
	assert.Len(t, merged.Codes, 3)
	assert.Equal(t, "Contractual", merged.Codes["CO"])
	assert.Equal(t, effective, merged.Effective)
	assert.Equal(t, []string{"group", "remark"}, next.Names())

	groupCodes["XX"] = "mutated after registration"
	defer delete(groupCodes, "XX")
	orig, _ = base.Table("group")
	assert.NotContains(t, orig.Codes, "XX")
}

func TestRegistryLabel(t *testing.T) {
	r := NewRegistry(NamedTable{Name: "group", Codes: groupCodes})

	assert.Equal(t, Coded{Code: "PR", Label: "Patient Responsibility", Labeled: true}, r.Label("group", Coded{Code: "PR"}))
	assert.Equal(t, Coded{Code: "ZZ"}, r.Label("group", Coded{Code: "ZZ"}))
	assert.Equal(t, Coded{Code: "PR"}, r.Label("missing", Coded{Code: "PR"}))

	labeled := Coded{Code: "PR", Label: "custom", Labeled: true}
	assert.Equal(t, labeled, r.Label("group", labeled))
}
