package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/x12"
)

func TestNamedEntity(t *testing.T) {
	tests := []struct {
		name   string
		seg    *x12.Segment
		person bool
		org    bool
	}{
		{"person", x12.NewSegment("NM1", "QC", "1", "DOE", "JANE"), true, false},
		{"organization", x12.NewSegment("NM1", "PR", "2", "ACME"), false, true},
		{"no entity type", x12.NewSegment("NM1", "QC"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewNamedEntity(loopOf("NM1", tt.seg), "QC")
			person, err := e.IsPerson()
			require.NoError(t, err)
			assert.Equal(t, tt.person, person)
			org, err := e.IsOrganization()
			require.NoError(t, err)
			assert.Equal(t, tt.org, org)
		})
	}

	_, err := NewNamedEntity(loopOf("NM1", x12.NewSegment("NM1", "QC", "9")), "").IsPerson()
	assert.ErrorIs(t, err, facade.UnknownCode)
}

func TestNamedEntityFields(t *testing.T) {
	e := NewNamedEntity(loopOf("2100",
		x12.NewSegment("NM1", "IL", "1", "DOE", "JOHN", "Q", "", "JR", "MI", "W123"),
		x12.NewSegment("N3", "1 ELM ST"),
	), "IL")

	last, _ := e.LastName()
	assert.Equal(t, "DOE", last)
	org, _ := e.OrgName()
	assert.Equal(t, "DOE", org, "NM103 carries both names")
	first, _ := e.FirstName()
	assert.Equal(t, "JOHN", first)
	mi, _ := e.MiddleInitial()
	assert.Equal(t, "Q", mi)
	suffix, _ := e.Suffix()
	assert.Equal(t, "JR", suffix)

	q, ok, err := e.IDCodeQualifier()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Member Identification Number", q.Label)
	id, _ := e.IDCode()
	assert.Equal(t, "W123", id)

	addr, _ := e.ContactDetails.Addr1()
	assert.Equal(t, "1 ELM ST", addr)
}

func TestReferenceIDs(t *testing.T) {
	refs := ReferenceIDs(loopOf("2100",
		x12.NewSegment("REF", "1L", "GRP100"),
		x12.NewSegment("CLP", "A"),
		x12.NewSegment("REF", "EA", "MRN9", "chart"),
	))
	require.Len(t, refs, 2)

	q, ok, err := refs[0].Qualifier()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Group or Policy Number", q.Label)
	id, _ := refs[1].ID()
	assert.Equal(t, "MRN9", id)
	desc, _ := refs[1].Description()
	assert.Equal(t, "chart", desc)
	_, ok = refs[0].Description()
	assert.False(t, ok)
}
