package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	rec := Record{
		"x12_sender_id": "SENDERID",
		"x12_headers": map[string]any{
			"functional_group": map[string]any{"date": "2024-01-15"},
		},
		"dotted.key": 1,
	}

	v, err := Lookup(rec, "x12_sender_id")
	require.NoError(t, err)
	assert.Equal(t, "SENDERID", v)

	v, err = Lookup(rec, "x12_headers.functional_group.date")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", v)

	v, err = Lookup(rec, "dotted.key")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = Lookup(rec, "x12_headers.missing")
	assert.Error(t, err)
}
