package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/facade/enums"
	"github.com/oarkflow/edi/pkg/x12"
)

func TestAdjustmentRows(t *testing.T) {
	claim := NewRemittance(transaction(t)).Claims[0]

	rows, err := AdjustmentRows(claim, nil)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, "claim", rows[0].Level)
	assert.Equal(t, "PR", rows[0].Group)
	assert.Equal(t, "1", rows[0].ReasonCode)
	assert.Equal(t, "Deductible Amount", rows[0].ReasonLabel)
	assert.Empty(t, rows[0].ProcedureCode)
	assert.Equal(t, "PAYERCN01", rows[0].PayerControlNumber)

	assert.Equal(t, "service", rows[2].Level)
	assert.Equal(t, "99213", rows[2].ProcedureCode)
	assert.Equal(t, "1", rows[2].Quantity)

	last := rows[4]
	assert.Equal(t, "85025", last.ProcedureCode)
	assert.Equal(t, 2, last.Slot)
	assert.Equal(t, "253", last.ReasonCode)
	assert.True(t, last.Amount.Equal(dec("10")))

	rec := last.Record()
	assert.Equal(t, "10", rec["amount"])
	assert.Equal(t, "CO", rec["group_code"])
}

func TestAdjustmentRowsRelabelFromRegistry(t *testing.T) {
	claim := NewClaimPayment(loopOf(ClaimPaymentLoop,
		x12.NewSegment("CLP", "PCN9", "1", "10", "0"),
		x12.NewSegment("CAS", "OA", "N999", "10"),
	))
	registry := enums.Registry().With(facade.NamedTable{
		Name:  enums.ClaimAdjustmentReasonsTable,
		Codes: facade.CodeTable{"N999": "Local adjustment"},
	})

	rows, err := AdjustmentRows(claim, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].ReasonLabel)

	rows, err = AdjustmentRows(claim, registry)
	require.NoError(t, err)
	assert.Equal(t, "Local adjustment", rows[0].ReasonLabel)
}

func TestRemittanceRows(t *testing.T) {
	root := parseSample(t)
	rows, err := RemittanceRows(root, nil)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "PCN002", rows[5].PatientControlNumber)
	assert.Equal(t, "29", rows[5].ReasonCode)

	st := root.Loops(x12.TransactionLoop)[0]
	st.Children[0] = x12.NewSegment("ST", "837", "0001")
	rows, err = RemittanceRows(root, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
