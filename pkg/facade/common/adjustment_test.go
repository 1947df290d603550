package common

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/facade/enums"
	"github.com/oarkflow/edi/pkg/x12"
)

func cas(elements ...string) *ClaimAdjustment {
	return NewClaimAdjustment(loopOf("CAS", x12.NewSegment("CAS", elements...)), "claim")
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClaimAdjustmentSlots(t *testing.T) {
	c := cas("CO", "45", "40.00", "", "253", "10.00", "2")

	group, ok, err := c.Group()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "CO", group.Code)
	assert.True(t, group.Labeled)

	reason, ok, err := c.Reason(2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "253", reason.Code)

	_, ok, err = c.Reason(3)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, _ = c.Reason(7)
	assert.False(t, ok)

	q, ok := c.Quantity(1)
	assert.True(t, ok)
	assert.Equal(t, "", q)
	q, _ = c.Quantity(2)
	assert.Equal(t, "2", q)

	slots, err := c.Slots()
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, 2, slots[1].Slot)
	assert.True(t, slots[1].Amount.Equal(dec("10")))
}

func TestClaimAdjustmentTotals(t *testing.T) {
	tests := []struct {
		name     string
		elements []string
		total    string
		for45    string
		quantity string
	}{
		{"single", []string{"CO", "45", "100.00", "1"}, "100", "100", "1"},
		{"two slots", []string{"CO", "45", "40.00", "", "253", "10.00"}, "50", "40", "0"},
		{"repeated reason", []string{"CO", "45", "0.10", "1", "45", "0.10", "1", "45", "0.10", "1", "45", "0.10", "", "45", "0.10", "", "45", "0.10"}, "0.6", "0.6", "3"},
		{"group only", []string{"PR"}, "0", "0", "0"},
		{"malformed quantity", []string{"PR", "1", "5.00", "x", "2", "1.5", "2.5"}, "6.5", "0", "2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cas(tt.elements...)
			total, err := c.TotalAmount()
			require.NoError(t, err)
			assert.True(t, total.Equal(dec(tt.total)), total.String())

			filtered, err := c.TotalAmountFor("45")
			require.NoError(t, err)
			assert.True(t, filtered.Equal(dec(tt.for45)), filtered.String())

			assert.True(t, c.TotalQuantity().Equal(dec(tt.quantity)))
		})
	}
}

func TestClaimAdjustmentMalformedAmount(t *testing.T) {
	c := cas("CO", "45", "ten")
	_, err := c.TotalAmount()
	assert.ErrorIs(t, err, facade.MalformedAmount)
	_, err = c.Slots()
	assert.ErrorIs(t, err, facade.MalformedAmount)

	_, _, err = cas("XX").Group()
	assert.ErrorIs(t, err, facade.UnknownCode)
}

func TestAllReasonsIsRestartable(t *testing.T) {
	c := cas("CO", "45", "1", "", "ZZ9", "2", "", "", "3")
	collect := func() []facade.Coded {
		var reasons []facade.Coded
		for r, err := range c.AllReasons() {
			require.NoError(t, err)
			reasons = append(reasons, r)
		}
		return reasons
	}
	reasons := collect()
	require.Len(t, reasons, 2)
	assert.Equal(t, "45", reasons[0].Code)
	assert.Equal(t, "ZZ9", reasons[1].Code)
	assert.Equal(t, reasons, collect())
	assert.True(t, reasons[0].Labeled)
	assert.False(t, reasons[1].Labeled, "unknown reason codes pass through")

	for r := range c.AllReasons() {
		assert.Equal(t, "45", r.Code)
		break
	}
}

func TestPopulatedCodesStopsOnDecodeFailure(t *testing.T) {
	c := cas("CO", "", "", "", "PR", "", "", "XX", "", "", "OA")
	strict := facade.Enum(enums.ClaimAdjustmentGroup)
	fields := []facade.Field[facade.Coded]{
		facade.Bind("first", facade.At("CAS", 1), strict),
		facade.Bind("empty", facade.At("CAS", 2), strict),
		facade.Bind("second", facade.At("CAS", 5), strict),
		facade.Bind("unknown", facade.At("CAS", 8), strict),
		facade.Bind("after", facade.At("CAS", 11), strict),
	}

	var codes []string
	var failure error
	for code, err := range populatedCodes(c, fields) {
		if err != nil {
			failure = err
			continue
		}
		codes = append(codes, code.Code)
	}
	assert.Equal(t, []string{"CO", "PR"}, codes, "nothing is yielded after the failure")
	assert.ErrorIs(t, failure, facade.UnknownCode)
}

func TestClaimAdjustmentsFromLoop(t *testing.T) {
	loop := loopOf("2100",
		x12.NewSegment("CLP", "A"),
		x12.NewSegment("CAS", "PR", "1", "30.00"),
		x12.NewSegment("NM1", "QC"),
		x12.NewSegment("CAS", "CO", "45", "20.00"),
	)
	adjustments := ClaimAdjustments(loop, "claim")
	require.Len(t, adjustments, 2)
	assert.Equal(t, "claim", adjustments[1].Qualifier)
	g, _, _ := adjustments[1].Group()
	assert.Equal(t, "CO", g.Code)

	out, err := facade.Render(adjustments[0])
	require.NoError(t, err)
	assert.Equal(t, "30", out["amount_1"])
	assert.Equal(t, map[string]any{"code": "1", "label": "Deductible Amount"}, out["reason_1"])
}
