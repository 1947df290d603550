package facade

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestD8(t *testing.T) {
	d, err := D8("20240229")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "20240229", EncodeD8(d))

	for _, raw := range []string{"2024-01-01", "2023022", "20230229", "20241301", "abcdefgh"} {
		t.Run(raw, func(t *testing.T) {
			_, err := D8(raw)
			assert.True(t, errors.Is(err, MalformedDate))
		})
	}
}

func TestD6Pivot(t *testing.T) {
	tests := []struct {
		raw  string
		want civil.Date
	}{
		{"240115", civil.Date{Year: 2024, Month: time.January, Day: 15}},
		{"491231", civil.Date{Year: 2049, Month: time.December, Day: 31}},
		{"990101", civil.Date{Year: 1999, Month: time.January, Day: 1}},
	}
	for _, tt := range tests {
		got, err := D6(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	_, err := D6("20240115")
	assert.True(t, errors.Is(err, MalformedDate))
}

func TestTM(t *testing.T) {
	tests := []struct {
		raw  string
		want civil.Time
	}{
		{"1230", civil.Time{Hour: 12, Minute: 30}},
		{"235959", civil.Time{Hour: 23, Minute: 59, Second: 59}},
		{"08150525", civil.Time{Hour: 8, Minute: 15, Second: 5, Nanosecond: 250000000}},
	}
	for _, tt := range tests {
		got, err := TM(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
	for _, raw := range []string{"123", "12:30", "2460", "12345", "1261"} {
		_, err := TM(raw)
		assert.True(t, errors.Is(err, MalformedTime), raw)
	}
}

func TestMoneyIsExact(t *testing.T) {
	total := decimal.Zero
	for i := 0; i < 6; i++ {
		v, err := Money("0.10")
		require.NoError(t, err)
		total = total.Add(v)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("0.60")))

	for raw, want := range map[string]string{"-12.5": "-12.5", "+3": "3", ".75": "0.75", "100.": "100"} {
		v, err := Money(raw)
		require.NoError(t, err, raw)
		assert.True(t, v.Equal(decimal.RequireFromString(want)), raw)
	}
	for _, raw := range []string{"1,000.00", "12.3.4", "$5", "1e3", "."} {
		_, err := Money(raw)
		assert.True(t, errors.Is(err, MalformedAmount), raw)
	}
}

func TestTrimmed(t *testing.T) {
	v, err := Trimmed("SENDERID       ")
	require.NoError(t, err)
	assert.Equal(t, "SENDERID", v)
}
