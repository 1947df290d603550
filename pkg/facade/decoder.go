package facade

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	"github.com/shopspring/decimal"
)

// Decoder converts a present raw element into a typed value. Decoders are
// never called for absent elements.
type Decoder[T any] func(raw string) (T, error)

// Raw is the identity decoder used by text bindings.
func Raw(raw string) (string, error) {
	return raw, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// D8 decodes a CCYYMMDD date.
func D8(raw string) (civil.Date, error) {
	if len(raw) != 8 || !allDigits(raw) {
		return civil.Date{}, decodeFailure(MalformedDate, raw)
	}
	year, _ := strconv.Atoi(raw[0:4])
	month, _ := strconv.Atoi(raw[4:6])
	day, _ := strconv.Atoi(raw[6:8])
	d := civil.Date{Year: year, Month: time.Month(month), Day: day}
	if !d.IsValid() {
		return civil.Date{}, decodeFailure(MalformedDate, raw)
	}
	return d, nil
}

// EncodeD8 renders d as CCYYMMDD.
func EncodeD8(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// TM decodes HHMM, HHMMSS or HHMMSS followed by decimal fractions of a
// second.
func TM(raw string) (civil.Time, error) {
	if !allDigits(raw) || (len(raw) != 4 && len(raw) < 6) || len(raw) > 15 {
		return civil.Time{}, decodeFailure(MalformedTime, raw)
	}
	hour, _ := strconv.Atoi(raw[0:2])
	minute, _ := strconv.Atoi(raw[2:4])
	var second, nanos int
	if len(raw) >= 6 {
		second, _ = strconv.Atoi(raw[4:6])
	}
	if frac := raw[min(len(raw), 6):]; frac != "" {
		if len(frac) > 9 {
			frac = frac[:9]
		}
		nanos, _ = strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
	}
	t := civil.Time{Hour: hour, Minute: minute, Second: second, Nanosecond: nanos}
	if hour > 23 || minute > 59 || second > 59 {
		return civil.Time{}, decodeFailure(MalformedTime, raw)
	}
	return t, nil
}

var amountPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Money decodes a signed decimal amount exactly.
func Money(raw string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(raw) {
		return decimal.Zero, decodeFailure(MalformedAmount, raw)
	}
	amount, err := decimal.NewFromString(strings.TrimPrefix(raw, "+"))
	if err != nil {
		return decimal.Zero, decodeFailure(MalformedAmount, raw)
	}
	return amount, nil
}

// D6 decodes a YYMMDD date. Years below 50 fall in the 2000s.
func D6(raw string) (civil.Date, error) {
	if len(raw) != 6 || !allDigits(raw) {
		return civil.Date{}, decodeFailure(MalformedDate, raw)
	}
	century := "20"
	if raw[0] >= '5' {
		century = "19"
	}
	return D8(century + raw)
}

// Trimmed strips the space padding of fixed-width elements.
func Trimmed(raw string) (string, error) {
	return strings.TrimSpace(raw), nil
}
