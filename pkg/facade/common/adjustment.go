package common

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"

	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/facade/enums"
	"github.com/oarkflow/edi/pkg/x12"
)

// AdjustmentSlots is the number of reason/amount/quantity triples in a CAS
// segment.
const AdjustmentSlots = 6

type adjustmentSlot struct {
	reason   facade.Field[facade.Coded]
	amount   facade.Field[decimal.Decimal]
	quantity facade.TextField
}

var casGroup = facade.Bind("group", facade.At("CAS", 1), facade.Enum(enums.ClaimAdjustmentGroup))

// casSlots holds the triples at CAS02-04, CAS05-07, ... CAS17-19.
var casSlots = func() [AdjustmentSlots]adjustmentSlot {
	reasons := facade.Enum(enums.ClaimAdjustmentReasons, facade.RawUnknowns())
	var slots [AdjustmentSlots]adjustmentSlot
	for i := range slots {
		n, base := i+1, 2+3*i
		slots[i] = adjustmentSlot{
			reason:   facade.Bind(fmt.Sprintf("reason_%d", n), facade.At("CAS", base), reasons),
			amount:   facade.Bind(fmt.Sprintf("amount_%d", n), facade.At("CAS", base+1), facade.Money),
			quantity: facade.Text(fmt.Sprintf("quantity_%d", n), facade.At("CAS", base+2)),
		}
	}
	return slots
}()

var adjustmentSchema = func() facade.Schema {
	schema := facade.Schema{casGroup}
	for _, slot := range casSlots {
		schema = append(schema, slot.reason, slot.amount, slot.quantity)
	}
	return schema
}()

// Adjustment is one populated slot of a CAS segment.
type Adjustment struct {
	Slot     int
	Reason   facade.Coded
	Amount   decimal.Decimal
	Quantity string
}

// ClaimAdjustment reads a CAS segment.
type ClaimAdjustment struct {
	facade.LoopBridge
	Qualifier string
}

func NewClaimAdjustment(loop *x12.Loop, qualifier string) *ClaimAdjustment {
	return &ClaimAdjustment{LoopBridge: facade.NewLoopBridge(loop), Qualifier: qualifier}
}

// ClaimAdjustments returns one ClaimAdjustment per CAS segment directly in
// loop, in document order.
func ClaimAdjustments(loop *x12.Loop, qualifier string) []*ClaimAdjustment {
	return facade.EachSegment(facade.NewLoopBridge(loop), "CAS", func(l *x12.Loop) *ClaimAdjustment {
		return NewClaimAdjustment(l, qualifier)
	})
}

func (c *ClaimAdjustment) Schema() facade.Schema { return adjustmentSchema }

// Group is the claim adjustment group code, CAS01.
func (c *ClaimAdjustment) Group() (facade.Coded, bool, error) {
	return casGroup.Get(c)
}

func slot(n int) (adjustmentSlot, bool) {
	if n < 1 || n > AdjustmentSlots {
		return adjustmentSlot{}, false
	}
	return casSlots[n-1], true
}

// Reason returns the reason code of the 1-based slot n. Codes missing from
// the bundled table come back unlabeled.
func (c *ClaimAdjustment) Reason(n int) (facade.Coded, bool, error) {
	s, ok := slot(n)
	if !ok {
		return facade.Coded{}, false, nil
	}
	return s.reason.Get(c)
}

func (c *ClaimAdjustment) Amount(n int) (decimal.Decimal, bool, error) {
	s, ok := slot(n)
	if !ok {
		return decimal.Zero, false, nil
	}
	return s.amount.Get(c)
}

func (c *ClaimAdjustment) Quantity(n int) (string, bool) {
	s, ok := slot(n)
	if !ok {
		return "", false
	}
	return s.quantity.Get(c)
}

// Slots decodes every slot that carries a reason or an amount.
func (c *ClaimAdjustment) Slots() ([]Adjustment, error) {
	var out []Adjustment
	for i, s := range casSlots {
		reason, hasReason, err := s.reason.Get(c)
		if err != nil {
			return nil, err
		}
		amount, hasAmount, err := s.amount.Get(c)
		if err != nil {
			return nil, err
		}
		if !hasReason && !hasAmount {
			continue
		}
		quantity, _ := s.quantity.Get(c)
		out = append(out, Adjustment{Slot: i + 1, Reason: reason, Amount: amount, Quantity: quantity})
	}
	return out, nil
}

// TotalAmount sums the amounts of all slots. Absent amounts count as zero; a
// malformed amount is returned as an error.
func (c *ClaimAdjustment) TotalAmount() (decimal.Decimal, error) {
	return c.totalAmount("", false)
}

// TotalAmountFor sums the amounts of the slots whose reason code is reason.
func (c *ClaimAdjustment) TotalAmountFor(reason string) (decimal.Decimal, error) {
	return c.totalAmount(reason, true)
}

func (c *ClaimAdjustment) totalAmount(reason string, filter bool) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range casSlots {
		if filter {
			code, ok, err := s.reason.Get(c)
			if err != nil {
				return decimal.Zero, err
			}
			if !ok || code.Code != reason {
				continue
			}
		}
		amount, ok, err := s.amount.Get(c)
		if err != nil {
			return decimal.Zero, err
		}
		if ok {
			total = total.Add(amount)
		}
	}
	return total, nil
}

// TotalQuantity sums the quantities of all slots. Quantities are
// informational, so a non-numeric quantity counts as zero instead of failing.
func (c *ClaimAdjustment) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, s := range casSlots {
		raw, ok := s.quantity.Get(c)
		if !ok || raw == "" {
			continue
		}
		q, err := decimal.NewFromString(raw)
		if err != nil {
			q = decimal.Zero
		}
		total = total.Add(q)
	}
	return total
}

// AllReasons yields the reason of each populated slot in slot order. Every
// iteration reads the segment again. A reason that fails to decode is
// yielded with its error and ends the sequence.
func (c *ClaimAdjustment) AllReasons() iter.Seq2[facade.Coded, error] {
	return populatedCodes(c, casReasons)
}

var casReasons = func() []facade.Field[facade.Coded] {
	fields := make([]facade.Field[facade.Coded], 0, AdjustmentSlots)
	for _, s := range casSlots {
		fields = append(fields, s.reason)
	}
	return fields
}()

func populatedCodes(ctx facade.Context, fields []facade.Field[facade.Coded]) iter.Seq2[facade.Coded, error] {
	return func(yield func(facade.Coded, error) bool) {
		for _, f := range fields {
			code, ok, err := f.Get(ctx)
			if err != nil {
				yield(facade.Coded{}, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(code, nil) {
				return
			}
		}
	}
}
