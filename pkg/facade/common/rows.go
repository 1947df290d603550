package common

import (
	"github.com/shopspring/decimal"

	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/facade/enums"
	"github.com/oarkflow/edi/pkg/x12"
)

// AdjustmentRow is one populated CAS slot of a claim payment, flattened for
// export.
type AdjustmentRow struct {
	PatientControlNumber string          `json:"patient_control_number"`
	PayerControlNumber   string          `json:"payer_control_number,omitempty"`
	Level                string          `json:"level"`
	ProcedureCode        string          `json:"procedure_code,omitempty"`
	Group                string          `json:"group"`
	Slot                 int             `json:"slot"`
	ReasonCode           string          `json:"reason_code"`
	ReasonLabel          string          `json:"reason_label,omitempty"`
	Amount               decimal.Decimal `json:"amount"`
	Quantity             string          `json:"quantity,omitempty"`
}

// Record returns the row keyed by column name. Amount is kept as its exact
// decimal text.
func (r AdjustmentRow) Record() map[string]any {
	return map[string]any{
		"patient_control_number": r.PatientControlNumber,
		"payer_control_number":   r.PayerControlNumber,
		"level":                  r.Level,
		"procedure_code":         r.ProcedureCode,
		"group_code":             r.Group,
		"slot":                   r.Slot,
		"reason_code":            r.ReasonCode,
		"reason_label":           r.ReasonLabel,
		"amount":                 r.Amount.String(),
		"quantity":               r.Quantity,
	}
}

// AdjustmentRows flattens the claim level and service level adjustments of
// claim in document order. Reason labels missing from the bundled table are
// filled from registry when it is not nil.
func AdjustmentRows(claim *ClaimPayment, registry *facade.Registry) ([]AdjustmentRow, error) {
	pcn, _ := claim.PatientControlNumber()
	payerCN, _ := claim.PayerControlNumber()
	base := AdjustmentRow{PatientControlNumber: pcn, PayerControlNumber: payerCN}

	var rows []AdjustmentRow
	add := func(tmpl AdjustmentRow, adjustments []*ClaimAdjustment) error {
		for _, adj := range adjustments {
			group, _, err := adj.Group()
			if err != nil {
				return err
			}
			slots, err := adj.Slots()
			if err != nil {
				return err
			}
			for _, s := range slots {
				reason := s.Reason
				if registry != nil {
					reason = registry.Label(enums.ClaimAdjustmentReasonsTable, reason)
				}
				row := tmpl
				row.Level = adj.Qualifier
				row.Group = group.Code
				row.Slot = s.Slot
				row.ReasonCode = reason.Code
				row.ReasonLabel = reason.Label
				row.Amount = s.Amount
				row.Quantity = s.Quantity
				rows = append(rows, row)
			}
		}
		return nil
	}

	if err := add(base, claim.Adjustments); err != nil {
		return nil, err
	}
	for _, svc := range claim.Services {
		tmpl := base
		tmpl.ProcedureCode, _ = svc.ProcedureCode()
		if err := add(tmpl, svc.Adjustments); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// RemittanceRows collects the adjustment rows of every 835 transaction set
// below root. Other transaction sets are skipped.
func RemittanceRows(root *x12.Loop, registry *facade.Registry) ([]AdjustmentRow, error) {
	var rows []AdjustmentRow
	for _, st := range root.Loops(x12.TransactionLoop) {
		if id, _ := NewTransactionSetHeader(st).IdentifierCode(); id != "835" {
			continue
		}
		for _, claim := range NewRemittance(st).Claims {
			claimRows, err := AdjustmentRows(claim, registry)
			if err != nil {
				return nil, err
			}
			rows = append(rows, claimRows...)
		}
	}
	return rows, nil
}
