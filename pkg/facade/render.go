package facade

import (
	"errors"
	"fmt"

	"github.com/golang-sql/civil"
	"github.com/oarkflow/json"
	"github.com/shopspring/decimal"
)

// Schema lists the attributes of a facade type in declaration order.
type Schema []Attribute

// Facade is a context that can describe its own attributes.
type Facade interface {
	Context
	Schema() Schema
}

// Render reads every attribute of f into a map keyed by attribute name.
// Absent attributes are omitted; every decode failure is reported.
func Render(f Facade) (map[string]any, error) {
	out := make(map[string]any)
	var errs []error
	for _, attr := range f.Schema() {
		v, ok, err := attr.Resolve(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			out[attr.Name()] = renderValue(v)
		}
	}
	return out, errors.Join(errs...)
}

// MarshalJSON renders f and encodes the result.
func MarshalJSON(f Facade) ([]byte, error) {
	fields, err := Render(f)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal facade: %w", err)
	}
	return data, nil
}

func renderValue(v any) any {
	switch val := v.(type) {
	case civil.Date:
		return val.String()
	case civil.Time:
		return val.String()
	case decimal.Decimal:
		return val.String()
	case Coded:
		m := map[string]any{"code": val.Code}
		if val.Labeled {
			m["label"] = val.Label
		}
		return m
	default:
		return v
	}
}
