package transformers

import (
	"context"
	"fmt"
	"strings"

	"github.com/oarkflow/expr"

	"github.com/oarkflow/edi/pkg/contracts"
	"github.com/oarkflow/edi/pkg/utils"
)

// FilterTransformer keeps records for which a condition expression is true,
// for example `x12_transaction_set == "835"` or `group_code == "CO"`.
type FilterTransformer struct {
	name      string
	condition string
	eval      func(utils.Record) (any, error)
}

// NewFilterTransformer parses condition once; an empty condition is rejected.
func NewFilterTransformer(name, condition string) (*FilterTransformer, error) {
	if strings.TrimSpace(condition) == "" {
		return nil, fmt.Errorf("filter condition cannot be empty")
	}
	program, err := expr.Parse(condition)
	if err != nil {
		return nil, fmt.Errorf("filter parse error: %w", err)
	}
	return &FilterTransformer{
		name:      name,
		condition: condition,
		eval:      func(rec utils.Record) (any, error) { return program.Eval(rec) },
	}, nil
}

func (ft *FilterTransformer) Name() string {
	return ft.name
}

// Condition returns the expression the filter was built with.
func (ft *FilterTransformer) Condition() string {
	return ft.condition
}

// Transform returns rec when the condition holds and nil when it does not.
// Evaluation errors reject the record.
func (ft *FilterTransformer) Transform(_ context.Context, rec utils.Record) (utils.Record, error) {
	result, err := ft.eval(rec)
	if err != nil {
		return nil, fmt.Errorf("filter evaluation error: %w", err)
	}
	if keep, ok := result.(bool); ok && keep {
		return rec, nil
	}
	return nil, nil
}

var _ contracts.Transformer = (*FilterTransformer)(nil)
