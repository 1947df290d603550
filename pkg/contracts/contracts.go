package contracts

import (
	"context"

	"github.com/oarkflow/edi/pkg/utils"
)

// Source streams records until the input is exhausted or ctx is done.
type Source interface {
	Setup(ctx context.Context) error
	Extract(ctx context.Context) (<-chan utils.Record, error)
	Close() error
}

type Transformer interface {
	Name() string
	Transform(ctx context.Context, rec utils.Record) (utils.Record, error)
}
