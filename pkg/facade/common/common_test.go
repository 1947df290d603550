package common

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oarkflow/edi/pkg/parsers"
	"github.com/oarkflow/edi/pkg/x12"
)

func parseSample(t *testing.T) *x12.Loop {
	t.Helper()
	data, err := os.ReadFile("testdata/remittance.835")
	require.NoError(t, err)
	root, err := parsers.NewX12Parser().ParseString(string(data))
	require.NoError(t, err)
	return root
}

func transaction(t *testing.T) *x12.Loop {
	t.Helper()
	loops := parseSample(t).Loops(x12.TransactionLoop)
	require.Len(t, loops, 1)
	return loops[0]
}

func loopOf(name string, segments ...*x12.Segment) *x12.Loop {
	children := make([]x12.Node, 0, len(segments))
	for _, seg := range segments {
		children = append(children, seg)
	}
	return x12.NewLoop(name, children...)
}
