package facade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/edi/pkg/x12"
)

func TestFirstAndEach(t *testing.T) {
	root := NewLoopBridge(x12.NewLoop("ROOT",
		x12.NewLoop("2100", x12.NewSegment("CLP", "A")),
		x12.NewLoop("2000", x12.NewLoop("2100", x12.NewSegment("CLP", "B"))),
	))
	build := func(l *x12.Loop) testFacade { return testFacade{NewLoopBridge(l)} }

	first, ok := First(root, "2100", build)
	require.True(t, ok)
	v, _ := Text("id", At("CLP", 1)).Get(first)
	assert.Equal(t, "A", v)

	_, ok = First(root, "2110", build)
	assert.False(t, ok)

	all := Each(root, "2100", build)
	require.Len(t, all, 2)
	v, _ = Text("id", At("CLP", 1)).Get(all[1])
	assert.Equal(t, "B", v)
	assert.Len(t, root.Descendants("2100"), 2)
	assert.Empty(t, Each[testFacade](nil, "2100", build))
}

func TestEachSegmentDoesNotModifyTree(t *testing.T) {
	loop := x12.NewLoop("2100", x12.NewSegment("CAS", "PR", "1"), x12.NewSegment("CAS", "CO", "45"))
	ctx := NewLoopBridge(loop)
	group := Text("group", At("CAS", 1))

	items := EachSegment(ctx, "CAS", func(l *x12.Loop) testFacade { return testFacade{NewLoopBridge(l)} })
	require.Len(t, items, 2)
	v, _ := group.Get(items[1])
	assert.Equal(t, "CO", v)
	assert.Len(t, loop.Children, 2)
	assert.Same(t, loop.Children[1], items[1].Loop().Children[0])
}
