package facade

import (
	"github.com/oarkflow/edi/pkg/x12"
)

// LoopBridge is embedded by every facade. It holds a non-owning reference to
// the loop the facade reads from.
type LoopBridge struct {
	loop *x12.Loop
}

func NewLoopBridge(loop *x12.Loop) LoopBridge {
	return LoopBridge{loop: loop}
}

// Loop returns the wrapped loop.
func (b LoopBridge) Loop() *x12.Loop {
	return b.loop
}

// Descendants returns the loops named name below the wrapped loop.
func (b LoopBridge) Descendants(name string) []*x12.Loop {
	return b.loop.Loops(name)
}

// First builds a child facade over the first descendant loop named name.
// It reports false, and builds nothing, when there is no such loop.
func First[T any](ctx Context, name string, build func(*x12.Loop) T) (T, bool) {
	var zero T
	if ctx == nil {
		return zero, false
	}
	loops := ctx.Loop().Loops(name)
	if len(loops) == 0 {
		return zero, false
	}
	return build(loops[0]), true
}

// Each builds one child facade per descendant loop named name, in document
// order.
func Each[T any](ctx Context, name string, build func(*x12.Loop) T) []T {
	if ctx == nil {
		return nil
	}
	loops := ctx.Loop().Loops(name)
	out := make([]T, 0, len(loops))
	for _, loop := range loops {
		out = append(out, build(loop))
	}
	return out
}

// EachSegment builds one facade per immediate child segment tagged tag. Each
// facade wraps a detached loop holding only that segment, so single-instance
// bindings can read repeating segments such as CAS or REF. The tree itself is
// not modified.
func EachSegment[T any](ctx Context, tag string, build func(*x12.Loop) T) []T {
	if ctx == nil {
		return nil
	}
	segments := ctx.Loop().Segments(tag)
	out := make([]T, 0, len(segments))
	for _, seg := range segments {
		out = append(out, build(x12.NewLoop(tag, seg)))
	}
	return out
}
