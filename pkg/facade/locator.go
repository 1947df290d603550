package facade

import (
	"github.com/oarkflow/edi/pkg/x12"
)

// Context is the loop a binding is resolved against.
type Context interface {
	Loop() *x12.Loop
}

// Locate returns the raw element selected by b, searching only the immediate
// children of the context loop. A missing loop, segment or element yields
// false.
func Locate(ctx Context, b Binding) (string, bool) {
	if ctx == nil {
		return "", false
	}
	seg, ok := ctx.Loop().Segment(b.Tag)
	if !ok {
		return "", false
	}
	switch b.Shape() {
	case OneOfQualified:
		for _, slot := range b.slots {
			q, ok := seg.Element(slot.Qualifier)
			if !ok || q != b.Code {
				continue
			}
			return seg.Element(slot.Value)
		}
		return "", false
	case CompositeComponent:
		return seg.Component(b.Index, b.Component)
	default:
		return seg.Element(b.Index)
	}
}
