package x12

import (
	"strings"
)

// Kind distinguishes the two structural node types of a parsed document.
type Kind int

const (
	KindLoop Kind = iota
	KindSegment
)

func (k Kind) String() string {
	switch k {
	case KindLoop:
		return "LOOP"
	case KindSegment:
		return "SEGMENT"
	default:
		return "UNKNOWN"
	}
}

// Node is either a *Loop or a *Segment.
type Node interface {
	Kind() Kind
	// Name is the loop name for loops and the tag for segments.
	Name() string
}

// Envelope loop names of a parsed interchange.
const (
	RootLoop        = "X12_MESSAGE"
	InterchangeLoop = "ISA_LOOP"
	GroupLoop       = "GS_LOOP"
	TransactionLoop = "ST_LOOP"
)

// DefaultComponentSeparator is used when a segment was built without one.
const DefaultComponentSeparator = ':'

// Segment is a tagged, ordered list of raw elements. Elements are addressed
// 1-based, so Elements[0] holds element 1.
type Segment struct {
	Tag       string
	Elements  []string
	Separator byte
}

// NewSegment builds a segment using the default component separator.
func NewSegment(tag string, elements ...string) *Segment {
	return &Segment{Tag: tag, Elements: elements, Separator: DefaultComponentSeparator}
}

func (s *Segment) Kind() Kind   { return KindSegment }
func (s *Segment) Name() string { return s.Tag }

// Element returns the raw element at the 1-based index. A short segment
// yields false rather than an error.
func (s *Segment) Element(index int) (string, bool) {
	if s == nil || index < 1 || index > len(s.Elements) {
		return "", false
	}
	return s.Elements[index-1], true
}

// Component returns the 1-based component of a composite element.
func (s *Segment) Component(index, component int) (string, bool) {
	raw, ok := s.Element(index)
	if !ok || component < 1 {
		return "", false
	}
	sep := s.Separator
	if sep == 0 {
		sep = DefaultComponentSeparator
	}
	parts := strings.Split(raw, string(sep))
	if component > len(parts) {
		return "", false
	}
	return parts[component-1], true
}

// Loop is a named group of child nodes. A loop owns its children.
type Loop struct {
	LoopName string
	Children []Node
}

// NewLoop builds a loop holding the given children.
func NewLoop(name string, children ...Node) *Loop {
	return &Loop{LoopName: name, Children: children}
}

func (l *Loop) Kind() Kind   { return KindLoop }
func (l *Loop) Name() string { return l.LoopName }

// Append adds children in document order.
func (l *Loop) Append(children ...Node) {
	l.Children = append(l.Children, children...)
}

// Segment returns the first immediate child segment carrying tag.
func (l *Loop) Segment(tag string) (*Segment, bool) {
	if l == nil {
		return nil, false
	}
	for _, child := range l.Children {
		if seg, ok := child.(*Segment); ok && seg.Tag == tag {
			return seg, true
		}
	}
	return nil, false
}

// Segments returns every immediate child segment carrying tag.
func (l *Loop) Segments(tag string) []*Segment {
	if l == nil {
		return nil
	}
	var out []*Segment
	for _, child := range l.Children {
		if seg, ok := child.(*Segment); ok && seg.Tag == tag {
			out = append(out, seg)
		}
	}
	return out
}

// Descendant walks the subtree below l depth-first and returns, in document
// order, every node of the given kind whose name matches. The receiver itself
// is never included.
func (l *Loop) Descendant(kind Kind, name string) []Node {
	if l == nil {
		return nil
	}
	var out []Node
	var walk func(parent *Loop)
	walk = func(parent *Loop) {
		for _, child := range parent.Children {
			if child.Kind() == kind && child.Name() == name {
				out = append(out, child)
			}
			if sub, ok := child.(*Loop); ok {
				walk(sub)
			}
		}
	}
	walk(l)
	return out
}

// Loops is Descendant restricted to loops, typed.
func (l *Loop) Loops(name string) []*Loop {
	nodes := l.Descendant(KindLoop, name)
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*Loop, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.(*Loop))
	}
	return out
}
