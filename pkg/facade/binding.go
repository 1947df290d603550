package facade

import (
	"fmt"
	"strings"
)

// Shape says how a Binding finds its element.
type Shape int

const (
	Positional Shape = iota
	CompositeComponent
	OneOfQualified
)

// Slot is one qualifier/value element pair of a one-of binding.
type Slot struct {
	Qualifier int
	Value     int
}

// Pair declares a one-of slot: the qualifier element and its value element.
func Pair(qualifier, value int) Slot {
	return Slot{Qualifier: qualifier, Value: value}
}

// Binding describes how to find one element relative to the current loop.
// Build it with At, Composite or OneOf; the zero value binds nothing.
type Binding struct {
	Tag       string
	Index     int
	Component int
	Code      string
	slots     []Slot
}

// At binds the element at a 1-based position of the first segment tagged tag.
func At(tag string, index int) Binding {
	return Binding{Tag: tag, Index: index}
}

// Composite binds a 1-based component of a composite element.
func Composite(tag string, index, component int) Binding {
	return Binding{Tag: tag, Index: index, Component: component}
}

// OneOf binds the value paired with the first slot whose qualifier element
// equals code. Slots are tried in the order given.
func OneOf(tag, code string, slots ...Slot) Binding {
	return Binding{Tag: tag, Code: code, slots: append([]Slot(nil), slots...)}
}

func (b Binding) Shape() Shape {
	switch {
	case len(b.slots) > 0:
		return OneOfQualified
	case b.Component > 0:
		return CompositeComponent
	default:
		return Positional
	}
}

// Slots returns a copy of the one-of slots.
func (b Binding) Slots() []Slot {
	return append([]Slot(nil), b.slots...)
}

func (b Binding) String() string {
	switch b.Shape() {
	case OneOfQualified:
		pairs := make([]string, 0, len(b.slots))
		for _, s := range b.slots {
			pairs = append(pairs, fmt.Sprintf("%02d/%02d", s.Qualifier, s.Value))
		}
		return fmt.Sprintf("%s[%s@%s]", b.Tag, b.Code, strings.Join(pairs, ","))
	case CompositeComponent:
		return fmt.Sprintf("%s%02d-%d", b.Tag, b.Index, b.Component)
	default:
		return fmt.Sprintf("%s%02d", b.Tag, b.Index)
	}
}
