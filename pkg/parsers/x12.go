package parsers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/oarkflow/errors"

	"github.com/oarkflow/edi/pkg/x12"
)

// ISALength is the fixed width of an ISA segment including its terminator.
const ISALength = 106

// Delimiters are the separator characters declared by an interchange header.
type Delimiters struct {
	Element    byte `json:"element"`
	Component  byte `json:"component"`
	Repetition byte `json:"repetition,omitempty"`
	Segment    byte `json:"segment"`
}

// LoopRule opens a named loop inside a transaction set whenever a segment
// with the trigger tag (and, when set, the qualifier in element 1) appears.
// Loops opened since the nearest Parent loop are closed first; an empty or
// unknown Parent attaches to the transaction set loop.
type LoopRule struct {
	Name      string `json:"name" yaml:"name"`
	Trigger   string `json:"trigger" yaml:"trigger"`
	Qualifier string `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`
	Parent    string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

func (r LoopRule) matches(seg *x12.Segment) bool {
	if seg.Tag != r.Trigger {
		return false
	}
	if r.Qualifier == "" {
		return true
	}
	q, ok := seg.Element(1)
	return ok && q == r.Qualifier
}

// Remittance835Rules covers the loops of a health care claim payment advice
// that the common facades read.
var Remittance835Rules = []LoopRule{
	{Name: "1000A", Trigger: "N1", Qualifier: "PR", Parent: x12.TransactionLoop},
	{Name: "1000B", Trigger: "N1", Qualifier: "PE", Parent: x12.TransactionLoop},
	{Name: "2000", Trigger: "LX", Parent: x12.TransactionLoop},
	{Name: "2100", Trigger: "CLP", Parent: "2000"},
	{Name: "2110", Trigger: "SVC", Parent: "2100"},
}

// X12ParserOption customizes an X12Parser.
type X12ParserOption func(*X12Parser)

// WithLoopRules replaces the transaction loop rules.
func WithLoopRules(rules ...LoopRule) X12ParserOption {
	return func(p *X12Parser) {
		p.rules = rules
	}
}

// X12Parser splits interchange text into a tree of loops and segments.
// It holds no per-message state, so one parser may be shared.
type X12Parser struct {
	rules []LoopRule
}

// NewX12Parser creates a parser using the 835 loop rules unless overridden.
func NewX12Parser(opts ...X12ParserOption) *X12Parser {
	p := &X12Parser{rules: Remittance835Rules}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the parser name
func (p *X12Parser) Name() string {
	return "X12"
}

// Detect checks if the data starts with an interchange header
func (p *X12Parser) Detect(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) >= ISALength && bytes.HasPrefix(trimmed, []byte("ISA"))
}

// Parse implements Parser and returns the *x12.Loop root.
func (p *X12Parser) Parse(data []byte) (any, error) {
	root, _, err := p.parse(string(data))
	if err != nil {
		return nil, err
	}
	return root, nil
}

// ParseString parses interchange text into a tree rooted at x12.RootLoop.
func (p *X12Parser) ParseString(message string) (*x12.Loop, error) {
	root, _, err := p.parse(message)
	return root, err
}

// ReadDelimiters extracts the separators from the fixed-width ISA header.
func ReadDelimiters(message string) (Delimiters, error) {
	message = strings.TrimLeft(message, " \t\r\n")
	if !strings.HasPrefix(message, "ISA") {
		return Delimiters{}, errors.New("message does not start with ISA segment")
	}
	if len(message) < ISALength {
		return Delimiters{}, errors.New("ISA segment too short")
	}
	d := Delimiters{
		Element:   message[3],
		Component: message[104],
		Segment:   message[105],
	}
	if message[103] != d.Element {
		return Delimiters{}, errors.New("ISA16 is not preceded by the element separator")
	}
	if d.Segment == d.Element || d.Component == d.Element || d.Segment == d.Component {
		return Delimiters{}, fmt.Errorf("ISA delimiters %q %q %q are not distinct", d.Element, d.Component, d.Segment)
	}
	for _, c := range []byte{d.Element, d.Component, d.Segment} {
		if isAlphanumeric(c) {
			return Delimiters{}, fmt.Errorf("ISA delimiter %q is alphanumeric", c)
		}
	}
	fields := strings.Split(message[:104], string(d.Element))
	if len(fields) != 17 {
		return Delimiters{}, fmt.Errorf("ISA segment has %d elements, want 16", len(fields)-1)
	}
	// ISA11 became the repetition separator in version 00501.
	if fields[12] >= "00501" && len(fields[11]) == 1 {
		d.Repetition = fields[11][0]
	}
	return d, nil
}

func isAlphanumeric(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

type frame struct {
	loop *x12.Loop
}

type builder struct {
	root  *x12.Loop
	stack []frame
	rules []LoopRule
}

func (b *builder) top() *x12.Loop {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1].loop
}

// popTo closes loops until name is on top. It reports false, leaving the
// stack untouched, when no open loop has that name.
func (b *builder) popTo(name string) bool {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].loop.LoopName == name {
			b.stack = b.stack[:i+1]
			return true
		}
	}
	return false
}

func (b *builder) open(name string, seg *x12.Segment) {
	loop := x12.NewLoop(name, seg)
	if parent := b.top(); parent != nil {
		parent.Append(loop)
	} else {
		b.root.Append(loop)
	}
	b.stack = append(b.stack, frame{loop: loop})
}

func (b *builder) closeWith(name string, seg *x12.Segment) error {
	if !b.popTo(name) {
		return fmt.Errorf("%s segment without open %s", seg.Tag, name)
	}
	b.top().Append(seg)
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *builder) add(seg *x12.Segment) error {
	switch seg.Tag {
	case "ISA":
		b.stack = b.stack[:0]
		b.open(x12.InterchangeLoop, seg)
	case "GS":
		if !b.popTo(x12.InterchangeLoop) {
			return errors.New("GS segment outside an interchange")
		}
		b.open(x12.GroupLoop, seg)
	case "ST":
		if !b.popTo(x12.GroupLoop) {
			return errors.New("ST segment outside a functional group")
		}
		b.open(x12.TransactionLoop, seg)
	case "SE":
		return b.closeWith(x12.TransactionLoop, seg)
	case "GE":
		return b.closeWith(x12.GroupLoop, seg)
	case "IEA":
		return b.closeWith(x12.InterchangeLoop, seg)
	default:
		if len(b.stack) == 0 {
			return fmt.Errorf("%s segment outside an interchange", seg.Tag)
		}
		if b.inTransaction() {
			for _, rule := range b.rules {
				if !rule.matches(seg) {
					continue
				}
				parent := rule.Parent
				if parent == "" || !b.popTo(parent) {
					b.popTo(x12.TransactionLoop)
				}
				b.open(rule.Name, seg)
				return nil
			}
		}
		b.top().Append(seg)
	}
	return nil
}

func (b *builder) inTransaction() bool {
	for _, f := range b.stack {
		if f.loop.LoopName == x12.TransactionLoop {
			return true
		}
	}
	return false
}

func (p *X12Parser) parse(message string) (*x12.Loop, Delimiters, error) {
	delims, err := ReadDelimiters(message)
	if err != nil {
		return nil, Delimiters{}, err
	}
	b := &builder{root: x12.NewLoop(x12.RootLoop), rules: p.rules}
	for _, raw := range strings.Split(message, string(delims.Segment)) {
		line := strings.Trim(raw, " \t\r\n")
		if line == "" {
			continue
		}
		if err := b.add(p.parseSegment(line, delims)); err != nil {
			return nil, Delimiters{}, err
		}
	}
	return b.root, delims, nil
}

func (p *X12Parser) parseSegment(line string, delims Delimiters) *x12.Segment {
	parts := strings.Split(line, string(delims.Element))
	return &x12.Segment{
		Tag:       parts[0],
		Elements:  parts[1:],
		Separator: delims.Component,
	}
}
