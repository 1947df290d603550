package parsers

import (
	"fmt"

	"github.com/oarkflow/json"
	"github.com/oarkflow/xid"

	"github.com/oarkflow/edi/pkg/x12"
)

// Document is a parsed interchange together with its declared delimiters.
type Document struct {
	ID         string     `json:"id"`
	Delimiters Delimiters `json:"delimiters"`
	Root       *x12.Loop  `json:"-"`
}

// ParseDocument parses the message and assigns the document an id.
func (p *X12Parser) ParseDocument(message string) (*Document, error) {
	root, delims, err := p.parse(message)
	if err != nil {
		return nil, err
	}
	return &Document{
		ID:         xid.New().String(),
		Delimiters: delims,
		Root:       root,
	}, nil
}

// Interchanges returns the ISA loops of the document in order.
func (d *Document) Interchanges() []*x12.Loop {
	return d.Root.Loops(x12.InterchangeLoop)
}

// JSON renders the raw tree with loops as {"loop", "children"} objects and
// segments as {"segment", "elements"} objects.
func (d *Document) JSON() ([]byte, error) {
	payload := map[string]any{
		"id":   d.ID,
		"tree": treeMap(d.Root),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal X12 JSON: %w", err)
	}
	return data, nil
}

func treeMap(node x12.Node) map[string]any {
	switch n := node.(type) {
	case *x12.Segment:
		elements := n.Elements
		if elements == nil {
			elements = []string{}
		}
		return map[string]any{"segment": n.Tag, "elements": elements}
	case *x12.Loop:
		children := make([]map[string]any, 0, len(n.Children))
		for _, child := range n.Children {
			children = append(children, treeMap(child))
		}
		return map[string]any{"loop": n.LoopName, "children": children}
	default:
		return nil
	}
}
