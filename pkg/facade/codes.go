package facade

import (
	"maps"
	"sort"
	"time"
)

// CodeTable maps a raw code to its human label.
type CodeTable map[string]string

// Coded is a decoded qualifier value. Labeled is false when the code was
// passed through by a permissive binding without a table entry.
type Coded struct {
	Code    string `json:"code"`
	Label   string `json:"label,omitempty"`
	Labeled bool   `json:"-"`
}

func (c Coded) String() string {
	if !c.Labeled {
		return c.Code
	}
	return c.Code + " (" + c.Label + ")"
}

type enumConfig struct {
	rawUnknowns bool
}

// EnumOption tunes an Enum decoder.
type EnumOption func(*enumConfig)

// RawUnknowns makes codes missing from the table decode to an unlabeled
// Coded instead of failing with UnknownCode.
func RawUnknowns() EnumOption {
	return func(c *enumConfig) {
		c.rawUnknowns = true
	}
}

// Enum returns a decoder resolving codes against table.
func Enum(table CodeTable, opts ...EnumOption) Decoder[Coded] {
	var cfg enumConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(raw string) (Coded, error) {
		if label, ok := table[raw]; ok {
			return Coded{Code: raw, Label: label, Labeled: true}, nil
		}
		if cfg.rawUnknowns {
			return Coded{Code: raw}, nil
		}
		return Coded{}, decodeFailure(UnknownCode, raw)
	}
}

// NamedTable is a code table with the date its codes took effect.
type NamedTable struct {
	Name      string
	Effective time.Time
	Codes     CodeTable
}

// Registry is an immutable set of named code tables.
type Registry struct {
	tables map[string]NamedTable
}

// NewRegistry builds a registry; later tables with the same name win.
func NewRegistry(tables ...NamedTable) *Registry {
	r := &Registry{tables: make(map[string]NamedTable, len(tables))}
	for _, t := range tables {
		t.Codes = maps.Clone(t.Codes)
		r.tables[t.Name] = t
	}
	return r
}

// With returns a new registry where each override's codes are layered over
// the existing table of the same name.
func (r *Registry) With(overrides ...NamedTable) *Registry {
	merged := make([]NamedTable, 0, len(r.tables)+len(overrides))
	for _, t := range r.tables {
		merged = append(merged, t)
	}
	next := NewRegistry(merged...)
	for _, o := range overrides {
		base, ok := next.tables[o.Name]
		if !ok {
			next.tables[o.Name] = NamedTable{Name: o.Name, Effective: o.Effective, Codes: maps.Clone(o.Codes)}
			continue
		}
		codes := maps.Clone(base.Codes)
		if codes == nil {
			codes = CodeTable{}
		}
		maps.Copy(codes, o.Codes)
		base.Codes = codes
		if !o.Effective.IsZero() {
			base.Effective = o.Effective
		}
		next.tables[o.Name] = base
	}
	return next
}

// Table returns the named table.
func (r *Registry) Table(name string) (NamedTable, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// Names lists the registered tables in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Label fills in the label of an unlabeled Coded from the named table. A
// Coded that already carries a label is returned unchanged.
func (r *Registry) Label(table string, c Coded) Coded {
	if c.Labeled {
		return c
	}
	t, ok := r.tables[table]
	if !ok {
		return c
	}
	if label, ok := t.Codes[c.Code]; ok {
		c.Label, c.Labeled = label, true
	}
	return c
}
