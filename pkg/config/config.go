package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/oarkflow/bcl"
	"github.com/oarkflow/date"
	"github.com/oarkflow/errors"
	"github.com/oarkflow/json"
	"gopkg.in/yaml.v3"

	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/facade/enums"
	"github.com/oarkflow/edi/pkg/parsers"
)

// CodeTableConfig overrides or extends one bundled code table.
type CodeTableConfig struct {
	Effective string            `json:"effective,omitempty" yaml:"effective,omitempty"`
	Codes     map[string]string `json:"codes" yaml:"codes"`
}

// LoopRuleConfig declares a transaction loop for the tokenizer.
type LoopRuleConfig struct {
	Name      string `json:"name" yaml:"name"`
	Trigger   string `json:"trigger" yaml:"trigger"`
	Qualifier string `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`
	Parent    string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// ParserConfig tunes the tokenizer.
type ParserConfig struct {
	// Preset selects bundled loop rules: "835" (default) or "none".
	Preset    string           `json:"preset,omitempty" yaml:"preset,omitempty"`
	LoopRules []LoopRuleConfig `json:"loop_rules,omitempty" yaml:"loop_rules,omitempty"`
}

// SourceConfig tunes the interchange file source.
type SourceConfig struct {
	Dedup        bool `json:"dedup" yaml:"dedup"`
	DedupMaxKeys int  `json:"dedup_max_keys,omitempty" yaml:"dedup_max_keys,omitempty"`
}

// SinkConfig is the SQL database that receives claim adjustment rows.
type SinkConfig struct {
	Driver       string `json:"driver" yaml:"driver"`
	Host         string `json:"host" yaml:"host"`
	Port         int    `json:"port" yaml:"port"`
	Username     string `json:"username" yaml:"username"`
	Password     string `json:"password" yaml:"password"`
	Database     string `json:"database" yaml:"database"`
	Table        string `json:"table" yaml:"table"`
	AutoCreate   bool   `json:"auto_create" yaml:"auto_create"`
	MaxOpenConns int    `json:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	MaxIdleConns int    `json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
}

type Config struct {
	CodeTables map[string]CodeTableConfig `json:"code_tables" yaml:"code_tables"`
	Parser     ParserConfig               `json:"parser" yaml:"parser"`
	Source     SourceConfig               `json:"source" yaml:"source"`
	Sink       *SinkConfig                `json:"sink,omitempty" yaml:"sink,omitempty"`
}

// Load reads a JSON, YAML or BCL configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Detect(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Detect parses input as JSON, then YAML, then BCL, and validates the result.
func Detect(input string) (*Config, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, errors.New("empty configuration")
	}
	var cfg Config
	switch {
	case json.Unmarshal([]byte(trimmed), &cfg) == nil:
	case yaml.Unmarshal([]byte(trimmed), &cfg) == nil:
	default:
		cfg = Config{}
		if _, err := bcl.Unmarshal([]byte(trimmed), &cfg); err != nil {
			return nil, errors.New("unable to detect config format, please provide valid JSON, YAML, or BCL")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks loop rules, effective dates and the sink.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Parser.Preset) {
	case "", "835", "none":
	default:
		return fmt.Errorf("unknown parser preset %q", c.Parser.Preset)
	}
	for i, rule := range c.Parser.LoopRules {
		if rule.Name == "" || rule.Trigger == "" {
			return fmt.Errorf("loop rule %d: name and trigger are required", i)
		}
	}
	for name, table := range c.CodeTables {
		if _, err := parseEffective(table.Effective); err != nil {
			return fmt.Errorf("code table %s: %w", name, err)
		}
	}
	if c.Source.DedupMaxKeys < 0 {
		return errors.New("source.dedup_max_keys must not be negative")
	}
	if c.Sink != nil {
		switch strings.ToLower(c.Sink.Driver) {
		case "mysql", "mariadb", "postgres", "postgresql", "pgx":
		default:
			return fmt.Errorf("unsupported sink driver %q", c.Sink.Driver)
		}
		if c.Sink.Table == "" {
			return errors.New("sink.table is required")
		}
	}
	return nil
}

func parseEffective(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	t, err := date.Parse(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid effective date %q: %w", value, err)
	}
	return t, nil
}

// Registry layers the configured code tables over the bundled ones.
func (c *Config) Registry() *facade.Registry {
	base := enums.Registry()
	if c == nil || len(c.CodeTables) == 0 {
		return base
	}
	overrides := make([]facade.NamedTable, 0, len(c.CodeTables))
	for name, table := range c.CodeTables {
		// Validate has already rejected unparsable dates.
		effective, _ := parseEffective(table.Effective)
		overrides = append(overrides, facade.NamedTable{
			Name:      name,
			Effective: effective,
			Codes:     facade.CodeTable(table.Codes),
		})
	}
	return base.With(overrides...)
}

// LoopRules returns the preset rules followed by the configured ones.
func (c *Config) LoopRules() []parsers.LoopRule {
	var rules []parsers.LoopRule
	if c == nil || !strings.EqualFold(c.Parser.Preset, "none") {
		rules = append(rules, parsers.Remittance835Rules...)
	}
	if c == nil {
		return rules
	}
	for _, r := range c.Parser.LoopRules {
		rules = append(rules, parsers.LoopRule{
			Name:      r.Name,
			Trigger:   r.Trigger,
			Qualifier: r.Qualifier,
			Parent:    r.Parent,
		})
	}
	return rules
}

// NewParser builds a tokenizer with the configured loop rules.
func (c *Config) NewParser() *parsers.X12Parser {
	return parsers.NewX12Parser(parsers.WithLoopRules(c.LoopRules()...))
}
