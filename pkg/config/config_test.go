package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/facade/enums"
)

const yamlConfig = `
code_tables:
  claim_adjustment_reasons:
    effective: "2025-01-01"
    codes:
      "N1": "Local reason"
      "45": "Fee schedule"
parser:
  preset: "835"
  loop_rules:
    - name: "2105"
      trigger: "LQ"
      parent: "2110"
source:
  dedup: true
  dedup_max_keys: 500
sink:
  driver: postgres
  host: localhost
  port: 5432
  database: remit
  table: claim_adjustments
  auto_create: true
`

func TestDetectYAML(t *testing.T) {
	cfg, err := Detect(yamlConfig)
	require.NoError(t, err)
	assert.True(t, cfg.Source.Dedup)
	assert.Equal(t, 500, cfg.Source.DedupMaxKeys)
	require.NotNil(t, cfg.Sink)
	assert.Equal(t, 5432, cfg.Sink.Port)
	assert.True(t, cfg.Sink.AutoCreate)

	rules := cfg.LoopRules()
	require.Len(t, rules, 6)
	assert.Equal(t, "2105", rules[5].Name)
	assert.Equal(t, "2110", rules[5].Parent)
}

func TestDetectJSON(t *testing.T) {
	cfg, err := Detect(`{"parser": {"preset": "none"}, "source": {"dedup": false}}`)
	require.NoError(t, err)
	assert.Empty(t, cfg.LoopRules())
	assert.False(t, cfg.Source.Dedup)
	assert.Nil(t, cfg.Sink)
}

func TestDetectRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"empty":          "   ",
		"unknown preset": `{"parser": {"preset": "837"}}`,
		"rule name":      `{"parser": {"loop_rules": [{"trigger": "LX"}]}}`,
		"negative keys":  `{"source": {"dedup_max_keys": -1}}`,
		"bad date":       `{"code_tables": {"x": {"effective": "not a date", "codes": {}}}}`,
		"sink driver":    `{"sink": {"driver": "oracle", "table": "adj"}}`,
		"sink table":     `{"sink": {"driver": "postgres"}}`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Detect(input)
			assert.Error(t, err)
		})
	}
}

func TestRegistryOverrides(t *testing.T) {
	cfg, err := Detect(yamlConfig)
	require.NoError(t, err)
	registry := cfg.Registry()

	table, ok := registry.Table(enums.ClaimAdjustmentReasonsTable)
	require.True(t, ok)
	assert.Equal(t, "Local reason", table.Codes["N1"])
	assert.Equal(t, "Fee schedule", table.Codes["45"])
	assert.Equal(t, 2025, table.Effective.Year())
	assert.Equal(t, time.January, table.Effective.Month())

	bundled, _ := enums.Registry().Table(enums.ClaimAdjustmentReasonsTable)
	assert.NotContains(t, bundled.Codes, "N1")

	labeled := registry.Label(enums.ClaimAdjustmentReasonsTable, facade.Coded{Code: "N1"})
	assert.True(t, labeled.Labeled)
	assert.Equal(t, "Local reason", labeled.Label)
}

func TestNilConfigDefaults(t *testing.T) {
	var cfg *Config
	assert.Len(t, cfg.LoopRules(), 5)
	assert.NotEmpty(t, cfg.Registry().Names())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg.NewParser())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
