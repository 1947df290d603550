package sqladapter

import (
	"context"
	"fmt"
	"sort"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/oarkflow/log"
	"github.com/oarkflow/squealx"
	"github.com/oarkflow/squealx/connection"

	"github.com/oarkflow/edi/pkg/config"
	"github.com/oarkflow/edi/pkg/utils"
)

type column struct {
	name string
	kind string
}

// adjustmentColumns matches common.AdjustmentRow.Record.
var adjustmentColumns = []column{
	{"patient_control_number", "text"},
	{"payer_control_number", "text"},
	{"level", "text"},
	{"procedure_code", "text"},
	{"group_code", "text"},
	{"slot", "int"},
	{"reason_code", "text"},
	{"reason_label", "text"},
	{"amount", "decimal"},
	{"quantity", "text"},
}

var columnTypes = map[string]map[string]string{
	"mysql": {
		"text":    "VARCHAR(255)",
		"int":     "INT",
		"decimal": "DECIMAL(18,2)",
	},
	"postgres": {
		"text":    "TEXT",
		"int":     "INTEGER",
		"decimal": "NUMERIC(18,2)",
	},
}

// NormalizeDriver maps driver aliases to "mysql" or "postgres".
func NormalizeDriver(driver string) (string, error) {
	switch strings.ToLower(driver) {
	case "mysql", "mariadb":
		return "mysql", nil
	case "postgres", "postgresql", "pgx":
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported driver: %s", driver)
	}
}

// Loader writes claim adjustment rows into a SQL table.
type Loader struct {
	Db         *squealx.DB
	Table      string
	Driver     string
	AutoCreate bool
	created    bool
	logger     *log.Logger
}

// Open connects using the sink configuration.
func Open(cfg config.SinkConfig, logger *log.Logger) (*Loader, error) {
	driver, err := NormalizeDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db, _, err := connection.FromConfig(squealx.Config{
		Driver:      driver,
		Host:        cfg.Host,
		Port:        cfg.Port,
		Username:    cfg.Username,
		Password:    cfg.Password,
		Database:    cfg.Database,
		MaxIdleCons: cfg.MaxIdleConns,
		MaxOpenCons: cfg.MaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("sql sink: %w", err)
	}
	l := NewLoader(db, driver, cfg.Table, cfg.AutoCreate)
	if logger != nil {
		l.logger = logger
	}
	return l, nil
}

// NewLoader wraps an open connection.
func NewLoader(db *squealx.DB, driver, table string, autoCreate bool) *Loader {
	return &Loader{Db: db, Table: table, Driver: driver, AutoCreate: autoCreate, logger: &log.DefaultLogger}
}

// Setup creates the destination table when AutoCreate is set.
func (l *Loader) Setup(ctx context.Context) error {
	if !l.AutoCreate || l.created {
		return nil
	}
	stmt, err := CreateTableStatement(l.Driver, l.Table)
	if err != nil {
		return err
	}
	if _, err := l.Db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("create table %s: %w", l.Table, err)
	}
	l.created = true
	l.logger.Info().Str("table", l.Table).Str("driver", l.Driver).Msg("adjustment table ready")
	return nil
}

// StoreBatch inserts the batch with one named statement built from the keys
// of the first record.
func (l *Loader) StoreBatch(ctx context.Context, batch []utils.Record) error {
	if len(batch) == 0 {
		return nil
	}
	if err := l.Setup(ctx); err != nil {
		return err
	}
	q := InsertStatement(l.Table, batch[0])
	if _, err := l.Db.NamedExec(q, batch); err != nil {
		return fmt.Errorf("insert into %s: %w", l.Table, err)
	}
	l.logger.Info().Str("table", l.Table).Int("rows", len(batch)).Msg("adjustment rows stored")
	return nil
}

func (l *Loader) Close() error {
	return l.Db.Close()
}

// CreateTableStatement returns the DDL of the adjustment table.
func CreateTableStatement(driver, table string) (string, error) {
	driver, err := NormalizeDriver(driver)
	if err != nil {
		return "", err
	}
	types := columnTypes[driver]
	columns := make([]string, 0, len(adjustmentColumns))
	for _, c := range adjustmentColumns {
		columns = append(columns, fmt.Sprintf("%s %s", c.name, types[c.kind]))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(columns, ", ")), nil
}

// InsertStatement builds a named INSERT over the sorted keys of rec.
func InsertStatement(table string, rec utils.Record) string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	placeholders := make([]string, len(keys))
	for i, k := range keys {
		placeholders[i] = ":" + k
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(keys, ", "), strings.Join(placeholders, ", "))
}
