package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/oarkflow/json"
	"github.com/oarkflow/log"
	"github.com/urfave/cli/v2"

	"github.com/oarkflow/edi/pkg/adapters/sqladapter"
	"github.com/oarkflow/edi/pkg/adapters/x12adapter"
	"github.com/oarkflow/edi/pkg/config"
	"github.com/oarkflow/edi/pkg/facade/common"
	"github.com/oarkflow/edi/pkg/parsers"
	"github.com/oarkflow/edi/pkg/server"
	"github.com/oarkflow/edi/pkg/transformers"
	"github.com/oarkflow/edi/pkg/utils"
	"github.com/oarkflow/edi/pkg/utils/fileutil"
)

var version = "dev"

var logger = &log.DefaultLogger

func main() {
	app := &cli.App{
		Name:    "edi",
		Usage:   "Read X12 health care interchanges through typed facades",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a configuration file (JSON, YAML, or BCL)",
				EnvVars: []string{"EDI_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "inspect",
				Usage:  "Print the identifying headers of every interchange as JSON",
				Flags:  []cli.Flag{fileFlag(), whereFlag(), outFlag()},
				Action: runInspect,
			},
			{
				Name:  "adjustments",
				Usage: "Print the claim adjustment rows of every 835 claim payment",
				Flags: []cli.Flag{
					fileFlag(), whereFlag(), outFlag(),
					&cli.BoolFlag{
						Name:  "load",
						Usage: "Insert the rows into the SQL sink from the configuration",
					},
				},
				Action: runAdjustments,
			},
			{
				Name:  "serve",
				Usage: "Serve the inspect and adjustments views over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Value:   ":8080",
						Usage:   "Listen address",
						EnvVars: []string{"EDI_ADDR"},
					},
				},
				Action: runServe,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("edi failed")
		os.Exit(1)
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "Path to the X12 file",
		Required: true,
	}
}

func whereFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "where",
		Aliases: []string{"w"},
		Usage:   `Keep only records matching an expression, e.g. 'group_code == "CO"'`,
	}
}

func outFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "Append results to a JSON array file instead of printing them",
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("path", path).Int("code_tables", len(cfg.CodeTables)).Msg("configuration loaded")
	return cfg, nil
}

// interchanges streams the raw interchanges of the file through fn.
func interchanges(ctx context.Context, c *cli.Context, cfg *config.Config, fn func(utils.Record) error) error {
	var opts []x12adapter.FileSourceOption
	opts = append(opts, x12adapter.WithLogger(logger))
	if cfg.Source.Dedup {
		opts = append(opts, x12adapter.WithDedup(cfg.Source.DedupMaxKeys))
	}
	source := x12adapter.NewFileSource(c.String("file"), opts...)
	if err := source.Setup(ctx); err != nil {
		return err
	}
	defer source.Close()

	records, err := source.Extract(ctx)
	if err != nil {
		return err
	}
	count := 0
	for rec := range records {
		if err := fn(rec); err != nil {
			return err
		}
		count++
	}
	logger.Info().Str("path", c.String("file")).Int("interchanges", count).Msg("file processed")
	return ctx.Err()
}

// output writes records as JSON lines, or into the --out file.
type output struct {
	w      io.Writer
	filter *transformers.FilterTransformer
	file   *fileutil.JSONAppender[utils.Record]
}

func newOutput(c *cli.Context) (*output, error) {
	o := &output{w: c.App.Writer}
	if where := c.String("where"); where != "" {
		filter, err := transformers.NewFilterTransformer("where", where)
		if err != nil {
			return nil, err
		}
		o.filter = filter
	}
	if path := c.String("out"); path != "" {
		file, err := fileutil.NewJSONAppender[utils.Record](path, false)
		if err != nil {
			return nil, err
		}
		o.file = file
	}
	return o, nil
}

// keep applies the --where filter.
func (o *output) keep(ctx context.Context, rec utils.Record) (bool, error) {
	if o.filter == nil {
		return true, nil
	}
	out, err := o.filter.Transform(ctx, rec)
	return out != nil, err
}

func (o *output) write(rec utils.Record) error {
	if o.file != nil {
		return o.file.Append(rec)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(o.w, string(data))
	return err
}

func (o *output) Close() error {
	if o.file == nil {
		return nil
	}
	logger.Info().Str("path", o.file.Path()).Msg("results appended")
	return o.file.Close()
}

func runInspect(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	out, err := newOutput(c)
	if err != nil {
		return err
	}
	defer out.Close()

	transformer := transformers.NewX12Transformer(transformers.X12TransformerOptions{
		Parser: cfg.NewParser(),
		Logger: logger,
	})
	return interchanges(ctx, c, cfg, func(rec utils.Record) error {
		rec, err := transformer.Transform(ctx, rec)
		if err != nil {
			return err
		}
		ok, err := out.keep(ctx, rec)
		if err != nil || !ok {
			return err
		}
		doc := rec["x12_document"].(*parsers.Document)
		return out.write(utils.Record{
			"document_id": doc.ID,
			"sequence":    rec[x12adapter.FieldSequence],
			"headers":     rec["x12_headers"],
		})
	})
}

func runAdjustments(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	out, err := newOutput(c)
	if err != nil {
		return err
	}
	defer out.Close()

	var sink *sqladapter.Loader
	if c.Bool("load") {
		if cfg.Sink == nil {
			return fmt.Errorf("--load needs a sink section in the configuration")
		}
		sink, err = sqladapter.Open(*cfg.Sink, logger)
		if err != nil {
			return err
		}
		defer sink.Close()
	}

	parser := cfg.NewParser()
	registry := cfg.Registry()
	return interchanges(ctx, c, cfg, func(rec utils.Record) error {
		raw, err := utils.Lookup(rec, x12adapter.FieldRawMessage)
		if err != nil {
			return err
		}
		root, err := parser.ParseString(raw.(string))
		if err != nil {
			return err
		}
		rows, err := common.RemittanceRows(root, registry)
		if err != nil {
			return err
		}
		var batch []utils.Record
		for _, row := range rows {
			rowRec := utils.Record(row.Record())
			ok, err := out.keep(ctx, rowRec)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			batch = append(batch, rowRec)
			if err := out.write(rowRec); err != nil {
				return err
			}
		}
		if sink != nil {
			return sink.StoreBatch(ctx, batch)
		}
		return nil
	})
}

func runServe(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	srv := server.NewServer(server.Config{
		Version:  version,
		Parser:   cfg.NewParser(),
		Registry: cfg.Registry(),
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(c.String("addr"))
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return srv.Shutdown()
	}
}
