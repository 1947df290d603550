package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/oarkflow/log"

	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/facade/common"
	"github.com/oarkflow/edi/pkg/facade/enums"
	"github.com/oarkflow/edi/pkg/parsers"
	"github.com/oarkflow/edi/pkg/transformers"
)

type Config struct {
	Version  string
	Parser   *parsers.X12Parser
	Registry *facade.Registry
	Logger   *log.Logger
}

// Server exposes the facades over HTTP. Every endpoint takes the raw
// interchange text as the request body.
type Server struct {
	app    *fiber.App
	config Config
}

type InspectResponse struct {
	DocumentID   string            `json:"document_id"`
	Delimiters   map[string]string `json:"delimiters"`
	Interchanges []map[string]any  `json:"interchanges"`
}

type AdjustmentsResponse struct {
	DocumentID string                 `json:"document_id"`
	Filter     string                 `json:"filter,omitempty"`
	Rows       []common.AdjustmentRow `json:"rows"`
	RowCount   int                    `json:"rowCount"`
}

func NewServer(cfg Config) *Server {
	if cfg.Parser == nil {
		cfg.Parser = parsers.NewX12Parser()
	}
	if cfg.Registry == nil {
		cfg.Registry = enums.Registry()
	}
	if cfg.Logger == nil {
		cfg.Logger = &log.DefaultLogger
	}
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})
	s := &Server{app: app, config: cfg}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.app.Use(cors.New())
	s.app.Use(s.requestLogger)

	s.app.Get("/api/health", s.healthHandler)
	s.app.Post("/api/inspect", s.inspectHandler)
	s.app.Post("/api/tree", s.treeHandler)
	s.app.Post("/api/adjustments", s.adjustmentsHandler)
}

func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.config.Logger.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Str("duration", time.Since(start).String()).
		Msg("request")
	return err
}

func (s *Server) healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"version":   s.config.Version,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) parse(c *fiber.Ctx) (*parsers.Document, error) {
	body := string(c.Body())
	if strings.TrimSpace(body) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "request body must hold an X12 interchange")
	}
	if _, ok := parsers.Detect(c.Body()); !ok {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "request body is not an X12 interchange")
	}
	doc, err := s.config.Parser.ParseDocument(body)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	return doc, nil
}

func (s *Server) inspectHandler(c *fiber.Ctx) error {
	doc, err := s.parse(c)
	if err != nil {
		return err
	}
	resp := InspectResponse{
		DocumentID: doc.ID,
		Delimiters: map[string]string{
			"element":   string(doc.Delimiters.Element),
			"component": string(doc.Delimiters.Component),
			"segment":   string(doc.Delimiters.Segment),
		},
		Interchanges: []map[string]any{},
	}
	for _, isa := range common.NewIdentifyingHeaders(doc.Root).Interchanges() {
		headers, err := transformers.RenderHeaders(isa)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		resp.Interchanges = append(resp.Interchanges, headers)
	}
	return c.JSON(resp)
}

func (s *Server) treeHandler(c *fiber.Ctx) error {
	doc, err := s.parse(c)
	if err != nil {
		return err
	}
	data, err := doc.JSON()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// adjustmentsHandler returns the claim adjustment rows of every 835 in the
// body. The optional "where" query parameter filters rows by expression.
func (s *Server) adjustmentsHandler(c *fiber.Ctx) error {
	doc, err := s.parse(c)
	if err != nil {
		return err
	}
	rows, err := common.RemittanceRows(doc.Root, s.config.Registry)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	where := c.Query("where")
	if where != "" {
		filter, err := transformers.NewFilterTransformer("where", where)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		kept := rows[:0]
		for _, row := range rows {
			rec, err := filter.Transform(c.UserContext(), row.Record())
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			if rec != nil {
				kept = append(kept, row)
			}
		}
		rows = kept
	}
	if rows == nil {
		rows = []common.AdjustmentRow{}
	}
	return c.JSON(AdjustmentsResponse{
		DocumentID: doc.ID,
		Filter:     where,
		Rows:       rows,
		RowCount:   len(rows),
	})
}

func (s *Server) Start(addr string) error {
	s.config.Logger.Info().Str("addr", addr).Msg("edi server listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	s.config.Logger.Info().Msg("edi server shutting down")
	return s.app.Shutdown()
}
