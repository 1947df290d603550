package transformers

import (
	"context"
	"fmt"
	"strings"

	"github.com/oarkflow/convert"
	"github.com/oarkflow/log"

	"github.com/oarkflow/edi/pkg/contracts"
	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/facade/common"
	"github.com/oarkflow/edi/pkg/parsers"
	"github.com/oarkflow/edi/pkg/utils"
)

// X12TransformerOptions controls how X12 transformations populate records.
type X12TransformerOptions struct {
	InputField          string
	OutputDocumentField string
	OutputJSONField     string
	OutputHeadersField  string
	SenderIDField       string
	ReceiverIDField     string
	ControlNumberField  string
	TransactionSetField string
	Parser              *parsers.X12Parser
	Logger              *log.Logger
}

// X12Transformer parses X12 payloads and exposes the identifying headers of
// the first interchange on the record.
type X12Transformer struct {
	parser *parsers.X12Parser
	opts   X12TransformerOptions
	logger *log.Logger
}

var _ contracts.Transformer = (*X12Transformer)(nil)

// NewX12Transformer builds a transformer with sane defaults.
func NewX12Transformer(opts X12TransformerOptions) *X12Transformer {
	if opts.InputField == "" {
		opts.InputField = "raw_message"
	}
	if opts.OutputDocumentField == "" {
		opts.OutputDocumentField = "x12_document"
	}
	if opts.OutputJSONField == "" {
		opts.OutputJSONField = "x12_json"
	}
	if opts.OutputHeadersField == "" {
		opts.OutputHeadersField = "x12_headers"
	}
	if opts.SenderIDField == "" {
		opts.SenderIDField = "x12_sender_id"
	}
	if opts.ReceiverIDField == "" {
		opts.ReceiverIDField = "x12_receiver_id"
	}
	if opts.ControlNumberField == "" {
		opts.ControlNumberField = "x12_control_number"
	}
	if opts.TransactionSetField == "" {
		opts.TransactionSetField = "x12_transaction_set"
	}
	parser := opts.Parser
	if parser == nil {
		parser = parsers.NewX12Parser()
	}
	logger := opts.Logger
	if logger == nil {
		logger = &log.DefaultLogger
	}
	return &X12Transformer{parser: parser, opts: opts, logger: logger}
}

// Name returns the human friendly transformer name.
func (t *X12Transformer) Name() string {
	return "X12Transformer"
}

// Transform parses the interchange stored in InputField and enriches the
// record with the document and its header fields.
func (t *X12Transformer) Transform(_ context.Context, rec utils.Record) (utils.Record, error) {
	rawValue, ok := rec[t.opts.InputField]
	if !ok {
		return rec, fmt.Errorf("x12 transformer: missing input field %s", t.opts.InputField)
	}
	rawMessage, ok := convert.ToString(rawValue)
	if !ok {
		return rec, fmt.Errorf("x12 transformer: input field %s is not text", t.opts.InputField)
	}
	if strings.TrimSpace(rawMessage) == "" {
		return rec, fmt.Errorf("x12 transformer: input field %s is empty", t.opts.InputField)
	}

	doc, err := t.parser.ParseDocument(rawMessage)
	if err != nil {
		return rec, fmt.Errorf("x12 transformer: %w", err)
	}
	rec[t.opts.OutputDocumentField] = doc

	data, err := doc.JSON()
	if err != nil {
		return rec, fmt.Errorf("x12 transformer: %w", err)
	}
	rec[t.opts.OutputJSONField] = string(data)

	interchanges := common.NewIdentifyingHeaders(doc.Root).Interchanges()
	if len(interchanges) == 0 {
		t.logger.Warn().Str("document", doc.ID).Msg("x12 transformer: document has no interchange")
		return rec, nil
	}
	isa := interchanges[0]
	headers, err := RenderHeaders(isa)
	if err != nil {
		return rec, fmt.Errorf("x12 transformer: %w", err)
	}
	rec[t.opts.OutputHeadersField] = headers

	if v, ok := isa.SenderID(); ok {
		rec[t.opts.SenderIDField] = v
	}
	if v, ok := isa.ReceiverID(); ok {
		rec[t.opts.ReceiverIDField] = v
	}
	if v, ok := isa.ControlNumber(); ok {
		rec[t.opts.ControlNumberField] = v
	}
	if gs := isa.FunctionalGroup; gs != nil && gs.TransactionSet != nil {
		if v, ok := gs.TransactionSet.IdentifierCode(); ok {
			rec[t.opts.TransactionSetField] = v
		}
	}
	return rec, nil
}

// RenderHeaders nests the group and transaction headers under the
// interchange fields as "functional_group" and "transaction_set".
func RenderHeaders(isa *common.InterchangeControlHeader) (map[string]any, error) {
	out, err := facade.Render(isa)
	if err != nil {
		return nil, err
	}
	gs := isa.FunctionalGroup
	if gs == nil {
		return out, nil
	}
	group, err := facade.Render(gs)
	if err != nil {
		return nil, err
	}
	if st := gs.TransactionSet; st != nil {
		set, err := facade.Render(st)
		if err != nil {
			return nil, err
		}
		group["transaction_set"] = set
	}
	out["functional_group"] = group
	return out, nil
}
