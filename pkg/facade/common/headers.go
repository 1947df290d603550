package common

import (
	"github.com/golang-sql/civil"

	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/x12"
)

var (
	isaAuthorizationInformationQualifier = facade.Text("authorization_information_qualifier", facade.At("ISA", 1))
	isaAuthorizationInformation          = facade.Bind("authorization_information", facade.At("ISA", 2), facade.Trimmed)
	isaSecurityInformationQualifier      = facade.Text("security_information_qualifier", facade.At("ISA", 3))
	isaSecurityInformation               = facade.Bind("security_information", facade.At("ISA", 4), facade.Trimmed)
	isaSenderIDQualifier                 = facade.Text("interchange_sender_id_qualifier", facade.At("ISA", 5))
	isaSenderID                          = facade.Bind("interchange_sender_id", facade.At("ISA", 6), facade.Trimmed)
	isaReceiverIDQualifier               = facade.Text("interchange_receiver_id_qualifier", facade.At("ISA", 7))
	isaReceiverID                        = facade.Bind("interchange_receiver_id", facade.At("ISA", 8), facade.Trimmed)
	isaInterchangeDate                   = facade.Bind("interchange_date", facade.At("ISA", 9), facade.D6)
	isaInterchangeTime                   = facade.Bind("interchange_time", facade.At("ISA", 10), facade.TM)
	isaControlStandardsID                = facade.Text("interchange_control_standards_id", facade.At("ISA", 11))
	isaControlVersionNumber              = facade.Text("interchange_control_version_number", facade.At("ISA", 12))
	isaControlNumber                     = facade.Text("interchange_control_number", facade.At("ISA", 13))
	isaAcknowledgementRequested          = facade.Text("acknowledgement_requested", facade.At("ISA", 14))
	isaTestIndicator                     = facade.Text("test_indicator", facade.At("ISA", 15))
	isaSubelementSeparator               = facade.Text("subelement_separator", facade.At("ISA", 16))

	interchangeSchema = facade.Schema{
		isaAuthorizationInformationQualifier, isaAuthorizationInformation,
		isaSecurityInformationQualifier, isaSecurityInformation,
		isaSenderIDQualifier, isaSenderID,
		isaReceiverIDQualifier, isaReceiverID,
		isaInterchangeDate, isaInterchangeTime,
		isaControlStandardsID, isaControlVersionNumber, isaControlNumber,
		isaAcknowledgementRequested, isaTestIndicator, isaSubelementSeparator,
	}
)

// InterchangeControlHeader reads the ISA segment and links to the first
// functional group of the interchange.
type InterchangeControlHeader struct {
	facade.LoopBridge
	// FunctionalGroup is nil when the interchange holds no GS loop.
	FunctionalGroup *FunctionalGroupHeader
}

func NewInterchangeControlHeader(loop *x12.Loop) *InterchangeControlHeader {
	h := &InterchangeControlHeader{LoopBridge: facade.NewLoopBridge(loop)}
	if gs, ok := facade.First(h, x12.GroupLoop, NewFunctionalGroupHeader); ok {
		h.FunctionalGroup = gs
	}
	return h
}

func (h *InterchangeControlHeader) Schema() facade.Schema { return interchangeSchema }

func (h *InterchangeControlHeader) AuthorizationInformationQualifier() (string, bool) {
	return isaAuthorizationInformationQualifier.Get(h)
}

func (h *InterchangeControlHeader) AuthorizationInformation() (string, bool) {
	v, ok, _ := isaAuthorizationInformation.Get(h)
	return v, ok
}

func (h *InterchangeControlHeader) SecurityInformationQualifier() (string, bool) {
	return isaSecurityInformationQualifier.Get(h)
}

func (h *InterchangeControlHeader) SecurityInformation() (string, bool) {
	v, ok, _ := isaSecurityInformation.Get(h)
	return v, ok
}

func (h *InterchangeControlHeader) SenderIDQualifier() (string, bool) {
	return isaSenderIDQualifier.Get(h)
}

// SenderID is ISA06 without its space padding.
func (h *InterchangeControlHeader) SenderID() (string, bool) {
	v, ok, _ := isaSenderID.Get(h)
	return v, ok
}

func (h *InterchangeControlHeader) ReceiverIDQualifier() (string, bool) {
	return isaReceiverIDQualifier.Get(h)
}

// ReceiverID is ISA08 without its space padding.
func (h *InterchangeControlHeader) ReceiverID() (string, bool) {
	v, ok, _ := isaReceiverID.Get(h)
	return v, ok
}

func (h *InterchangeControlHeader) InterchangeDate() (civil.Date, bool, error) {
	return isaInterchangeDate.Get(h)
}

func (h *InterchangeControlHeader) InterchangeTime() (civil.Time, bool, error) {
	return isaInterchangeTime.Get(h)
}

func (h *InterchangeControlHeader) ControlStandardsID() (string, bool) {
	return isaControlStandardsID.Get(h)
}

func (h *InterchangeControlHeader) ControlVersionNumber() (string, bool) {
	return isaControlVersionNumber.Get(h)
}

func (h *InterchangeControlHeader) ControlNumber() (string, bool) {
	return isaControlNumber.Get(h)
}

func (h *InterchangeControlHeader) AcknowledgementRequested() (string, bool) {
	return isaAcknowledgementRequested.Get(h)
}

func (h *InterchangeControlHeader) TestIndicator() (string, bool) {
	return isaTestIndicator.Get(h)
}

func (h *InterchangeControlHeader) SubelementSeparator() (string, bool) {
	return isaSubelementSeparator.Get(h)
}

var (
	gsFunctionalIDCode        = facade.Text("functional_id_code", facade.At("GS", 1))
	gsApplicationSenderCode   = facade.Text("application_sender_code", facade.At("GS", 2))
	gsApplicationReceiverCode = facade.Text("application_receiver_code", facade.At("GS", 3))
	gsDate                    = facade.Bind("date", facade.At("GS", 4), facade.D8)
	gsTime                    = facade.Bind("time", facade.At("GS", 5), facade.TM)
	gsGroupControlNumber      = facade.Text("group_control_number", facade.At("GS", 6))
	gsResponsibleAgencyCode   = facade.Text("responsible_agency_code", facade.At("GS", 7))
	gsVersionIndicatorCode    = facade.Text("version_indicator_code", facade.At("GS", 8))

	groupSchema = facade.Schema{
		gsFunctionalIDCode, gsApplicationSenderCode, gsApplicationReceiverCode,
		gsDate, gsTime, gsGroupControlNumber, gsResponsibleAgencyCode, gsVersionIndicatorCode,
	}
)

// FunctionalGroupHeader reads the GS segment and links to the first
// transaction set of the group.
type FunctionalGroupHeader struct {
	facade.LoopBridge
	// TransactionSet is nil when the group holds no ST loop.
	TransactionSet *TransactionSetHeader
}

func NewFunctionalGroupHeader(loop *x12.Loop) *FunctionalGroupHeader {
	h := &FunctionalGroupHeader{LoopBridge: facade.NewLoopBridge(loop)}
	if st, ok := facade.First(h, x12.TransactionLoop, NewTransactionSetHeader); ok {
		h.TransactionSet = st
	}
	return h
}

func (h *FunctionalGroupHeader) Schema() facade.Schema { return groupSchema }

func (h *FunctionalGroupHeader) FunctionalIDCode() (string, bool) {
	return gsFunctionalIDCode.Get(h)
}

func (h *FunctionalGroupHeader) ApplicationSenderCode() (string, bool) {
	return gsApplicationSenderCode.Get(h)
}

func (h *FunctionalGroupHeader) ApplicationReceiverCode() (string, bool) {
	return gsApplicationReceiverCode.Get(h)
}

func (h *FunctionalGroupHeader) Date() (civil.Date, bool, error) {
	return gsDate.Get(h)
}

func (h *FunctionalGroupHeader) Time() (civil.Time, bool, error) {
	return gsTime.Get(h)
}

func (h *FunctionalGroupHeader) GroupControlNumber() (string, bool) {
	return gsGroupControlNumber.Get(h)
}

func (h *FunctionalGroupHeader) ResponsibleAgencyCode() (string, bool) {
	return gsResponsibleAgencyCode.Get(h)
}

func (h *FunctionalGroupHeader) VersionIndicatorCode() (string, bool) {
	return gsVersionIndicatorCode.Get(h)
}

var (
	stTransactionSetIdentifierCode = facade.Text("transaction_set_identifier_code", facade.At("ST", 1))
	stTransactionSetControlNumber  = facade.Text("transaction_set_control_number", facade.At("ST", 2))

	transactionSchema = facade.Schema{stTransactionSetIdentifierCode, stTransactionSetControlNumber}
)

// TransactionSetHeader reads the ST segment.
type TransactionSetHeader struct {
	facade.LoopBridge
}

func NewTransactionSetHeader(loop *x12.Loop) *TransactionSetHeader {
	return &TransactionSetHeader{LoopBridge: facade.NewLoopBridge(loop)}
}

func (h *TransactionSetHeader) Schema() facade.Schema { return transactionSchema }

func (h *TransactionSetHeader) IdentifierCode() (string, bool) {
	return stTransactionSetIdentifierCode.Get(h)
}

func (h *TransactionSetHeader) ControlNumber() (string, bool) {
	return stTransactionSetControlNumber.Get(h)
}

// IdentifyingHeaders is the entry point over a parsed message. With one or
// more ISA loops below the given loop it holds one IdentifyingHeaders per
// interchange in Facades; otherwise InterchangeControl reads the ISA segment
// of the loop itself.
type IdentifyingHeaders struct {
	Facades            []*IdentifyingHeaders
	InterchangeControl *InterchangeControlHeader
}

func NewIdentifyingHeaders(loop *x12.Loop) *IdentifyingHeaders {
	bridge := facade.NewLoopBridge(loop)
	if len(bridge.Descendants(x12.InterchangeLoop)) > 0 {
		return &IdentifyingHeaders{Facades: facade.Each(bridge, x12.InterchangeLoop, NewIdentifyingHeaders)}
	}
	return &IdentifyingHeaders{InterchangeControl: NewInterchangeControlHeader(loop)}
}

// Interchanges flattens the tree of identifying headers in document order.
func (h *IdentifyingHeaders) Interchanges() []*InterchangeControlHeader {
	if h.InterchangeControl != nil {
		return []*InterchangeControlHeader{h.InterchangeControl}
	}
	var out []*InterchangeControlHeader
	for _, f := range h.Facades {
		out = append(out, f.Interchanges()...)
	}
	return out
}
