package common

import (
	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/facade/enums"
	"github.com/oarkflow/edi/pkg/x12"
)

var (
	refQualifier   = facade.Bind("reference_id_qualifier", facade.At("REF", 1), facade.Enum(enums.ReferenceIDQualifier))
	refID          = facade.Text("reference_id", facade.At("REF", 2))
	refDescription = facade.Text("description", facade.At("REF", 3))

	referenceSchema = facade.Schema{refQualifier, refID, refDescription}
)

// ReferenceID reads a REF segment.
type ReferenceID struct {
	facade.LoopBridge
}

func NewReferenceID(loop *x12.Loop) *ReferenceID {
	return &ReferenceID{LoopBridge: facade.NewLoopBridge(loop)}
}

func (r *ReferenceID) Schema() facade.Schema { return referenceSchema }

func (r *ReferenceID) Qualifier() (facade.Coded, bool, error) { return refQualifier.Get(r) }

func (r *ReferenceID) ID() (string, bool) { return refID.Get(r) }

func (r *ReferenceID) Description() (string, bool) { return refDescription.Get(r) }

// ReferenceIDs returns one ReferenceID per REF segment directly in loop.
func ReferenceIDs(loop *x12.Loop) []*ReferenceID {
	return facade.EachSegment(facade.NewLoopBridge(loop), "REF", NewReferenceID)
}
