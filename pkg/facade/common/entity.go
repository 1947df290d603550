package common

import (
	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/facade/enums"
	"github.com/oarkflow/edi/pkg/x12"
)

var (
	nm1EntityIdentifier = facade.Bind("entity_identifier", facade.At("NM1", 1), facade.Enum(enums.EntityIdentifier))
	nm1EntityType       = facade.Bind("entity_type", facade.At("NM1", 2), facade.Enum(enums.EntityType))
	nm1LastName         = facade.Text("last_name", facade.At("NM1", 3))
	nm1OrgName          = facade.Text("org_name", facade.At("NM1", 3))
	nm1FirstName        = facade.Text("first_name", facade.At("NM1", 4))
	nm1MiddleInitial    = facade.Text("middle_initial", facade.At("NM1", 5))
	nm1Suffix           = facade.Text("suffix", facade.At("NM1", 7))
	nm1IDCodeQualifier  = facade.Bind("id_code_qual", facade.At("NM1", 8), facade.Enum(enums.IDCodeQualifier))
	nm1IDCode           = facade.Text("id_code", facade.At("NM1", 9))

	entitySchema = facade.Schema{
		nm1EntityIdentifier, nm1EntityType,
		nm1LastName, nm1OrgName, nm1FirstName, nm1MiddleInitial, nm1Suffix,
		nm1IDCodeQualifier, nm1IDCode,
	}
)

// NamedEntity reads an NM1 segment and the contact segments of its loop.
type NamedEntity struct {
	facade.LoopBridge
	Qualifier      string
	ContactDetails *ContactDetails
}

// NewNamedEntity wraps loop; qualifier records which party the caller
// expects (for example "QC") and may be empty.
func NewNamedEntity(loop *x12.Loop, qualifier string) *NamedEntity {
	return &NamedEntity{
		LoopBridge:     facade.NewLoopBridge(loop),
		Qualifier:      qualifier,
		ContactDetails: NewContactDetails(loop),
	}
}

func (e *NamedEntity) Schema() facade.Schema { return entitySchema }

func (e *NamedEntity) EntityIdentifier() (facade.Coded, bool, error) {
	return nm1EntityIdentifier.Get(e)
}

func (e *NamedEntity) EntityType() (facade.Coded, bool, error) {
	return nm1EntityType.Get(e)
}

func (e *NamedEntity) LastName() (string, bool) { return nm1LastName.Get(e) }

func (e *NamedEntity) OrgName() (string, bool) { return nm1OrgName.Get(e) }

func (e *NamedEntity) FirstName() (string, bool) { return nm1FirstName.Get(e) }

func (e *NamedEntity) MiddleInitial() (string, bool) { return nm1MiddleInitial.Get(e) }

func (e *NamedEntity) Suffix() (string, bool) { return nm1Suffix.Get(e) }

func (e *NamedEntity) IDCodeQualifier() (facade.Coded, bool, error) {
	return nm1IDCodeQualifier.Get(e)
}

func (e *NamedEntity) IDCode() (string, bool) { return nm1IDCode.Get(e) }

// IsPerson reports whether NM102 is "1". An absent entity type is neither a
// person nor an organization.
func (e *NamedEntity) IsPerson() (bool, error) {
	return e.entityTypeIs("1")
}

// IsOrganization reports whether NM102 is "2".
func (e *NamedEntity) IsOrganization() (bool, error) {
	return e.entityTypeIs("2")
}

func (e *NamedEntity) entityTypeIs(code string) (bool, error) {
	t, ok, err := nm1EntityType.Get(e)
	if err != nil || !ok {
		return false, err
	}
	return t.Code == code, nil
}

// NamedEntities returns one NamedEntity per NM1 segment directly in loop.
// Their contact details are empty since each wraps only its NM1 segment.
func NamedEntities(loop *x12.Loop) []*NamedEntity {
	return facade.EachSegment(facade.NewLoopBridge(loop), "NM1", func(l *x12.Loop) *NamedEntity {
		return NewNamedEntity(l, "")
	})
}
