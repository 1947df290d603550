// Package enums holds the code lists bundled with the common facades.
package enums

import (
	"github.com/oarkflow/edi/pkg/facade"
)

// Table names used by Registry and by configuration overrides.
const (
	IDCodeQualifierTable          = "id_code_qualifier"
	ReferenceIDQualifierTable     = "reference_id_qualifier"
	ClaimAdjustmentReasonsTable   = "claim_adjustment_reasons"
	ClaimAdjustmentGroupTable     = "claim_adjustment_group"
	EntityIdentifierTable         = "entity_identifier"
	EntityTypeTable               = "entity_type"
	PayeeIdentificationTable      = "payee_identification_qualifier"
	LocationQualifierTable        = "location_qualifier"
	ContactFunctionTable          = "contact_function"
	CommunicationNumberQualifiers = "communication_number_qualifier"
)

// IDCodeQualifier is NM108.
var IDCodeQualifier = facade.CodeTable{
	"24": "Employer's Identification Number",
	"34": "Social Security Number",
	"46": "Electronic Transmitter Identification Number (ETIN)",
	"FI": "Federal Taxpayer's Identification Number",
	"II": "Standard Unique Health Identifier for each Individual in the United States",
	"MI": "Member Identification Number",
	"MR": "Medicaid Recipient Identification Number",
	"PI": "Payor Identification",
	"PP": "Pharmacy Processor Number",
	"SV": "Service Provider Number",
	"XV": "Centers for Medicare and Medicaid Services PlanID",
	"XX": "Centers for Medicare and Medicaid Services National Provider Identifier",
	"ZZ": "Mutually Defined",
}

// ReferenceIDQualifier is REF01.
var ReferenceIDQualifier = facade.CodeTable{
	"0B": "State License Number",
	"1A": "Blue Cross Provider Number",
	"1B": "Blue Shield Provider Number",
	"1C": "Medicare Provider Number",
	"1D": "Medicaid Provider Number",
	"1G": "Provider UPIN Number",
	"1H": "CHAMPUS Identification Number",
	"1L": "Group or Policy Number",
	"1W": "Member Identification Number",
	"28": "Employee Identification Number",
	"2U": "Payer Identification Number",
	"6P": "Group Number",
	"6R": "Provider Control Number",
	"9A": "Repriced Claim Reference Number",
	"9C": "Adjusted Repriced Claim Reference Number",
	"BB": "Authorization Number",
	"CE": "Class of Contract Code",
	"D3": "National Council for Prescription Drug Programs Pharmacy Number",
	"EA": "Medical Record Identification Number",
	"EO": "Submitter Identification Number",
	"EV": "Receiver Identification Number",
	"F8": "Original Reference Number",
	"G1": "Prior Authorization Number",
	"G2": "Provider Commercial Number",
	"G3": "Predetermination of Benefits Identification Number",
	"IG": "Insurance Policy Number",
	"LU": "Location Number",
	"PQ": "Payee Identification",
	"SY": "Social Security Number",
	"TJ": "Federal Taxpayer's Identification Number",
}

// ClaimAdjustmentGroup is CAS01.
var ClaimAdjustmentGroup = facade.CodeTable{
	"CO": "Contractual Obligation",
	"CR": "Correction and/or reversal",
	"OA": "Other Adjustment",
	"PI": "Payor initiated adjustment",
	"PR": "Patient Responsibility",
}

// EntityIdentifier is NM101.
var EntityIdentifier = facade.CodeTable{
	"03": "Dependent",
	"1P": "Provider",
	"2B": "Third-Party Administrator",
	"36": "Employer",
	"80": "Hospital",
	"FA": "Facility",
	"GP": "Gateway Provider",
	"IL": "Insured",
	"P5": "Plan Sponsor",
	"PR": "Payer",
	"QC": "Patient",
}

// EntityType is NM102.
var EntityType = facade.CodeTable{
	"1": "Person",
	"2": "Non-Person Entity",
}

// PayeeIdentification is N103.
var PayeeIdentification = facade.CodeTable{
	"XV": "Health Care Financing Administration National Plan ID",
	"FI": "Federal Taxpayer Identification Number",
	"XX": "Health Care Financing Administration National Provider ID",
}

// LocationQualifier is N405.
var LocationQualifier = facade.CodeTable{
	"CY": "County/Parish",
	"FI": "Federal Information Processing Standards (FIPS) 55 (Named Populated Places)",
}

// ContactFunction is PER01.
var ContactFunction = facade.CodeTable{
	"IC": "Information Contact",
}

// CommunicationNumberQualifier is PER03, PER05 and PER07.
var CommunicationNumberQualifier = facade.CodeTable{
	"ED": "Electronic Data Interchange Access Number",
	"EM": "Electronic Mail",
	"EX": "Telephone Extension",
	"FX": "Facsimile",
	"HP": "Home Phone Number",
	"TE": "Telephone",
	"WP": "Work Phone Number",
	"UR": "Uniform Resource Locator (URL)",
}

// Registry returns the bundled tables.
func Registry() *facade.Registry {
	return facade.NewRegistry(
		facade.NamedTable{Name: IDCodeQualifierTable, Codes: IDCodeQualifier},
		facade.NamedTable{Name: ReferenceIDQualifierTable, Codes: ReferenceIDQualifier},
		facade.NamedTable{Name: ClaimAdjustmentReasonsTable, Codes: ClaimAdjustmentReasons},
		facade.NamedTable{Name: ClaimAdjustmentGroupTable, Codes: ClaimAdjustmentGroup},
		facade.NamedTable{Name: EntityIdentifierTable, Codes: EntityIdentifier},
		facade.NamedTable{Name: EntityTypeTable, Codes: EntityType},
		facade.NamedTable{Name: PayeeIdentificationTable, Codes: PayeeIdentification},
		facade.NamedTable{Name: LocationQualifierTable, Codes: LocationQualifier},
		facade.NamedTable{Name: ContactFunctionTable, Codes: ContactFunction},
		facade.NamedTable{Name: CommunicationNumberQualifiers, Codes: CommunicationNumberQualifier},
	)
}
