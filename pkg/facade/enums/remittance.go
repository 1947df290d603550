package enums

import (
	"github.com/oarkflow/edi/pkg/facade"
)

// ClaimAdjustmentReasons is CAS02, CAS05, ... CAS17. The list is maintained
// externally and changes several times a year, so bindings over it are
// permissive and configuration may add newer codes.
var ClaimAdjustmentReasons = facade.CodeTable{
	"1":   "Deductible Amount",
	"2":   "Coinsurance Amount",
	"3":   "Co-payment Amount",
	"4":   "The procedure code is inconsistent with the modifier used or a required modifier is missing.",
	"5":   "The procedure code/bill type is inconsistent with the place of service.",
	"6":   "The procedure/revenue code is inconsistent with the patient's age.",
	"7":   "The procedure/revenue code is inconsistent with the patient's gender.",
	"8":   "The procedure code is inconsistent with the provider type/specialty (taxonomy).",
	"9":   "The diagnosis is inconsistent with the patient's age.",
	"10":  "The diagnosis is inconsistent with the patient's gender.",
	"11":  "The diagnosis is inconsistent with the procedure.",
	"12":  "The diagnosis is inconsistent with the provider type.",
	"13":  "The date of death precedes the date of service.",
	"14":  "The date of birth follows the date of service.",
	"16":  "Claim/service lacks information or has submission/billing error(s).",
	"18":  "Exact duplicate claim/service",
	"19":  "This is a work-related injury/illness and thus the liability of the Worker's Compensation Carrier.",
	"20":  "This injury/illness is covered by the liability carrier.",
	"22":  "This care may be covered by another payer per coordination of benefits.",
	"23":  "The impact of prior payer(s) adjudication including payments and/or adjustments.",
	"24":  "Charges are covered under a capitation agreement/managed care plan.",
	"26":  "Expenses incurred prior to coverage.",
	"27":  "Expenses incurred after coverage terminated.",
	"29":  "The time limit for filing has expired.",
	"31":  "Patient cannot be identified as our insured.",
	"32":  "Our records indicate the patient is not an eligible dependent.",
	"33":  "Insured has no dependent coverage.",
	"34":  "Insured has no coverage for newborns.",
	"35":  "Lifetime benefit maximum has been reached.",
	"39":  "Services denied at the time authorization/pre-certification was requested.",
	"40":  "Charges do not meet qualifications for emergent/urgent care.",
	"45":  "Charge exceeds fee schedule/maximum allowable or contracted/legislated fee arrangement.",
	"49":  "This is a non-covered service because it is a routine/preventive exam or a diagnostic/screening procedure done in conjunction with a routine/preventive exam.",
	"50":  "These are non-covered services because this is not deemed a 'medical necessity' by the payer.",
	"51":  "These are non-covered services because this is a pre-existing condition.",
	"55":  "Procedure/treatment/drug is deemed experimental/investigational by the payer.",
	"58":  "Treatment was deemed by the payer to have been rendered in an inappropriate or invalid place of service.",
	"59":  "Processed based on multiple or concurrent procedure rules.",
	"66":  "Blood Deductible.",
	"89":  "Professional fees removed from charges.",
	"90":  "Ingredient cost adjustment.",
	"94":  "Processed in Excess of charges.",
	"96":  "Non-covered charge(s).",
	"97":  "The benefit for this service is included in the payment/allowance for another service/procedure that has already been adjudicated.",
	"100": "Payment made to patient/insured/responsible party.",
	"101": "Predetermination: anticipated payment upon completion of services or claim adjudication.",
	"104": "Managed care withholding.",
	"105": "Tax withholding.",
	"109": "Claim/service not covered by this payer/contractor.",
	"119": "Benefit maximum for this time period or occurrence has been reached.",
	"128": "Newborn's services are covered in the mother's Allowance.",
	"129": "Prior processing information appears incorrect.",
	"131": "Claim specific negotiated discount.",
	"142": "Monthly Medicaid patient liability amount.",
	"144": "Incentive adjustment, e.g. preferred product/service.",
	"151": "Payment adjusted because the payer deems the information submitted does not support this many/frequency of services.",
	"167": "This (these) diagnosis(es) is (are) not covered.",
	"181": "Procedure code was invalid on the date of service.",
	"197": "Precertification/authorization/notification/pre-treatment absent.",
	"204": "This service/equipment/drug is not covered under the patient's current benefit plan.",
	"222": "Exceeds the contracted maximum number of hours/days/units by this provider for this period.",
	"236": "This procedure or procedure/modifier combination is not compatible with another procedure or procedure/modifier combination provided on the same day according to the National Correct Coding Initiative or workers compensation state regulations/fee schedule requirements.",
	"242": "Services not provided by network/primary care providers.",
	"253": "Sequestration - reduction in federal payment.",
	"A1":  "Claim/Service denied.",
	"A6":  "Prior hospitalization or 30 day transfer requirement not met.",
	"B7":  "This provider was not certified/eligible to be paid for this procedure/service on this date of service.",
	"B9":  "Patient is enrolled in a Hospice.",
	"B13": "Previously paid. Payment for this claim/service may have been provided in a previous payment.",
	"B15": "This service/procedure requires that a qualifying service/procedure be received and covered.",
	"B22": "This payment is adjusted based on the diagnosis.",
	"P2":  "Not a work related injury/illness and thus not the liability of the workers' compensation carrier.",
}
