package common

import (
	"github.com/golang-sql/civil"
	"github.com/shopspring/decimal"

	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/x12"
)

// Loop names of a claim payment advice as produced by the 835 loop rules.
const (
	PayerLoop          = "1000A"
	PayeeLoop          = "1000B"
	HeaderNumberLoop   = "2000"
	ClaimPaymentLoop   = "2100"
	ServicePaymentLoop = "2110"
)

var (
	bprHandlingCode  = facade.Text("transaction_handling_code", facade.At("BPR", 1))
	bprTotalPayment  = facade.Bind("total_payment", facade.At("BPR", 2), facade.Money)
	bprCreditDebit   = facade.Text("credit_debit_flag", facade.At("BPR", 3))
	bprPaymentMethod = facade.Text("payment_method", facade.At("BPR", 4))
	bprPaymentDate   = facade.Bind("payment_date", facade.At("BPR", 16), facade.D8)
	trnTraceNumber   = facade.Text("trace_number", facade.At("TRN", 2))
	trnOriginatorID  = facade.Text("originator_id", facade.At("TRN", 3))

	remittanceSchema = facade.Schema{
		bprHandlingCode, bprTotalPayment, bprCreditDebit, bprPaymentMethod, bprPaymentDate,
		trnTraceNumber, trnOriginatorID,
	}
)

// Remittance wraps the ST loop of an 835 claim payment advice.
type Remittance struct {
	facade.LoopBridge
	Payer  *ContactDetails
	Payee  *ContactDetails
	Claims []*ClaimPayment
}

func NewRemittance(loop *x12.Loop) *Remittance {
	r := &Remittance{LoopBridge: facade.NewLoopBridge(loop)}
	r.Payer, _ = facade.First(r, PayerLoop, NewContactDetails)
	r.Payee, _ = facade.First(r, PayeeLoop, NewContactDetails)
	r.Claims = facade.Each(r, ClaimPaymentLoop, NewClaimPayment)
	return r
}

func (r *Remittance) Schema() facade.Schema { return remittanceSchema }

func (r *Remittance) HandlingCode() (string, bool) { return bprHandlingCode.Get(r) }

func (r *Remittance) TotalPayment() (decimal.Decimal, bool, error) { return bprTotalPayment.Get(r) }

func (r *Remittance) CreditDebitFlag() (string, bool) { return bprCreditDebit.Get(r) }

func (r *Remittance) PaymentMethod() (string, bool) { return bprPaymentMethod.Get(r) }

func (r *Remittance) PaymentDate() (civil.Date, bool, error) { return bprPaymentDate.Get(r) }

func (r *Remittance) TraceNumber() (string, bool) { return trnTraceNumber.Get(r) }

func (r *Remittance) OriginatorID() (string, bool) { return trnOriginatorID.Get(r) }

var (
	clpPatientControlNumber  = facade.Text("patient_control_number", facade.At("CLP", 1))
	clpStatus                = facade.Text("status", facade.At("CLP", 2))
	clpCharge                = facade.Bind("charge", facade.At("CLP", 3), facade.Money)
	clpPayment               = facade.Bind("payment", facade.At("CLP", 4), facade.Money)
	clpPatientResponsibility = facade.Bind("patient_responsibility", facade.At("CLP", 5), facade.Money)
	clpPayerControlNumber    = facade.Text("payer_claim_control_number", facade.At("CLP", 7))

	claimPaymentSchema = facade.Schema{
		clpPatientControlNumber, clpStatus, clpCharge, clpPayment,
		clpPatientResponsibility, clpPayerControlNumber,
	}
)

// ClaimPayment wraps a 2100 loop.
type ClaimPayment struct {
	facade.LoopBridge
	Entities    []*NamedEntity
	Adjustments []*ClaimAdjustment
	References  []*ReferenceID
	Services    []*ServicePayment
}

func NewClaimPayment(loop *x12.Loop) *ClaimPayment {
	c := &ClaimPayment{LoopBridge: facade.NewLoopBridge(loop)}
	c.Entities = NamedEntities(loop)
	c.Adjustments = ClaimAdjustments(loop, "claim")
	c.References = ReferenceIDs(loop)
	c.Services = facade.Each(c, ServicePaymentLoop, NewServicePayment)
	return c
}

func (c *ClaimPayment) Schema() facade.Schema { return claimPaymentSchema }

// Patient is the NM1*QC entity of the claim, or nil.
func (c *ClaimPayment) Patient() *NamedEntity {
	for _, e := range c.Entities {
		id, ok, err := nm1EntityIdentifier.Get(e)
		if err == nil && ok && id.Code == "QC" {
			return e
		}
	}
	return nil
}

func (c *ClaimPayment) PatientControlNumber() (string, bool) { return clpPatientControlNumber.Get(c) }

func (c *ClaimPayment) Status() (string, bool) { return clpStatus.Get(c) }

func (c *ClaimPayment) Charge() (decimal.Decimal, bool, error) { return clpCharge.Get(c) }

func (c *ClaimPayment) Payment() (decimal.Decimal, bool, error) { return clpPayment.Get(c) }

func (c *ClaimPayment) PatientResponsibility() (decimal.Decimal, bool, error) {
	return clpPatientResponsibility.Get(c)
}

func (c *ClaimPayment) PayerControlNumber() (string, bool) { return clpPayerControlNumber.Get(c) }

var (
	svcProcedureQualifier = facade.Text("procedure_qualifier", facade.Composite("SVC", 1, 1))
	svcProcedureCode      = facade.Text("procedure_code", facade.Composite("SVC", 1, 2))
	svcCharge             = facade.Bind("charge", facade.At("SVC", 2), facade.Money)
	svcPayment            = facade.Bind("payment", facade.At("SVC", 3), facade.Money)
	svcUnits              = facade.Text("units", facade.At("SVC", 5))
	dtmServiceDate        = facade.Bind("service_date", facade.At("DTM", 2), facade.D8)

	servicePaymentSchema = facade.Schema{
		svcProcedureQualifier, svcProcedureCode, svcCharge, svcPayment, svcUnits, dtmServiceDate,
	}
)

// ServicePayment wraps a 2110 loop.
type ServicePayment struct {
	facade.LoopBridge
	Adjustments []*ClaimAdjustment
}

func NewServicePayment(loop *x12.Loop) *ServicePayment {
	return &ServicePayment{
		LoopBridge:  facade.NewLoopBridge(loop),
		Adjustments: ClaimAdjustments(loop, "service"),
	}
}

func (s *ServicePayment) Schema() facade.Schema { return servicePaymentSchema }

func (s *ServicePayment) ProcedureQualifier() (string, bool) { return svcProcedureQualifier.Get(s) }

func (s *ServicePayment) ProcedureCode() (string, bool) { return svcProcedureCode.Get(s) }

func (s *ServicePayment) Charge() (decimal.Decimal, bool, error) { return svcCharge.Get(s) }

func (s *ServicePayment) Payment() (decimal.Decimal, bool, error) { return svcPayment.Get(s) }

func (s *ServicePayment) Units() (string, bool) { return svcUnits.Get(s) }

func (s *ServicePayment) ServiceDate() (civil.Date, bool, error) { return dtmServiceDate.Get(s) }
