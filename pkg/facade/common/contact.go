package common

import (
	"github.com/oarkflow/edi/pkg/facade"
	"github.com/oarkflow/edi/pkg/facade/enums"
	"github.com/oarkflow/edi/pkg/x12"
)

var perSlots = []facade.Slot{facade.Pair(3, 4), facade.Pair(5, 6), facade.Pair(7, 8)}

var (
	n1Name         = facade.Text("name", facade.At("N1", 2))
	n1IDQualifier  = facade.Bind("id_qualifier", facade.At("N1", 3), facade.Enum(enums.PayeeIdentification))
	n1ID           = facade.Text("id", facade.At("N1", 4))
	n3Addr1        = facade.Text("addr1", facade.At("N3", 1))
	n3Addr2        = facade.Text("addr2", facade.At("N3", 2))
	n4City         = facade.Text("city", facade.At("N4", 1))
	n4State        = facade.Text("state", facade.At("N4", 2))
	n4Zip          = facade.Text("zip", facade.At("N4", 3))
	n4CountryCode  = facade.Text("country_code", facade.At("N4", 4))
	n4LocationType = facade.Bind("location_type", facade.At("N4", 5), facade.Enum(enums.LocationQualifier, facade.RawUnknowns()))
	n4LocationID   = facade.Text("location_id", facade.At("N4", 6))
	perContactCode = facade.Bind("contact_code", facade.At("PER", 1), facade.Enum(enums.ContactFunction, facade.RawUnknowns()))
	perContactName = facade.Text("contact_name", facade.At("PER", 2))
	perEDI         = facade.Text("contact_edi", facade.OneOf("PER", "ED", perSlots...))
	perEmail       = facade.Text("contact_email", facade.OneOf("PER", "EM", perSlots...))
	perFax         = facade.Text("contact_fax", facade.OneOf("PER", "FX", perSlots...))
	perHomePhone   = facade.Text("contact_home_phone", facade.OneOf("PER", "HP", perSlots...))
	perWorkPhone   = facade.Text("contact_work_phone", facade.OneOf("PER", "WP", perSlots...))
	perPhone       = facade.Text("contact_phone", facade.OneOf("PER", "TE", perSlots...))
	perPhoneExt    = facade.Text("contact_phone_ext", facade.OneOf("PER", "EX", perSlots...))

	contactSchema = facade.Schema{
		n1Name, n1IDQualifier, n1ID,
		n3Addr1, n3Addr2,
		n4City, n4State, n4Zip, n4CountryCode, n4LocationType, n4LocationID,
		perContactCode, perContactName,
		perEDI, perEmail, perFax, perHomePhone, perWorkPhone, perPhone, perPhoneExt,
	}
)

// ContactDetails reads the N1, N3, N4 and PER segments of a party loop.
type ContactDetails struct {
	facade.LoopBridge
}

func NewContactDetails(loop *x12.Loop) *ContactDetails {
	return &ContactDetails{LoopBridge: facade.NewLoopBridge(loop)}
}

func (c *ContactDetails) Schema() facade.Schema { return contactSchema }

func (c *ContactDetails) Name() (string, bool) { return n1Name.Get(c) }

func (c *ContactDetails) IDQualifier() (facade.Coded, bool, error) { return n1IDQualifier.Get(c) }

func (c *ContactDetails) ID() (string, bool) { return n1ID.Get(c) }

func (c *ContactDetails) Addr1() (string, bool) { return n3Addr1.Get(c) }

func (c *ContactDetails) Addr2() (string, bool) { return n3Addr2.Get(c) }

func (c *ContactDetails) City() (string, bool) { return n4City.Get(c) }

func (c *ContactDetails) State() (string, bool) { return n4State.Get(c) }

func (c *ContactDetails) Zip() (string, bool) { return n4Zip.Get(c) }

func (c *ContactDetails) CountryCode() (string, bool) { return n4CountryCode.Get(c) }

func (c *ContactDetails) LocationType() (facade.Coded, bool, error) { return n4LocationType.Get(c) }

func (c *ContactDetails) LocationID() (string, bool) { return n4LocationID.Get(c) }

func (c *ContactDetails) ContactCode() (facade.Coded, bool, error) { return perContactCode.Get(c) }

func (c *ContactDetails) ContactName() (string, bool) { return perContactName.Get(c) }

// The communication numbers below share PER03 through PER08; each returns the
// number paired with its own qualifier.

func (c *ContactDetails) ContactEDI() (string, bool) { return perEDI.Get(c) }

func (c *ContactDetails) ContactEmail() (string, bool) { return perEmail.Get(c) }

func (c *ContactDetails) ContactFax() (string, bool) { return perFax.Get(c) }

func (c *ContactDetails) ContactHomePhone() (string, bool) { return perHomePhone.Get(c) }

func (c *ContactDetails) ContactWorkPhone() (string, bool) { return perWorkPhone.Get(c) }

func (c *ContactDetails) ContactPhone() (string, bool) { return perPhone.Get(c) }

func (c *ContactDetails) ContactPhoneExt() (string, bool) { return perPhoneExt.Get(c) }
