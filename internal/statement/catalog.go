package statement

import "fmt"

// NarrationMode selects how narrations and amounts are synthesized.
type NarrationMode string

const (
	// ModeCharges emits one service charge per transaction.
	ModeCharges NarrationMode = "charges"
	// ModePurchase emits a purchase followed by an excess-charge line item.
	ModePurchase NarrationMode = "purchase"
)

// ParseNarrationMode validates a mode name.
func ParseNarrationMode(s string) (NarrationMode, error) {
	switch NarrationMode(s) {
	case ModeCharges, ModePurchase:
		return NarrationMode(s), nil
	default:
		return "", fmt.Errorf("unknown narration mode %q (want %q or %q)", s, ModeCharges, ModePurchase)
	}
}

// AmountRange is an inclusive range of whole currency units.
type AmountRange struct {
	Min int
	Max int
}

// Catalog is the immutable configuration a Synthesizer draws from.
type Catalog struct {
	// Accounts lists the account numbers synthesized for every day, in output order.
	Accounts []string

	// Charges are the narrations used in ModeCharges.
	Charges []string

	// Purchases are narration templates used in ModePurchase. Each is passed to
	// fmt.Sprintf with the formatted purchase amount.
	Purchases []string

	// ExcessCharge is the narration template of the line item paired with each purchase.
	ExcessCharge string

	Mode           NarrationMode
	ChargeAmount   AmountRange
	PurchaseAmount AmountRange
}

// DefaultAccounts is the built-in account catalog.
var DefaultAccounts = []string{
	"7455601957",
	"30001234567",
	"30009876543",
}

// DefaultCatalog returns the built-in catalog for the given mode.
func DefaultCatalog(mode NarrationMode) Catalog {
	return Catalog{
		Accounts: append([]string(nil), DefaultAccounts...),
		Charges: []string{
			"Excess wdl charges",
			"ATM AMC CHGS",
			"Cash handling charges",
			"ATM WDL CHARGES",
			"MIN BAL CHGS",
			"SMS ALERT CHGS",
			"CHQ BOOK ISSUE CHGS",
		},
		Purchases: []string{
			"POS PURCHASE AMAZON RS %s",
			"POS PURCHASE BIG BAZAAR RS %s",
			"UPI/SWIGGY/PAYMENT OF RS %s",
			"UPI/IRCTC/TICKET BOOKING RS %s",
			"ATM WDL RS %s",
			"NEFT/ELECTRICITY BILL RS %s",
		},
		ExcessCharge:   "Excess txn charges on RS %s",
		Mode:           mode,
		ChargeAmount:   AmountRange{Min: 100, Max: 700},
		PurchaseAmount: AmountRange{Min: 1000, Max: 60000},
	}
}

// Validate reports whether the catalog can drive a Synthesizer.
func (c Catalog) Validate() error {
	if _, err := ParseNarrationMode(string(c.Mode)); err != nil {
		return err
	}
	if err := c.ChargeAmount.validate(); err != nil {
		return fmt.Errorf("charge amount: %w", err)
	}
	switch c.Mode {
	case ModeCharges:
		if len(c.Charges) == 0 {
			return fmt.Errorf("charges mode requires at least one charge narration")
		}
	case ModePurchase:
		if len(c.Purchases) == 0 {
			return fmt.Errorf("purchase mode requires at least one purchase template")
		}
		if err := c.PurchaseAmount.validate(); err != nil {
			return fmt.Errorf("purchase amount: %w", err)
		}
	}
	return nil
}

func (r AmountRange) validate() error {
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("invalid range [%d, %d]", r.Min, r.Max)
	}
	return nil
}

