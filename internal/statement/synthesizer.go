package statement

import (
	"fmt"
	"strings"

	"github.com/dvloznov/bank-middleware-mock/internal/domain"
	"github.com/shopspring/decimal"
)

// Bounds of the per account, per day transaction count.
const (
	MinTransactionsPerDay = 5
	MaxTransactionsPerDay = 8
)

// Synthesizer expands a window into the full universe of synthesized transactions.
type Synthesizer struct {
	catalog Catalog
	src     Source
}

// NewSynthesizer creates a synthesizer over a validated catalog.
func NewSynthesizer(catalog Catalog, src Source) (*Synthesizer, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("NewSynthesizer: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("NewSynthesizer: random source is required")
	}
	return &Synthesizer{catalog: catalog, src: src}, nil
}

// Synthesize returns records grouped by day ascending, then by account in catalog order.
func (s *Synthesizer) Synthesize(w Window) []domain.TransactionRecord {
	var records []domain.TransactionRecord
	for _, day := range w.Days() {
		date := FormatDate(day)
		for _, account := range s.catalog.Accounts {
			n := between(s.src, MinTransactionsPerDay, MaxTransactionsPerDay)
			for i := 0; i < n; i++ {
				records = append(records, s.transaction(account, date)...)
			}
		}
	}
	return records
}

// transaction draws one transaction. Purchase mode yields the purchase and its
// excess-charge line item.
func (s *Synthesizer) transaction(account, date string) []domain.TransactionRecord {
	c := s.catalog
	if c.Mode == ModePurchase {
		purchase := s.amount(c.PurchaseAmount)
		charge := s.amount(c.ChargeAmount)
		return []domain.TransactionRecord{
			newRecord(account, date, interpolate(c.Purchases[s.src.Intn(len(c.Purchases))], purchase), purchase),
			newRecord(account, date, interpolate(c.ExcessCharge, purchase), charge),
		}
	}

	amount := s.amount(c.ChargeAmount)
	return []domain.TransactionRecord{
		newRecord(account, date, c.Charges[s.src.Intn(len(c.Charges))], amount),
	}
}

func (s *Synthesizer) amount(r AmountRange) string {
	return FormatAmount(decimal.NewFromInt(int64(between(s.src, r.Min, r.Max))))
}

// FormatAmount renders an amount with exactly two fractional digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func newRecord(account, date, narration, amount string) domain.TransactionRecord {
	return domain.TransactionRecord{
		AccountNumber:   account,
		ValidDate:       date,
		PostDate:        date,
		TransactionType: domain.TransactionTypeDebit,
		Narration:       narration,
		Amount:          amount,
	}
}

func interpolate(template, amount string) string {
	if template == "" {
		return ""
	}
	if !strings.Contains(template, "%s") {
		return template
	}
	return fmt.Sprintf(template, amount)
}
