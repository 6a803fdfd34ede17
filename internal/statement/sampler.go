package statement

import "github.com/dvloznov/bank-middleware-mock/internal/domain"

// Bounds of the sample size.
const (
	MinSampleSize = 3
	MaxSampleSize = 4
)

// Filter narrows a synthesized universe. Empty fields do not filter.
type Filter struct {
	AccountNumber string
	ValidDate     string
}

// Apply returns the records matching every set criterion, preserving order.
func (f Filter) Apply(records []domain.TransactionRecord) []domain.TransactionRecord {
	out := make([]domain.TransactionRecord, 0, len(records))
	for _, rec := range records {
		if f.AccountNumber != "" && rec.AccountNumber != f.AccountNumber {
			continue
		}
		if f.ValidDate != "" && rec.ValidDate != f.ValidDate {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Sample caps records at a random size in [MinSampleSize, MaxSampleSize], shuffling
// first when shuffle is set. The input slice is truncated in place.
func Sample(records []domain.TransactionRecord, src Source, shuffle bool) []domain.TransactionRecord {
	limit := between(src, MinSampleSize, MaxSampleSize)
	if shuffle {
		src.Shuffle(len(records), func(i, j int) {
			records[i], records[j] = records[j], records[i]
		})
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records
}
