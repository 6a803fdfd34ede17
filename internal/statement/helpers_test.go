package statement

import (
	"regexp"
	"time"
)

var (
	datePattern   = regexp.MustCompile(`^\d{8}$`)
	amountPattern = regexp.MustCompile(`^\d+\.\d{2}$`)
)

// fixedNow is a Thursday; the default window runs 08032024 to 14032024.
var fixedNow = time.Date(2024, time.March, 14, 10, 30, 0, 0, time.UTC)

// constSource always draws the same offset, clamped to n-1. Shuffle is a no-op.
type constSource struct {
	v int
}

func (s constSource) Intn(n int) int {
	if s.v >= n {
		return n - 1
	}
	return s.v
}

func (s constSource) Shuffle(n int, swap func(i, j int)) {}

// reverseSource draws like constSource but reverses on Shuffle.
type reverseSource struct {
	constSource
}

func (s reverseSource) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}
