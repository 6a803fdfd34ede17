package statement

import (
	"errors"
	"testing"
	"time"
)

func newTestGenerator(t *testing.T, src Source, exact bool) *Generator {
	t.Helper()
	g, err := NewGenerator(Options{
		Catalog:   DefaultCatalog(ModeCharges),
		Source:    src,
		Now:       func() time.Time { return fixedNow },
		Shuffle:   true,
		ExactDate: exact,
	})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	return g
}

func TestGenerate_NoFilters(t *testing.T) {
	g := newTestGenerator(t, NewSource(11), false)
	def := g.Window()

	got, err := g.Generate(Request{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(got) > MaxSampleSize {
		t.Fatalf("len = %d, want <= %d", len(got), MaxSampleSize)
	}
	for _, rec := range got {
		day, err := ParseDate(rec.ValidDate, time.UTC)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", rec.ValidDate, err)
		}
		if !def.Contains(day) {
			t.Errorf("record dated %s outside window", rec.ValidDate)
		}
		if !amountPattern.MatchString(rec.Amount) {
			t.Errorf("bad amount %q", rec.Amount)
		}
	}
}

func TestGenerate_RangeViolations(t *testing.T) {
	g := newTestGenerator(t, NewSource(11), false)

	tests := []struct {
		name string
		req  Request
	}{
		{"nine days ago", Request{FromDate: "05032024"}},
		{"from after to", Request{FromDate: "13032024", ToDate: "10032024"}},
		{"tomorrow", Request{ToDate: "15032024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Generate(tt.req)
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("error = %v, want *RangeError", err)
			}
			if rangeErr.Reason == "" {
				t.Error("RangeError has empty reason")
			}
			if got != nil {
				t.Errorf("records = %v, want nil", got)
			}
		})
	}
}

func TestGenerate_MalformedDate(t *testing.T) {
	g := newTestGenerator(t, NewSource(11), false)

	_, err := g.Generate(Request{FromDate: "2024-03-10"})
	if !errors.Is(err, ErrMalformedDate) {
		t.Fatalf("error = %v, want ErrMalformedDate", err)
	}
	var fmtErr *DateFormatError
	if !errors.As(err, &fmtErr) || fmtErr.Field != "from_date" {
		t.Errorf("error = %#v, want DateFormatError on from_date", err)
	}
}

func TestGenerate_AccountFilter(t *testing.T) {
	g := newTestGenerator(t, NewSource(5), false)

	for i := 0; i < 50; i++ {
		got, err := g.Generate(Request{AccountNumber: DefaultAccounts[1]})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(got) < MinSampleSize || len(got) > MaxSampleSize {
			t.Fatalf("len = %d, want %d..%d", len(got), MinSampleSize, MaxSampleSize)
		}
		for _, rec := range got {
			if rec.AccountNumber != DefaultAccounts[1] {
				t.Fatalf("account = %q, want %q", rec.AccountNumber, DefaultAccounts[1])
			}
		}
	}
}

func TestGenerate_UnknownAccount(t *testing.T) {
	g := newTestGenerator(t, NewSource(5), false)

	got, err := g.Generate(Request{AccountNumber: "0000000000"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestGenerate_ExactDate(t *testing.T) {
	g := newTestGenerator(t, NewSource(8), true)

	got, err := g.Generate(Request{FromDate: "10032024"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected records for 10032024")
	}
	for _, rec := range got {
		if rec.ValidDate != "10032024" {
			t.Errorf("Valid_Date = %s, want 10032024", rec.ValidDate)
		}
	}
}

func TestGenerate_RepeatedRequestsStayInBounds(t *testing.T) {
	g := newTestGenerator(t, NewSource(0), false)
	def := g.Window()

	for i := 0; i < 2; i++ {
		got, err := g.Generate(Request{})
		if err != nil {
			t.Fatalf("request %d failed: %v", i, err)
		}
		if len(got) > MaxSampleSize {
			t.Errorf("request %d: len = %d", i, len(got))
		}
		for _, rec := range got {
			day, _ := ParseDate(rec.ValidDate, time.UTC)
			if !def.Contains(day) {
				t.Errorf("request %d: %s outside window", i, rec.ValidDate)
			}
		}
	}
}
