package report

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/expense-report/backend/internal/domain/error"
)

func TestParseDateRange_BothBounds(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, loc)

	r, err := ParseDateRange("2024-01-01", "2024-01-31", RangePolicyEmpty, loc, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Empty {
		t.Fatal("expected a populated range")
	}

	if want := time.Date(2024, 1, 1, 0, 0, 0, 0, loc); !r.Start.Equal(want) {
		t.Errorf("expected start %v, got %v", want, r.Start)
	}
	// End bound is advanced one day so the whole end date is included
	if want := time.Date(2024, 2, 1, 0, 0, 0, 0, loc); !r.End.Equal(want) {
		t.Errorf("expected end %v, got %v", want, r.End)
	}

	lastSecond := time.Date(2024, 1, 31, 23, 59, 59, 0, loc)
	if !lastSecond.Before(r.End) || lastSecond.Before(r.Start) {
		t.Error("expected 2024-01-31T23:59:59 to fall inside the range")
	}

	dayAfter := time.Date(2024, 2, 1, 0, 0, 1, 0, loc)
	if dayAfter.Before(r.End) {
		t.Error("expected 2024-02-01T00:00:01 to fall outside the range")
	}
}

func TestParseDateRange_MissingBounds(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, loc)

	t.Run("empty policy yields empty range", func(t *testing.T) {
		r, err := ParseDateRange("", "", RangePolicyEmpty, loc, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.Empty {
			t.Error("expected the empty range marker")
		}
	})

	t.Run("one bound missing is treated as no filter", func(t *testing.T) {
		r, err := ParseDateRange("2024-01-01", "", RangePolicyEmpty, loc, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.Empty {
			t.Error("expected the empty range marker")
		}
	})

	t.Run("current month policy fills the calendar month", func(t *testing.T) {
		r, err := ParseDateRange("", "", RangePolicyCurrentMonth, loc, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Empty {
			t.Fatal("expected a populated range")
		}
		if want := time.Date(2024, 6, 1, 0, 0, 0, 0, loc); !r.Start.Equal(want) {
			t.Errorf("expected start %v, got %v", want, r.Start)
		}
		if want := time.Date(2024, 7, 1, 0, 0, 0, 0, loc); !r.End.Equal(want) {
			t.Errorf("expected end %v, got %v", want, r.End)
		}
	})
}

func TestParseDateRange_MalformedBound(t *testing.T) {
	loc := time.UTC
	now := time.Now()

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"bad start", "31/01/2024", "2024-01-31"},
		{"bad end", "2024-01-01", "not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDateRange(tt.start, tt.end, RangePolicyEmpty, loc, now)
			if err == nil {
				t.Fatal("expected an error")
			}

			var reportErr *domainerror.ReportError
			if !errors.As(err, &reportErr) {
				t.Fatalf("expected a ReportError, got %T", err)
			}
			if reportErr.Code != domainerror.ErrCodeInvalidDateRange {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDateRange, reportErr.Code)
			}
		})
	}
}
