// Package report contains the report aggregation and export use cases.
package report

import (
	"fmt"
	"time"

	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// dateLayout is the accepted wire format for date bounds.
const dateLayout = "2006-01-02"

// RangePolicy selects what a report does when no date filter is supplied.
type RangePolicy int

const (
	// RangePolicyEmpty yields an empty result set when no bounds are given.
	RangePolicyEmpty RangePolicy = iota

	// RangePolicyCurrentMonth defaults to the current calendar month when no
	// bounds are given. Used by the company report.
	RangePolicyCurrentMonth
)

// DateRange is a half-open interval [Start, End). Empty marks the
// RangePolicyEmpty case with no bounds supplied: nothing should be fetched.
type DateRange struct {
	Start time.Time
	End   time.Time
	Empty bool
}

// ParseDateRange parses two optional YYYY-MM-DD bounds into a half-open
// range. When both are present the end bound is advanced by one calendar day
// so the user-specified end date is included in full. When either is absent
// the policy decides between an empty range and the current calendar month.
// A malformed bound fails with an InvalidDateRange error.
func ParseDateRange(startStr, endStr string, policy RangePolicy, loc *time.Location, now time.Time) (DateRange, error) {
	if startStr == "" || endStr == "" {
		if policy == RangePolicyCurrentMonth {
			monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
			return DateRange{Start: monthStart, End: monthStart.AddDate(0, 1, 0)}, nil
		}
		return DateRange{Empty: true}, nil
	}

	start, err := time.ParseInLocation(dateLayout, startStr, loc)
	if err != nil {
		return DateRange{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			fmt.Sprintf("invalid start date %q, expected YYYY-MM-DD", startStr),
			domainerror.ErrInvalidDateRange,
		)
	}

	end, err := time.ParseInLocation(dateLayout, endStr, loc)
	if err != nil {
		return DateRange{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			fmt.Sprintf("invalid end date %q, expected YYYY-MM-DD", endStr),
			domainerror.ErrInvalidDateRange,
		)
	}

	return DateRange{Start: start, End: end.AddDate(0, 0, 1)}, nil
}
