// Package pricing computes occurrence counts and revenue for recurring
// bookings. All date arithmetic works on calendar dates normalized to
// midnight UTC; wall-clock times and DST shifts never enter into it.
package pricing

import (
	"time"

	bookingserrors "flexspace/internal/bookings/errors"
	"flexspace/pkg/model"
	"flexspace/pkg/sanitizer"
)

// Quote is the derived revenue breakdown for a recurring booking.
// TotalRevenueCents + DiscountAmountCents always equals
// RevenueBeforeDiscountCents.
type Quote struct {
	Occurrences                int   `json:"occurrences"`
	RevenueBeforeDiscountCents int64 `json:"revenue_before_discount_cents"`
	DiscountAmountCents        int64 `json:"discount_amount_cents"`
	TotalRevenueCents          int64 `json:"total_revenue_cents"`
}

// NormalizeDate truncates t to midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekdaySet normalizes and dedupes the requested weekday names.
// Unknown names are dropped rather than rejected.
func weekdaySet(weekdays []model.Weekday) map[model.Weekday]bool {
	set := make(map[model.Weekday]bool, len(weekdays))
	for _, day := range weekdays {
		canonical := sanitizer.NormalizeWeekday(day)
		if canonical != "" {
			set[canonical] = true
		}
	}
	return set
}

// CountWeekdays counts the calendar dates in [start, end] (inclusive on
// both ends) whose weekday is in the requested set. A start after end
// counts zero days.
func CountWeekdays(start, end time.Time, weekdays []model.Weekday) int {
	start = NormalizeDate(start)
	end = NormalizeDate(end)
	if start.After(end) {
		return 0
	}

	set := weekdaySet(weekdays)
	if len(set) == 0 {
		return 0
	}

	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if set[day.Weekday().String()] {
			count++
		}
	}
	return count
}

// MonthsSpanned counts the distinct calendar months touched by
// [start, end], so Jan 15 through Feb 2 spans two months.
func MonthsSpanned(start, end time.Time) int {
	start = NormalizeDate(start)
	end = NormalizeDate(end)
	if start.After(end) {
		return 0
	}
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}

// AdjustOccurrences maps the raw weekday count to the number of actual
// visits under the recurrence pattern. Weekly keeps every match,
// Bi-Weekly keeps every other one rounding up, and Monthly approximates
// one visit per selected weekday per month spanned.
func AdjustOccurrences(raw int, pattern model.RecurrencePattern, start, end time.Time, weekdays []model.Weekday) (int, error) {
	switch pattern {
	case model.PatternWeekly:
		return raw, nil
	case model.PatternBiWeekly:
		return (raw + 1) / 2, nil
	case model.PatternMonthly:
		return MonthsSpanned(start, end) * len(weekdaySet(weekdays)), nil
	default:
		return 0, bookingserrors.ErrInvalidRecurrencePattern
	}
}

// DiscountAmount computes the discounted portion of beforeCents,
// rounding half cents up. Callers must pass a percent in [0, 100].
func DiscountAmount(beforeCents int64, discountPercent int) int64 {
	return (beforeCents*int64(discountPercent) + 50) / 100
}

// ComputeQuote turns an occurrence count and a per-visit price into a
// revenue breakdown.
func ComputeQuote(occurrences int, slotPriceCents int64, discountPercent int) (*Quote, error) {
	if discountPercent < 0 || discountPercent > 100 {
		return nil, bookingserrors.ErrInvalidDiscount
	}
	if occurrences < 0 {
		occurrences = 0
	}

	before := int64(occurrences) * slotPriceCents
	discount := DiscountAmount(before, discountPercent)

	return &Quote{
		Occurrences:                occurrences,
		RevenueBeforeDiscountCents: before,
		DiscountAmountCents:        discount,
		TotalRevenueCents:          before - discount,
	}, nil
}

// QuoteRecurring runs the full pipeline: count matching dates, adjust
// for the pattern, then price the result.
func QuoteRecurring(start, end time.Time, weekdays []model.Weekday, pattern model.RecurrencePattern, slotPriceCents int64, discountPercent int) (*Quote, error) {
	if NormalizeDate(start).After(NormalizeDate(end)) {
		return nil, bookingserrors.ErrInvalidDateRange
	}
	if len(weekdaySet(weekdays)) == 0 {
		return nil, bookingserrors.ErrNoWeekdays
	}

	raw := CountWeekdays(start, end, weekdays)
	occurrences, err := AdjustOccurrences(raw, pattern, start, end, weekdays)
	if err != nil {
		return nil, err
	}

	return ComputeQuote(occurrences, slotPriceCents, discountPercent)
}
