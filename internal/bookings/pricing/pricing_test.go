package pricing

import (
	"errors"
	"testing"
	"time"

	bookingserrors "flexspace/internal/bookings/errors"
	"flexspace/pkg/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCountWeekdays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		weekdays []model.Weekday
		want     int
	}{
		{
			name:     "start after end counts nothing",
			start:    date(2024, time.January, 10),
			end:      date(2024, time.January, 5),
			weekdays: []model.Weekday{"Monday"},
			want:     0,
		},
		{
			name:     "single day matching its own weekday",
			start:    date(2024, time.January, 8),
			end:      date(2024, time.January, 8),
			weekdays: []model.Weekday{"Monday"},
			want:     1,
		},
		{
			name:     "single day not matching",
			start:    date(2024, time.January, 8),
			end:      date(2024, time.January, 8),
			weekdays: []model.Weekday{"Tuesday"},
			want:     0,
		},
		{
			name:     "four mondays and four wednesdays",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.January, 28),
			weekdays: []model.Weekday{"Monday", "Wednesday"},
			want:     8,
		},
		{
			name:     "full january 2024 mondays and wednesdays",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.January, 31),
			weekdays: []model.Weekday{"Monday", "Wednesday"},
			want:     10,
		},
		{
			name:     "case insensitive weekday names",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.January, 7),
			weekdays: []model.Weekday{"monday", "FRIDAY"},
			want:     2,
		},
		{
			name:     "duplicate weekday names count once",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.January, 7),
			weekdays: []model.Weekday{"Monday", "Monday", "monday"},
			want:     1,
		},
		{
			name:     "unknown names are ignored",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.January, 7),
			weekdays: []model.Weekday{"Monday", "Funday", ""},
			want:     1,
		},
		{
			name:     "no recognizable weekdays counts nothing",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.January, 31),
			weekdays: []model.Weekday{"Funday", "Someday"},
			want:     0,
		},
		{
			name:     "range crossing a month boundary",
			start:    date(2024, time.January, 29),
			end:      date(2024, time.February, 5),
			weekdays: []model.Weekday{"Monday"},
			want:     2,
		},
		{
			name:     "leap day is counted",
			start:    date(2024, time.February, 26),
			end:      date(2024, time.March, 3),
			weekdays: []model.Weekday{"Thursday"},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountWeekdays(tt.start, tt.end, tt.weekdays)
			if got != tt.want {
				t.Errorf("CountWeekdays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountWeekdays_NormalizesTimeComponents(t *testing.T) {
	start := time.Date(2024, time.January, 8, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 8, 0, 1, 0, 0, time.UTC)

	if got := CountWeekdays(start, end, []model.Weekday{"Monday"}); got != 1 {
		t.Errorf("CountWeekdays() = %d, want 1", got)
	}
}

func TestMonthsSpanned(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same month", date(2024, time.January, 1), date(2024, time.January, 31), 1},
		{"partial months count whole", date(2024, time.January, 15), date(2024, time.February, 2), 2},
		{"across a year boundary", date(2023, time.November, 20), date(2024, time.February, 1), 4},
		{"start after end", date(2024, time.March, 1), date(2024, time.January, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsSpanned(tt.start, tt.end); got != tt.want {
				t.Errorf("MonthsSpanned() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAdjustOccurrences(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.January, 28)
	weekdays := []model.Weekday{"Monday", "Wednesday"}

	tests := []struct {
		name    string
		raw     int
		pattern model.RecurrencePattern
		want    int
	}{
		{"weekly keeps every match", 8, model.PatternWeekly, 8},
		{"bi-weekly halves rounding up even", 8, model.PatternBiWeekly, 4},
		{"bi-weekly halves rounding up odd", 7, model.PatternBiWeekly, 4},
		{"bi-weekly of one is one", 1, model.PatternBiWeekly, 1},
		{"monthly is months times weekdays", 8, model.PatternMonthly, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdjustOccurrences(tt.raw, tt.pattern, start, end, weekdays)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AdjustOccurrences() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAdjustOccurrences_UnknownPattern(t *testing.T) {
	_, err := AdjustOccurrences(8, "Fortnightly", date(2024, time.January, 1), date(2024, time.January, 28), []model.Weekday{"Monday"})
	if !errors.Is(err, bookingserrors.ErrInvalidRecurrencePattern) {
		t.Errorf("error = %v, want ErrInvalidRecurrencePattern", err)
	}
}

func TestComputeQuote(t *testing.T) {
	quote, err := ComputeQuote(8, 10000, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.RevenueBeforeDiscountCents != 80000 {
		t.Errorf("before = %d, want 80000", quote.RevenueBeforeDiscountCents)
	}
	if quote.DiscountAmountCents != 8000 {
		t.Errorf("discount = %d, want 8000", quote.DiscountAmountCents)
	}
	if quote.TotalRevenueCents != 72000 {
		t.Errorf("total = %d, want 72000", quote.TotalRevenueCents)
	}
}

func TestComputeQuote_ZeroDiscountKeepsTotal(t *testing.T) {
	quote, err := ComputeQuote(5, 4500, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.TotalRevenueCents != quote.RevenueBeforeDiscountCents {
		t.Errorf("total = %d, want %d", quote.TotalRevenueCents, quote.RevenueBeforeDiscountCents)
	}
	if quote.DiscountAmountCents != 0 {
		t.Errorf("discount = %d, want 0", quote.DiscountAmountCents)
	}
}

// Discount plus total must reconstruct the undiscounted revenue exactly
// for every whole percent, including amounts that do not divide evenly.
func TestComputeQuote_DiscountIsExact(t *testing.T) {
	for pct := 0; pct <= 100; pct++ {
		quote, err := ComputeQuote(7, 3333, pct)
		if err != nil {
			t.Fatalf("pct %d: unexpected error: %v", pct, err)
		}
		if quote.TotalRevenueCents+quote.DiscountAmountCents != quote.RevenueBeforeDiscountCents {
			t.Errorf("pct %d: %d + %d != %d", pct,
				quote.TotalRevenueCents, quote.DiscountAmountCents, quote.RevenueBeforeDiscountCents)
		}
	}
}

func TestComputeQuote_DiscountRoundsHalfUp(t *testing.T) {
	// 1% of 150 cents is 1.5 cents, which rounds up to 2.
	quote, err := ComputeQuote(1, 150, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.DiscountAmountCents != 2 {
		t.Errorf("discount = %d, want 2", quote.DiscountAmountCents)
	}
	if quote.TotalRevenueCents != 148 {
		t.Errorf("total = %d, want 148", quote.TotalRevenueCents)
	}
}

func TestComputeQuote_InvalidDiscount(t *testing.T) {
	for _, pct := range []int{-1, 101, 500} {
		if _, err := ComputeQuote(8, 10000, pct); !errors.Is(err, bookingserrors.ErrInvalidDiscount) {
			t.Errorf("pct %d: error = %v, want ErrInvalidDiscount", pct, err)
		}
	}
}

func TestQuoteRecurring_WeeklyScenario(t *testing.T) {
	// Four Mondays and four Wednesdays at 100 euros per visit with a
	// 10% discount: 800 gross, 80 off, 720 net.
	quote, err := QuoteRecurring(
		date(2024, time.January, 1), date(2024, time.January, 28),
		[]model.Weekday{"Monday", "Wednesday"},
		model.PatternWeekly, 10000, 10,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Occurrences != 8 {
		t.Errorf("occurrences = %d, want 8", quote.Occurrences)
	}
	if quote.RevenueBeforeDiscountCents != 80000 {
		t.Errorf("before = %d, want 80000", quote.RevenueBeforeDiscountCents)
	}
	if quote.DiscountAmountCents != 8000 {
		t.Errorf("discount = %d, want 8000", quote.DiscountAmountCents)
	}
	if quote.TotalRevenueCents != 72000 {
		t.Errorf("total = %d, want 72000", quote.TotalRevenueCents)
	}
}

func TestQuoteRecurring_BiWeeklyScenario(t *testing.T) {
	quote, err := QuoteRecurring(
		date(2024, time.January, 1), date(2024, time.January, 28),
		[]model.Weekday{"Monday", "Wednesday"},
		model.PatternBiWeekly, 10000, 0,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Occurrences != 4 {
		t.Errorf("occurrences = %d, want 4", quote.Occurrences)
	}
	if quote.TotalRevenueCents != 40000 {
		t.Errorf("total = %d, want 40000", quote.TotalRevenueCents)
	}
}

func TestQuoteRecurring_MonthlyScenario(t *testing.T) {
	// One month spanned, two selected weekdays: two visits.
	quote, err := QuoteRecurring(
		date(2024, time.January, 1), date(2024, time.January, 28),
		[]model.Weekday{"Monday", "Wednesday"},
		model.PatternMonthly, 10000, 0,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Occurrences != 2 {
		t.Errorf("occurrences = %d, want 2", quote.Occurrences)
	}
	if quote.TotalRevenueCents != 20000 {
		t.Errorf("total = %d, want 20000", quote.TotalRevenueCents)
	}
}

func TestQuoteRecurring_Errors(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.January, 28)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		weekdays []model.Weekday
		pattern  model.RecurrencePattern
		discount int
		want     error
	}{
		{"end before start", end, start, []model.Weekday{"Monday"}, model.PatternWeekly, 0, bookingserrors.ErrInvalidDateRange},
		{"no usable weekdays", start, end, []model.Weekday{"Funday"}, model.PatternWeekly, 0, bookingserrors.ErrNoWeekdays},
		{"empty weekday list", start, end, nil, model.PatternWeekly, 0, bookingserrors.ErrNoWeekdays},
		{"unknown pattern", start, end, []model.Weekday{"Monday"}, "Daily", 0, bookingserrors.ErrInvalidRecurrencePattern},
		{"discount over 100", start, end, []model.Weekday{"Monday"}, model.PatternWeekly, 101, bookingserrors.ErrInvalidDiscount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := QuoteRecurring(tt.start, tt.end, tt.weekdays, tt.pattern, 10000, tt.discount)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
