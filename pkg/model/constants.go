package model

// Weekday is a canonical English weekday name ("Monday" .. "Sunday").
type Weekday = string

// TimeSlot is one of the bookable periods of a day.
type TimeSlot = string

// RecurrencePattern is the cadence at which a recurring booking repeats.
type RecurrencePattern = string

const (
	SlotMorning   TimeSlot = "Morning"
	SlotAfternoon TimeSlot = "Afternoon"
	SlotNight     TimeSlot = "Night"
	SlotFullDay   TimeSlot = "FullDay"
)

const (
	PatternWeekly   RecurrencePattern = "Weekly"
	PatternBiWeekly RecurrencePattern = "Bi-Weekly"
	PatternMonthly  RecurrencePattern = "Monthly"
)

// Booking lifecycle states. A booking starts as Upcoming and moves to
// Completed or Cancelled through admin action or a payment event.
const (
	Upcoming  = "upcoming"
	Completed = "completed"
	Cancelled = "cancelled"
)

var (
	// CanonicalWeekdays is ordered Monday-first to match how the booking
	// forms present the week.
	CanonicalWeekdays = []Weekday{
		"Monday",
		"Tuesday",
		"Wednesday",
		"Thursday",
		"Friday",
		"Saturday",
		"Sunday",
	}

	BookableSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotNight, SlotFullDay}

	RecurrencePatterns = []RecurrencePattern{PatternWeekly, PatternBiWeekly, PatternMonthly}
)

// IsCanonicalWeekday reports whether name is one of the seven canonical
// weekday names. Comparison is exact; sanitize input first.
func IsCanonicalWeekday(name string) bool {
	for _, wd := range CanonicalWeekdays {
		if wd == name {
			return true
		}
	}
	return false
}
